// Package picsum talks to the Picsum Photos API (https://picsum.photos).
//
// It provides two things:
//
//  1. Client, with one method per remote capability (image info, catalog
//     pages, raw image bytes) plus a bounded author search built on top of
//     the catalog listing
//  2. Pure builders for image request URLs and output filenames
//
// # Client
//
//	client := picsum.NewClient(http.NewClient())
//	info, err := client.FetchInfo(ctx, "10")
//	page, err := client.ListPage(ctx, 1, 30)
//	found, err := client.SearchByAuthor(ctx, "alejandro", 5)
//
// # URLs and filenames
//
//	url := picsum.BuildImageURL(picsum.DefaultBaseURL,
//	    model.Dimensions{Width: 800, Height: 600},
//	    model.Effects{Grayscale: true},
//	    picsum.RandomToken)
//	// https://picsum.photos/800/600?grayscale&random=2837710398
//
//	name := picsum.GenerateFilename(0, "picsum", "jpg") // picsum_0001.jpg
//
// The trailing random parameter only exists to defeat Picsum's URL-keyed
// response cache so that every request yields a different image.
package picsum
