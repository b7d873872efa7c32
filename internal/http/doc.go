// Package http provides the HTTP client used to talk to the Picsum API.
//
// The Client in this package handles:
//   - User-Agent headers identifying picsum-dl
//   - A fixed per-request timeout
//   - Mapping transport failures and non-2xx statuses to typed errors
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch raw bytes
//	resp, err := client.Get(ctx, "https://picsum.photos/200/300")
//
//	// Decode JSON
//	var info model.ImageRecord
//	err = client.GetJSON(ctx, "https://picsum.photos/id/0/info", &info)
//
// # Errors
//
// Every error returned is an *errs.Error. Use errs.Is to tell a transport
// failure (errs.KindNetwork) from a service-side one (errs.KindAPI) and
// errs.StatusOf to read the HTTP status.
package http
