// Package download runs batches of image downloads against Picsum.
//
// # Manager
//
// The Manager drives one batch:
//
//  1. Create the output directory
//  2. Admit units through a gate sized to the configured concurrency
//  3. Per unit: build a randomized image URL, fetch it, optionally verify
//     the payload, write it to disk
//  4. Join all units and aggregate a model.BatchResult
//
// # Basic Usage
//
//	client := picsum.NewClient(pichttp.NewClient())
//	manager := download.NewManager(client, download.WithProgress(func(e download.ProgressEvent) {
//	    fmt.Println(e.Message)
//	}))
//
//	result, err := manager.Run(ctx, cfg, progress.New(cfg.Count(), "Downloading"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// The driving loop acquires gate capacity before starting each unit, so no
// more than DownloadConfig.Concurrency() units are in flight. A unit gives
// its capacity back as soon as its network and disk work are done. The
// default gate is a golang.org/x/sync/semaphore; tests can inject their own
// through WithGateFactory.
//
// # Failures
//
// A failed unit is recorded as a failed model.Outcome and reported as a
// LevelError ProgressEvent. It never cancels the rest of the batch. Units
// are not retried.
package download
