// Package model defines the core data structures shared across picsum-dl.
//
// # Request parameters
//
// Dimensions and Effects describe what to ask Picsum for:
//
//	dims := model.Dimensions{Width: 1920, Height: 1080}
//	fx := model.Effects{Grayscale: true, Blur: model.IntPtr(3)}
//
// # Catalog metadata
//
// ImageRecord mirrors the JSON objects returned by the /id/{id}/info and
// /v2/list endpoints.
//
// # Batch results
//
// Outcome records what happened to one download unit; BatchResult
// aggregates them once every unit has finished.
package model
