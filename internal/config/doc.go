// Package config turns command-line input into validated configuration.
//
// Input is handled in two explicit stages:
//
//  1. Parse: flags, PICSUM_* environment variables and an optional YAML file
//     are layered by viper and collected into raw parameter structs such as
//     DownloadParams.
//  2. Validate: NewDownloadConfig, NewInfoConfig, NewListConfig and
//     NewSearchConfig check the raw values and return immutable configs.
//     Failures are errs.KindConfig errors and happen before any network
//     activity.
//
// # Config File
//
// Without --config, picsum-dl/config.yaml is looked up in the XDG config
// directories. Example:
//
//	base_url: https://picsum.photos
//	log:
//	  level: info
//	download:
//	  count: 10
//	  width: 1280
//	  height: 720
//	  concurrent: 8
//	  output: ~/Pictures/picsum
//
// # Logging
//
// Logger configures a log/slog logger (text or JSON) from --log-level and
// --log-json.
package config
