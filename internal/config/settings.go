package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/adrg/xdg"
	"github.com/handiism/picsum-downloader/internal/errs"
	"github.com/handiism/picsum-downloader/internal/picsum"
	"github.com/spf13/viper"
)

// Setting keys. Flags are bound to these keys, so a flag, a PICSUM_* variable
// and a config file entry all address the same value.
const (
	KeyBaseURL  = "base_url"
	KeyVerbose  = "verbose"
	KeyLogLevel = "log.level"
	KeyLogJSON  = "log.json"

	KeyDownloadCount       = "download.count"
	KeyDownloadWidth       = "download.width"
	KeyDownloadHeight      = "download.height"
	KeyDownloadOutput      = "download.output"
	KeyDownloadGrayscale   = "download.grayscale"
	KeyDownloadBlur        = "download.blur"
	KeyDownloadQuality     = "download.quality"
	KeyDownloadConcurrency = "download.concurrent"
	KeyDownloadPrefix      = "download.prefix"
	KeyDownloadFormat      = "download.format"
	KeyDownloadVerify      = "download.verify"
	KeyDownloadNameByID    = "download.name_by_id"

	KeyListLimit   = "list.limit"
	KeySearchLimit = "search.limit"
)

// EnvPrefix namespaces environment overrides, e.g. PICSUM_DOWNLOAD_COUNT.
const EnvPrefix = "PICSUM"

// defaultConfigFile is looked up under the XDG config directories.
const defaultConfigFile = "picsum-dl/config.yaml"

// NewViper returns a viper instance carrying the built-in defaults and the
// PICSUM_* environment overrides.
//
// Precedence, lowest first: defaults, config file, environment, flags.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyBaseURL, picsum.DefaultBaseURL)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogJSON, false)

	v.SetDefault(KeyDownloadCount, 1)
	v.SetDefault(KeyDownloadWidth, 1920)
	v.SetDefault(KeyDownloadHeight, 1080)
	v.SetDefault(KeyDownloadOutput, "downloads")
	v.SetDefault(KeyDownloadGrayscale, false)
	v.SetDefault(KeyDownloadConcurrency, 4)
	v.SetDefault(KeyDownloadPrefix, "picsum")
	v.SetDefault(KeyDownloadFormat, "jpg")
	v.SetDefault(KeyDownloadVerify, false)
	v.SetDefault(KeyDownloadNameByID, false)

	v.SetDefault(KeyListLimit, 30)
	v.SetDefault(KeySearchLimit, 10)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// ReadConfigFile merges a YAML config file into v.
//
// With an explicit path the file must exist. With an empty path the XDG
// config directories are searched for picsum-dl/config.yaml, and a missing
// file is not an error. It returns the path that was read, if any.
func ReadConfigFile(v *viper.Viper, path string) (string, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(defaultConfigFile)
		if err != nil {
			return "", nil
		}
		path = found
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errs.Config("config file not found: %s", path)
		}
		return "", errs.Config("error reading config file %s: %v", path, err)
	}
	return path, nil
}

// DownloadParamsFrom collects the raw download parameters from v.
//
// Blur and quality stay nil unless a flag, variable or file entry set them.
func DownloadParamsFrom(v *viper.Viper) DownloadParams {
	p := DownloadParams{
		Count:       v.GetInt(KeyDownloadCount),
		Width:       v.GetInt(KeyDownloadWidth),
		Height:      v.GetInt(KeyDownloadHeight),
		OutputDir:   v.GetString(KeyDownloadOutput),
		Grayscale:   v.GetBool(KeyDownloadGrayscale),
		Concurrency: v.GetInt(KeyDownloadConcurrency),
		Prefix:      v.GetString(KeyDownloadPrefix),
		Format:      v.GetString(KeyDownloadFormat),
		Verify:      v.GetBool(KeyDownloadVerify),
		NameByID:    v.GetBool(KeyDownloadNameByID),
	}
	if v.IsSet(KeyDownloadBlur) {
		blur := v.GetInt(KeyDownloadBlur)
		p.Blur = &blur
	}
	if v.IsSet(KeyDownloadQuality) {
		quality := v.GetInt(KeyDownloadQuality)
		p.Quality = &quality
	}
	return p
}

// LoggerFrom collects the logger settings from v.
func LoggerFrom(v *viper.Viper) Logger {
	return Logger{
		Level: v.GetString(KeyLogLevel),
		JSON:  v.GetBool(KeyLogJSON),
	}
}
