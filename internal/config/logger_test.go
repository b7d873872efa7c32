package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/handiism/picsum-downloader/internal/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "Valid level: debug", level: "debug"},
		{name: "Valid level: DEBUG (case insensitive)", level: "DEBUG"},
		{name: "Valid level: info", level: "info"},
		{name: "Valid level: warn", level: "warn"},
		{name: "Valid level: error", level: "error"},
		{name: "Invalid level: random", level: "random", wantErr: true},
		{name: "Invalid level: empty string", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{Level: tt.level}

			result, err := logger.Configure(&bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Errorf("Configure() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && result == nil {
				t.Error("Configure() returned nil logger for valid input")
			}
		})
	}
}

func TestLogger_Configure_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "info", JSON: true}

	result, err := logger.Configure(&buf)
	if err != nil {
		t.Fatalf("Configure() unexpected error = %v", err)
	}

	result.Info("batch finished", "succeeded", 3)
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"succeeded":3`) {
		t.Errorf("expected JSON log line, got %q", buf.String())
	}
}

func TestLogger_Configure_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "warn"}

	result, err := logger.Configure(&buf)
	if err != nil {
		t.Fatalf("Configure() unexpected error = %v", err)
	}

	result.Info("hidden")
	result.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("info line should be filtered at warn level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn line missing: %q", buf.String())
	}
}
