package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/shiprate/internal/domain"
)

func validFile() FileConfig {
	d := DefaultSettings()
	return FileConfig{
		Environment: "sandbox",
		UnitSystem:  "imperial",
		HTTP:        FileHTTP{Timeout: d.HTTP.Timeout},
		Log:         FileLog{Level: "info", Format: "json"},
	}
}

func TestMapRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FileConfig)
		field  string
	}{
		{"environment", func(f *FileConfig) { f.Environment = "prod" }, "environment"},
		{"unit system", func(f *FileConfig) { f.UnitSystem = "furlongs" }, "unit_system"},
		{"negative timeout", func(f *FileConfig) { f.HTTP.Timeout = -1 }, "http.timeout"},
		{"negative concurrency", func(f *FileConfig) { f.HTTP.MaxConcurrency = -2 }, "http.max_concurrency"},
		{"negative rps", func(f *FileConfig) { f.HTTP.RequestsPerSecond = -1 }, "http.requests_per_second"},
		{"base url scheme", func(f *FileConfig) { f.HTTP.BaseURL = "ftp://ups" }, "http.base_url"},
		{"log level", func(f *FileConfig) { f.Log.Level = "trace" }, "log.level"},
		{"log format", func(f *FileConfig) { f.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := validFile()
			tt.mutate(&fc)
			_, err := Map("client.yaml", fc)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), "field "+tt.field) {
				t.Fatalf("expected field %s in error, got %v", tt.field, err)
			}
		})
	}
}

func TestMapNormalizes(t *testing.T) {
	fc := validFile()
	fc.HTTP.BaseURL = " http://localhost:8080 "
	fc.Log.Level = "WARN"
	fc.Credentials = FileCredentials{Username: "u", Password: "p", AccessKey: "k"}

	s, err := Map("client.yaml", fc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.HTTP.BaseURL != "http://localhost:8080" {
		t.Fatalf("expected trimmed base url, got %q", s.HTTP.BaseURL)
	}
	if s.Log.Level != "warn" {
		t.Fatalf("expected lower-cased level, got %q", s.Log.Level)
	}
	if s.HTTP.Burst != 0 {
		t.Fatalf("expected burst 0 without limiter, got %d", s.HTTP.Burst)
	}
	if s.Client.Credentials != (domain.Credentials{Username: "u", Password: "p", AccessKey: "k"}) {
		t.Fatalf("unexpected credentials: %+v", s.Client.Credentials)
	}
}
