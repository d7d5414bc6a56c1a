package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aalvaropc/shiprate/internal/domain"
)

// Settings is everything a client process needs: the immutable client
// config plus transport and logging knobs.
type Settings struct {
	Client domain.Config
	HTTP   HTTPSettings
	Log    LogSettings
}

type HTTPSettings struct {
	// BaseURL overrides the host chosen by the environment.
	BaseURL        string
	Timeout        time.Duration
	PerCallTimeout time.Duration
	MaxConcurrency int
	// RequestsPerSecond limits outbound calls; zero disables the limiter.
	RequestsPerSecond float64
	Burst             int
	MaxBodyBytes      int64
}

type LogSettings struct {
	Level  string
	Format string
	Output string
}

func DefaultSettings() Settings {
	return Settings{
		Client: domain.DefaultConfig(),
		HTTP: HTTPSettings{
			Timeout:      30 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
	}
}

// Map validates a decoded file and turns it into Settings.
func Map(path string, fc FileConfig) (Settings, error) {
	env, err := domain.ParseEnvironment(strings.TrimSpace(fc.Environment))
	if err != nil {
		return Settings{}, invalidField(path, "environment", err.Error())
	}
	units, err := domain.ParseUnitSystem(strings.TrimSpace(fc.UnitSystem))
	if err != nil {
		return Settings{}, invalidField(path, "unit_system", err.Error())
	}

	h := fc.HTTP
	switch {
	case h.Timeout < 0:
		return Settings{}, invalidField(path, "http.timeout", "must not be negative")
	case h.PerCallTimeout < 0:
		return Settings{}, invalidField(path, "http.per_call_timeout", "must not be negative")
	case h.MaxConcurrency < 0:
		return Settings{}, invalidField(path, "http.max_concurrency", "must not be negative")
	case h.RequestsPerSecond < 0:
		return Settings{}, invalidField(path, "http.requests_per_second", "must not be negative")
	case h.Burst < 0:
		return Settings{}, invalidField(path, "http.burst", "must not be negative")
	case h.MaxBodyBytes < 0:
		return Settings{}, invalidField(path, "http.max_body_bytes", "must not be negative")
	}

	baseURL := strings.TrimSpace(h.BaseURL)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Settings{}, invalidField(path, "http.base_url", fmt.Sprintf("invalid url %q", baseURL))
		}
	}

	burst := h.Burst
	if h.RequestsPerSecond > 0 && burst == 0 {
		burst = 1
	}

	level := strings.ToLower(strings.TrimSpace(fc.Log.Level))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return Settings{}, invalidField(path, "log.level", fmt.Sprintf("unsupported level %q (expected debug|info|warn|error)", fc.Log.Level))
	}
	format := strings.ToLower(strings.TrimSpace(fc.Log.Format))
	if format != "json" && format != "console" {
		return Settings{}, invalidField(path, "log.format", fmt.Sprintf("unsupported format %q (expected json|console)", fc.Log.Format))
	}

	return Settings{
		Client: domain.Config{
			Environment: env,
			UnitSystem:  units,
			Credentials: domain.Credentials{
				Username:  fc.Credentials.Username,
				Password:  fc.Credentials.Password,
				AccessKey: fc.Credentials.AccessKey,
			},
		},
		HTTP: HTTPSettings{
			BaseURL:           baseURL,
			Timeout:           h.Timeout,
			PerCallTimeout:    h.PerCallTimeout,
			MaxConcurrency:    h.MaxConcurrency,
			RequestsPerSecond: h.RequestsPerSecond,
			Burst:             burst,
			MaxBodyBytes:      h.MaxBodyBytes,
		},
		Log: LogSettings{
			Level:  level,
			Format: format,
			Output: strings.TrimSpace(fc.Log.Output),
		},
	}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
