package cli

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/aalvaropc/shiprate"
	"github.com/aalvaropc/shiprate/internal/infra/config"
	"github.com/aalvaropc/shiprate/internal/infra/logger"
	"github.com/aalvaropc/shiprate/internal/infra/shipmentfile"
	"github.com/aalvaropc/shiprate/internal/ports"
)

// session is the wiring shared by the subcommands: settings, logger, client
// and input file loader.
type session struct {
	settings config.Settings
	client   *shiprate.Client
	loader   ports.ShipmentLoader
	cleanup  func() error
}

func openSession(flags *rootFlags) (*session, error) {
	settings, err := config.Load(resolveConfigPath(flags.configPath))
	if err != nil {
		return nil, err
	}
	if lvl := strings.TrimSpace(flags.logLevel); lvl != "" {
		settings.Log.Level = lvl
	}

	cleanup, err := logger.Setup(logger.Config{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Output: settings.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	client, err := shiprate.New(settings.Client, clientOptions(settings.HTTP, logger.L())...)
	if err != nil {
		_ = cleanup()
		return nil, err
	}

	return &session{
		settings: settings,
		client:   client,
		loader:   shipmentfile.NewLoader(),
		cleanup:  cleanup,
	}, nil
}

// resolveConfigPath prefers the flag, then the nearest shiprate.yaml.
// No file at all is fine: defaults and SHIPRATE_* variables still apply.
func resolveConfigPath(flag string) string {
	if p := strings.TrimSpace(flag); p != "" {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	p, err := config.NewFinder().Find(wd)
	if err != nil {
		return ""
	}
	return p
}

func clientOptions(h config.HTTPSettings, log *zap.Logger) []shiprate.Option {
	return []shiprate.Option{
		shiprate.WithBaseURL(h.BaseURL),
		shiprate.WithHTTPTimeout(h.Timeout),
		shiprate.WithMaxBodyBytes(h.MaxBodyBytes),
		shiprate.WithPerCallTimeout(h.PerCallTimeout),
		shiprate.WithMaxConcurrency(h.MaxConcurrency),
		shiprate.WithRateLimit(h.RequestsPerSecond, h.Burst),
		shiprate.WithLogger(log),
	}
}

func (s *session) Close() {
	if s.cleanup != nil {
		_ = s.cleanup()
	}
}
