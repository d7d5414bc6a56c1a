package logger

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// Level is debug, info, warn or error. Anything else means info.
	Level string
	// Format is json or console.
	Format string
	// Output is stderr, stdout or a file path.
	Output string
}

var (
	mu       sync.RWMutex
	global   = zap.NewNop()
	outPath  string
	initedAt time.Time
)

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Setup replaces the process-wide logger. The returned cleanup flushes it and
// restores the no-op logger.
func Setup(cfg Config) (func() error, error) {
	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		output = "stderr"
	}

	encoding := "json"
	encCfg := zap.NewProductionEncoderConfig()
	if strings.EqualFold(cfg.Format, "console") {
		encoding = "console"
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := zcfg.Build()
	if err != nil {
		setNop()
		return nil, err
	}

	mu.Lock()
	global = l
	outPath = output
	initedAt = time.Now().UTC()
	mu.Unlock()

	l.Debug("logger.initialized", zap.String("output", output), zap.String("level", parseLevel(cfg.Level).String()))

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		err := global.Sync()
		global = zap.NewNop()
		outPath = ""
		initedAt = time.Time{}
		// Sync on a terminal fails with EINVAL/ENOTTY; that is not worth reporting.
		if err != nil && (output == "stderr" || output == "stdout") {
			return nil
		}
		return err
	}

	return cleanup, nil
}

// L returns the process-wide logger; a no-op logger before Setup.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return outPath
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return initedAt
}

func setNop() {
	mu.Lock()
	defer mu.Unlock()
	global = zap.NewNop()
	outPath = ""
	initedAt = time.Time{}
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if outPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}
