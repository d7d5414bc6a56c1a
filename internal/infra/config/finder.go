package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/shiprate/internal/domain"
)

// DefaultFileName is the config file looked up when none is given.
const DefaultFileName = "shiprate.yaml"

// Finder locates a client config file by searching upward from a directory.
type Finder struct {
	FileName string // defaults to DefaultFileName
}

func NewFinder() *Finder {
	return &Finder{FileName: DefaultFileName}
}

// Find returns the path of the nearest config file at or above startDir.
func (f *Finder) Find(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	// A file path means its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.FileName
	if name == "" {
		name = DefaultFileName
	}

	cur := filepath.Clean(abs)
	for {
		candidate := filepath.Join(cur, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "config.find",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
