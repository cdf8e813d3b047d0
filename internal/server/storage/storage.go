package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-craft/worldgen/internal/genlog"
	"github.com/go-theft-craft/worldgen/internal/server/config"
	"github.com/go-theft-craft/worldgen/pkg/world/txn"
)

// ConfigFile is the name of the level settings file.
const ConfigFile = "level.yaml"

// Storage handles the on-disk layout of a level directory.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating subdirectories as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	dirs := []string{
		dir,
		filepath.Join(dir, txn.Dir),
		filepath.Join(dir, genlog.Dir),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return &Storage{dir: dir, log: log}, nil
}

// Dir returns the level directory.
func (s *Storage) Dir() string { return s.dir }

// LoadConfig reads level.yaml into cfg and reports whether the file existed.
// If it does not exist, cfg is unchanged.
func (s *Storage) LoadConfig(cfg *config.Config) (bool, error) {
	path := filepath.Join(s.dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return false, fmt.Errorf("parse config: %w", err)
	}
	s.log.Info("loaded config from file", "path", path)
	return true, nil
}

// SaveConfig writes cfg to level.yaml atomically.
func (s *Storage) SaveConfig(cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return atomicWrite(filepath.Join(s.dir, ConfigFile), data)
}

// atomicWrite writes data using a temp file + rename.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
