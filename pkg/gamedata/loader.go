package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

var (
	mu       sync.RWMutex
	versions = map[string]func() *GameData{}
)

func Register(name string, factory func() *GameData) {
	mu.Lock()
	defer mu.Unlock()
	versions[name] = factory
}

func Load(name string) (*GameData, error) {
	mu.RLock()
	f, ok := versions[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown version: %s", name)
	}
	return f(), nil
}

func RegisteredVersions() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDir reads blocks.json and biomes.json in the minecraft-data layout
// from dir, as downloaded by cmd/dmd.
func LoadDir(dir string) (*GameData, error) {
	var blocks []Block
	if err := readJSON(filepath.Join(dir, "blocks.json"), &blocks); err != nil {
		return nil, err
	}
	var biomes []Biome
	if err := readJSON(filepath.Join(dir, "biomes.json"), &biomes); err != nil {
		return nil, err
	}
	return New(filepath.Base(dir), blocks, biomes), nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
