package help

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEntryName indicates a doc pack entry without a name.
var ErrEntryName = errors.New("doc entry has no name")

// docPack is the on-disk shape of a YAML doc pack.
type docPack struct {
	Entries []Entry `yaml:"entries"`
}

// LoadFile parses one YAML doc pack.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading doc pack %s: %w", path, err)
	}

	var pack docPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parsing doc pack %s: %w", path, err)
	}
	for i, e := range pack.Entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%s entry %d: %w", path, i, ErrEntryName)
		}
	}
	return pack.Entries, nil
}

// LoadDir parses every .yml/.yaml file directly inside dir, in name order.
func LoadDir(dir string) ([]Entry, error) {
	names, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading doc pack dir %s: %w", dir, err)
	}

	var entries []Entry
	for _, de := range names {
		if de.IsDir() {
			continue
		}
		switch filepath.Ext(de.Name()) {
		case ".yml", ".yaml":
		default:
			continue
		}
		batch, err := LoadFile(filepath.Join(dir, de.Name()))
		if err != nil {
			return nil, err
		}
		entries = append(entries, batch...)
	}
	return entries, nil
}

// LoadPath loads a doc pack file, or every doc pack in a directory.
func LoadPath(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("doc pack path %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}
