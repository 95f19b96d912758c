// Package rosterfile reads and writes roster snapshots (JSON or YAML) and serves them as a shift store
package rosterfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Decode parses a roster snapshot. Format is chosen by the file name's extension (JSON unless .yaml/.yml).
func Decode(name string, data []byte) (*model.Roster, error) {
	var roster model.Roster

	if isYAML(name) {
		if err := yaml.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("failed to parse roster YAML %s: %w", name, err)
		}
	} else {
		if err := json.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("failed to parse roster JSON %s: %w", name, err)
		}
	}

	roster.Normalize()
	return &roster, nil
}

// Encode serializes a roster in the format matching the file name
func Encode(name string, roster *model.Roster) ([]byte, error) {
	roster.Normalize()

	if isYAML(name) {
		data, err := yaml.Marshal(roster)
		if err != nil {
			return nil, fmt.Errorf("failed to encode roster YAML: %w", err)
		}
		return data, nil
	}

	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode roster JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Load reads a roster snapshot from disk
func Load(path string) (*model.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}
	return Decode(path, data)
}

// Save writes a roster snapshot to disk, replacing the file atomically
func Save(path string, roster *model.Roster) error {
	data, err := Encode(path, roster)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write roster file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close roster file %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace roster file %s: %w", path, err)
	}

	return nil
}
