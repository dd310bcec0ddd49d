package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/blang/semver"
)

// New creates an empty manifest with defaults.
func New(preset, toolVersion string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		ToolVersion: toolVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Preset:      preset,
		Outputs:     []Output{},
	}
}

// ComputeStats recalculates aggregate statistics from outputs.
func (m *Manifest) ComputeStats() {
	s := Stats{SkippedFormats: m.Stats.SkippedFormats}
	s.TotalOutputs = len(m.Outputs)
	for _, o := range m.Outputs {
		s.TotalOutputBytes += o.Size
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to an indented JSON file.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest. Unknown fields are ignored.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// CheckToolVersion reports an error when the manifest was written by a
// tool with a newer major version than running, or its version is not
// valid semver.
func (m *Manifest) CheckToolVersion(running string) error {
	written, err := semver.ParseTolerant(m.ToolVersion)
	if err != nil {
		return fmt.Errorf("tool_version %q: %w", m.ToolVersion, err)
	}
	current, err := semver.ParseTolerant(running)
	if err != nil {
		return fmt.Errorf("running version %q: %w", running, err)
	}
	if written.Major > current.Major {
		return fmt.Errorf("manifest written by graylevels %s, newer than %s", written, current)
	}
	return nil
}
