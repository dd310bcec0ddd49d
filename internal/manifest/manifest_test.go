package manifest

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestManifestRoundtrip(t *testing.T) {
	m := New("shadows", "0.3.0")
	m.BuildInfo = &BuildInfo{Workers: 4, Fit: "640x480", Matte: "white"}
	m.Source = Source{Path: "photo.jpg", Width: 800, Height: 600, Format: "jpeg", Size: 100000, Hash: "00112233aabbccdd"}
	m.Params = Params{Levels: 5, LevelIndex: 0, Distribution: 1, Exponent: 2, Channel: "gray"}
	m.Table = Table{Hash: "deadbeefdeadbeef", Colors: []string{"#000000", "#101010", "#404040", "#8f8f8f", "#ffffff"}}
	m.Outputs = []Output{
		{Format: "png", Width: 640, Height: 480, Size: 5000, Hash: "abcd1234abcd1234", Path: "photo.5.abcd1234.png"},
		{Format: "webp", Width: 640, Height: 480, Size: 3000, Hash: "1234abcd1234abcd", Path: "photo.5.1234abcd.webp"},
	}
	m.Stats.SkippedFormats = 1

	path := filepath.Join(t.TempDir(), "photo"+FileSuffix)
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	m2, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Preset != "shadows" || m2.ToolVersion != "0.3.0" {
		t.Errorf("header: got %q %q", m2.Preset, m2.ToolVersion)
	}
	if m2.BuildInfo == nil || m2.BuildInfo.Workers != 4 || m2.BuildInfo.Fit != "640x480" {
		t.Fatalf("build_info: got %+v", m2.BuildInfo)
	}
	if m2.Params != m.Params {
		t.Errorf("params: got %+v", m2.Params)
	}
	if len(m2.Table.Colors) != 5 || m2.Table.Colors[2] != "#404040" {
		t.Errorf("table: got %v", m2.Table.Colors)
	}
	if m2.Stats.TotalOutputs != 2 || m2.Stats.TotalOutputBytes != 8000 || m2.Stats.SkippedFormats != 1 {
		t.Errorf("stats: got %+v", m2.Stats)
	}
}

func TestManifestVersion(t *testing.T) {
	m := New("default", "1.0.0")
	if m.Version != SupportedManifestVersion {
		t.Errorf("new manifest version: got %d, want %d", m.Version, SupportedManifestVersion)
	}
	if m.Outputs == nil {
		t.Error("outputs should marshal as [] not null")
	}
}

func TestCheckToolVersion(t *testing.T) {
	tests := []struct {
		written, running string
		ok               bool
	}{
		{"0.3.0", "0.3.0", true},
		{"0.2.9", "0.3.0", true},
		{"v0.9.1", "0.3.0", true},
		{"1.0.0", "0.3.0", false},
		{"garbage", "0.3.0", false},
	}
	for _, tt := range tests {
		m := &Manifest{ToolVersion: tt.written}
		err := m.CheckToolVersion(tt.running)
		if (err == nil) != tt.ok {
			t.Errorf("CheckToolVersion(%q, %q): got %v", tt.written, tt.running, err)
		}
	}
}

func TestManifestIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"tool_version": "0.3.0",
		"generated_at": "2025-01-01T00:00:00Z",
		"preset": "default",
		"future_field": "should be ignored",
		"build_info": { "workers": 8, "new_flag": true },
		"params": { "levels": 10, "distribution": 0, "exponent": 1, "channel": "gray", "gamma": 2.2 },
		"table": { "hash": "x", "colors": [] },
		"outputs": [],
		"stats": { "total_output_bytes": 0, "total_outputs": 0, "new_stat": 42 }
	}`

	var m Manifest
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if m.Version != 1 {
		t.Errorf("version: got %d", m.Version)
	}
	if m.BuildInfo == nil || m.BuildInfo.Workers != 8 {
		t.Error("build_info not parsed correctly")
	}
	if m.Params.Levels != 10 {
		t.Errorf("params.levels: got %d", m.Params.Levels)
	}
}
