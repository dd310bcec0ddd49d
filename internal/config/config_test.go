package config

import (
	"os"
	"path/filepath"
	"testing"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(mapLookup(nil))
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.OutDir != DefaultOutDir {
		t.Errorf("out dir: got %q", cfg.OutDir)
	}
	if cfg.Preset != "" || cfg.Quality != 0 || cfg.Workers != 0 || cfg.Formats != nil {
		t.Errorf("unexpected values: %+v", cfg)
	}
}

func TestFromEnvValues(t *testing.T) {
	cfg, err := FromEnv(mapLookup(map[string]string{
		EnvPreset:  "shadows",
		EnvFormats: " PNG, webp,,gif ",
		EnvQuality: "75",
		EnvWorkers: "3",
		EnvOut:     "/tmp/out",
		EnvMatte:   "White",
	}))
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Preset != "shadows" || cfg.Quality != 75 || cfg.Workers != 3 || cfg.OutDir != "/tmp/out" || cfg.Matte != "white" {
		t.Errorf("got %+v", cfg)
	}
	want := []string{"png", "webp", "gif"}
	if len(cfg.Formats) != len(want) {
		t.Fatalf("formats: got %v", cfg.Formats)
	}
	for i := range want {
		if cfg.Formats[i] != want[i] {
			t.Errorf("formats[%d]: got %q", i, cfg.Formats[i])
		}
	}
}

func TestFromEnvRejectsBadNumbers(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvQuality: "high"},
		{EnvQuality: "101"},
		{EnvWorkers: "-1"},
	} {
		if _, err := FromEnv(mapLookup(env)); err == nil {
			t.Errorf("%v: expected error", env)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	data := "# defaults\nGRAYLEVELS_PRESET=highlights\nGRAYLEVELS_QUALITY=60\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvPreset, "") // register cleanup for the key godotenv sets
	os.Unsetenv(EnvPreset)
	t.Setenv(EnvQuality, "80") // process env wins over the file

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Preset != "highlights" {
		t.Errorf("preset: got %q", cfg.Preset)
	}
	if cfg.Quality != 80 {
		t.Errorf("quality: got %d, want process env value 80", cfg.Quality)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing env file: %v", err)
	}
}
