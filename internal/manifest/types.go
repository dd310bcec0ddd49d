package manifest

// Manifest is the sidecar written next to the outputs of one run.
type Manifest struct {
	Version     int        `json:"version"`
	ToolVersion string     `json:"tool_version"`
	GeneratedAt string     `json:"generated_at"`
	Preset      string     `json:"preset"`
	BuildInfo   *BuildInfo `json:"build_info,omitempty"`
	Source      Source     `json:"source"`
	Params      Params     `json:"params"`
	Table       Table      `json:"table"`
	Outputs     []Output   `json:"outputs"`
	Stats       Stats      `json:"stats"`
}

// BuildInfo captures run-time settings for diagnostics.
type BuildInfo struct {
	Workers int    `json:"workers"`
	Fit     string `json:"fit,omitempty"`   // "WxH" bounding box, empty when not resized
	Matte   string `json:"matte,omitempty"` // background used for formats without alpha
}

// Source holds metadata about the input image.
type Source struct {
	Path     string `json:"path"`
	Width    int    `json:"width"`  // decoded size, before fitting
	Height   int    `json:"height"` // decoded size, before fitting
	Format   string `json:"format"`
	Size     int64  `json:"size"`
	Hash     string `json:"hash"` // xxhash64 of the file bytes
	HasAlpha bool   `json:"has_alpha"`
}

// Params records the parameters the table was built from.
type Params struct {
	Levels       int     `json:"levels"`
	LevelIndex   int     `json:"level_index"`
	Distribution float64 `json:"distribution"`
	Exponent     float64 `json:"exponent"` // 2^distribution
	Channel      string  `json:"channel"`
	Passthrough  bool    `json:"passthrough,omitempty"`
}

// Table is the quantization table as #rrggbb swatches, darkest first.
type Table struct {
	Hash   string   `json:"hash"`
	Colors []string `json:"colors"`
}

// Output is one encoded file.
type Output struct {
	Format string `json:"format"` // "png", "webp", "gif", "jpeg", "raw"
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // 16 hex chars of xxhash64
	Path   string `json:"path"` // relative to the manifest
	Role   string `json:"role,omitempty"`
}

// RoleStrip marks the level preview strip among the outputs.
const RoleStrip = "strip"

// Stats aggregates run metrics.
type Stats struct {
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalOutputs     int   `json:"total_outputs"`
	SkippedFormats   int   `json:"skipped_formats,omitempty"` // formats that failed to encode
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// FileSuffix is appended to the source name to form the manifest name.
const FileSuffix = ".graylevels.json"
