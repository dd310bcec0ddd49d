package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/DNS451/gray-level-cli/internal/encoder"
	"github.com/DNS451/gray-level-cli/internal/hasher"
	"github.com/DNS451/gray-level-cli/internal/manifest"
	"github.com/DNS451/gray-level-cli/internal/posterize"
	"github.com/DNS451/gray-level-cli/internal/session"
)

// StripHeight is the height of the level preview strip.
const StripHeight = 32

// Config holds all parameters for one posterize run.
type Config struct {
	InputPath   string
	OutputDir   string
	Preset      string
	Params      session.Params
	LevelIndex  int
	Formats     []string
	Quality     int
	Workers     int
	Fit         image.Point // zero means no resize
	Matte       string      // white, gray or black
	Strip       bool        // also write the table as a preview strip
	Verbose     bool
	ToolVersion string
}

// Pipeline orchestrates decode, quantize and encode for one image.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
	table    posterize.Table
	matte    color.NRGBA
}

// New validates cfg and builds the table it describes.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	name, matte, err := ParseMatte(cfg.Matte)
	if err != nil {
		return nil, err
	}
	cfg.Matte = name

	table, err := cfg.Params.Table()
	if err != nil {
		return nil, fmt.Errorf("build table: %w", err)
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
		table:    table,
		matte:    matte,
	}, nil
}

// Table returns the quantization table for this run.
func (p *Pipeline) Table() posterize.Table { return p.table }

// Run executes the pipeline and returns the manifest. The manifest is
// not written; callers decide where it goes.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	p.logf("%s", p.registry.String())

	src, err := ResolveSource(p.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	p.logf("processing: %s (%s)", src.Key, p.cfg.Params)

	res, err := processImage(src, p)
	if err != nil {
		return nil, err
	}

	m := manifest.New(p.cfg.Preset, p.cfg.ToolVersion)
	m.BuildInfo = &manifest.BuildInfo{
		Workers: p.cfg.Workers,
		Matte:   p.cfg.Matte,
	}
	if p.cfg.Fit != (image.Point{}) {
		m.BuildInfo.Fit = FormatFit(p.cfg.Fit)
	}
	m.Source = res.source
	m.Params = manifest.Params{
		Levels:       p.cfg.Params.Levels,
		LevelIndex:   p.cfg.LevelIndex,
		Distribution: p.cfg.Params.Distribution,
		Exponent:     posterize.Exponent(p.cfg.Params.Distribution),
		Channel:      p.cfg.Params.Channel.String(),
		Passthrough:  p.cfg.Params.Passthrough,
	}
	m.Table = manifest.Table{
		Hash:   hasher.TableHash(p.table),
		Colors: p.table.Hex(),
	}
	m.Outputs = res.outputs
	m.Stats.SkippedFormats = res.skipped
	m.ComputeStats()
	return m, nil
}

// ManifestPath returns where the manifest for key belongs in the output dir.
func (p *Pipeline) ManifestPath(key string) string {
	return joinOut(p.cfg.OutputDir, key+manifest.FileSuffix)
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[graylevels] "+format+"\n", args...)
	}
}

// ParseFit parses a "WxH" bounding box. Either side may be 0 to keep the
// aspect ratio from the other.
func ParseFit(s string) (image.Point, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return image.Point{}, nil
	}
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return image.Point{}, fmt.Errorf("fit %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 0 {
		return image.Point{}, fmt.Errorf("fit %q: bad width", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 {
		return image.Point{}, fmt.Errorf("fit %q: bad height", s)
	}
	if w == 0 && h == 0 {
		return image.Point{}, fmt.Errorf("fit %q: width and height are both 0", s)
	}
	return image.Pt(w, h), nil
}

// FormatFit is the inverse of ParseFit.
func FormatFit(p image.Point) string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}
