package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	"github.com/DNS451/gray-level-cli/internal/encoder"
	"github.com/DNS451/gray-level-cli/internal/hasher"
	"github.com/DNS451/gray-level-cli/internal/manifest"
	"github.com/DNS451/gray-level-cli/internal/posterize"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// processResult holds the outcome of processing the source image.
type processResult struct {
	source  manifest.Source
	outputs []manifest.Output
	skipped int // formats that failed to encode
}

// encodeResult is one format's outcome.
type encodeResult struct {
	output manifest.Output
	err    error
}

// processImage handles the source image: decode, fit, quantize, encode.
func processImage(src Source, p *Pipeline) (processResult, error) {
	var result processResult
	cfg := p.cfg

	data, err := os.ReadFile(src.AbsPath)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", src.AbsPath, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return result, fmt.Errorf("decode %s: %w", src.AbsPath, err)
	}
	bounds := img.Bounds()

	if cfg.Fit != (image.Point{}) {
		img = imaging.Fit(img, fitDim(cfg.Fit.X, bounds.Dx()), fitDim(cfg.Fit.Y, bounds.Dy()), imaging.Lanczos)
		p.logf("fit: %dx%d -> %dx%d", bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	buf := posterize.FromImage(img)
	hasAlpha := buf.HasAlpha()

	result.source = manifest.Source{
		Path:     filepath.Base(src.AbsPath),
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   src.Format,
		Size:     src.Size,
		Hash:     hasher.ContentHash(data, 0),
		HasAlpha: hasAlpha,
	}

	var out *posterize.Buffer
	var table posterize.Table
	if cfg.Params.Passthrough {
		out = buf
	} else {
		out, err = posterize.Quantizer{Workers: cfg.Workers}.Apply(buf, p.table)
		if err != nil {
			return result, fmt.Errorf("quantize %s: %w", src.Key, err)
		}
		table = p.table
	}

	formats, unknown := p.registry.ResolveFormats(cfg.Formats, hasAlpha)
	for _, f := range unknown {
		fmt.Fprintf(os.Stderr, "[graylevels] warning: unknown format %q ignored\n", f)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("create output dir: %w", err)
	}

	frame := encoder.Frame{Image: out.Image(), Table: table, Quality: cfg.Quality}
	var flat *image.NRGBA
	if hasAlpha {
		flat = flatten(frame.Image, p.matte)
	}

	// Encode formats in parallel.
	results := make([]encodeResult, len(formats))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.Workers)

	for i, format := range formats {
		enc := p.registry.Get(format)
		if enc == nil {
			results[i].err = fmt.Errorf("no encoder for %s", format)
			continue
		}
		f := frame
		if flat != nil && !enc.SupportsAlpha() {
			f.Image = flat
			f.Table = nil
		}

		wg.Add(1)
		go func(idx int, enc encoder.Encoder, f encoder.Frame) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = writeOutput(src, p, enc, f, "")
			if results[idx].err == nil {
				p.logf("wrote: %s (%d bytes)", results[idx].output.Path, results[idx].output.Size)
			}
		}(i, enc, f)
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "[graylevels] error: %v\n", r.err)
			result.skipped++
			continue
		}
		result.outputs = append(result.outputs, r.output)
	}
	if len(result.outputs) == 0 {
		return result, fmt.Errorf("all %d formats failed to encode", len(formats))
	}

	if cfg.Strip {
		strip := p.table.Strip(out.Width, StripHeight)
		r := writeOutput(src, p, &encoder.PNGEncoder{}, encoder.Frame{Image: strip, Table: p.table}, ".strip")
		if r.err != nil {
			return result, fmt.Errorf("strip: %w", r.err)
		}
		r.output.Role = manifest.RoleStrip
		result.outputs = append(result.outputs, r.output)
	}

	return result, nil
}

// writeOutput encodes one frame and writes it under a content-addressed
// name: key.levels[suffix].hash.ext, with "orig" for levels in
// passthrough mode.
func writeOutput(src Source, p *Pipeline, enc encoder.Encoder, f encoder.Frame, suffix string) encodeResult {
	data, err := enc.Encode(f)
	if err != nil {
		return encodeResult{err: fmt.Errorf("encode %s as %s: %w", src.Key, enc.Format(), err)}
	}

	contentHash := hasher.ContentHash(data, 0)
	tag := fmt.Sprintf("%d", p.cfg.Params.Levels)
	if p.cfg.Params.Passthrough {
		tag = "orig"
	}
	tag += suffix
	fileName := fmt.Sprintf("%s.%s.%s.%s", src.Key, tag, contentHash[:hasher.NameLen], enc.Extension())

	if err := os.WriteFile(joinOut(p.cfg.OutputDir, fileName), data, 0o644); err != nil {
		return encodeResult{err: fmt.Errorf("write %s: %w", fileName, err)}
	}

	b := f.Image.Bounds()
	return encodeResult{output: manifest.Output{
		Format: enc.Format(),
		Width:  b.Dx(),
		Height: b.Dy(),
		Size:   int64(len(data)),
		Hash:   contentHash,
		Path:   fileName,
	}}
}

func joinOut(dir, name string) string {
	return filepath.Join(dir, name)
}

// fitDim maps a 0 bounding side to the image's own size, which never
// constrains imaging.Fit since it does not upscale.
func fitDim(want, have int) int {
	if want > 0 {
		return want
	}
	return have
}
