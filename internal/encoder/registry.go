package encoder

import (
	"fmt"
	"strings"
)

// priority is the display and fallback order of formats.
var priority = []string{"png", "webp", "gif", "jpeg", "raw"}

var aliases = map[string]string{
	"jpg":      "jpeg",
	"zst":      "raw",
	"rgba":     "raw",
	"rgba.zst": "raw",
}

// Registry holds all available encoders keyed by format.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		&PNGEncoder{},
		&WebPEncoder{},
		&GIFEncoder{},
		&JPEGEncoder{},
		&RawEncoder{},
	}

	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}

	return r
}

// Normalize lowercases a format name and resolves aliases.
func Normalize(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	if a, ok := aliases[f]; ok {
		return a
	}
	return f
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[Normalize(format)]
}

// Available returns all available format names.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range priority {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// ResolveFormats filters requested formats to those available, in request
// order and without duplicates. Unknown names are returned separately.
// PNG is added when nothing usable was requested, and when the source has
// alpha but no requested format can carry it.
func (r *Registry) ResolveFormats(requested []string, hasAlpha bool) (resolved, unknown []string) {
	seen := map[string]bool{}
	alphaOK := false

	for _, f := range requested {
		f = Normalize(f)
		enc, ok := r.encoders[f]
		if !ok {
			unknown = append(unknown, f)
			continue
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		resolved = append(resolved, f)
		alphaOK = alphaOK || enc.SupportsAlpha()
	}

	if len(resolved) == 0 || (hasAlpha && !alphaOK) {
		if _, ok := r.encoders["png"]; ok && !seen["png"] {
			resolved = append(resolved, "png")
		}
	}

	return resolved, unknown
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
