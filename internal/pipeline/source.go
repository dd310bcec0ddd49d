package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source represents the input image file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// Key is the base name without extension, used to name outputs.
	Key string
	// Format is the source format (png, jpeg, webp, gif, bmp, tiff).
	Format string
	// Size is the file size in bytes.
	Size int64
}

// imageExtensions lists recognized image file extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// ResolveSource checks that path is a regular image file and describes it.
func ResolveSource(path string) (Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Source{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Source{}, err
	}
	if info.IsDir() {
		return Source{}, fmt.Errorf("%s is a directory; pass a single image", path)
	}

	ext := strings.ToLower(filepath.Ext(abs))
	if !imageExtensions[ext] {
		return Source{}, fmt.Errorf("%s: unsupported extension %q", path, ext)
	}

	// Normalize format name.
	format := strings.TrimPrefix(ext, ".")
	if format == "jpg" {
		format = "jpeg"
	}
	if format == "tif" {
		format = "tiff"
	}

	return Source{
		AbsPath: abs,
		Key:     strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs)),
		Format:  format,
		Size:    info.Size(),
	}, nil
}
