package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DNS451/gray-level-cli/internal/hasher"
	"github.com/DNS451/gray-level-cli/internal/levels"
	"github.com/DNS451/gray-level-cli/internal/manifest"
	"github.com/DNS451/gray-level-cli/internal/posterize"
	"github.com/DNS451/gray-level-cli/internal/session"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a manifest: table, versions and referenced files",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	errors := validateManifest(m, filepath.Dir(manifestPath))

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d levels, %d outputs, all files present\n", m.Params.Levels, m.Stats.TotalOutputs)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	// Check versions.
	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}
	if err := m.CheckToolVersion(version.String()); err != nil {
		errs = append(errs, err.Error())
	}

	// Check source.
	if m.Source.Width <= 0 || m.Source.Height <= 0 {
		errs = append(errs, fmt.Sprintf("source: invalid dimensions %dx%d", m.Source.Width, m.Source.Height))
	}

	// Check parameters.
	p := m.Params
	set := levels.Default()
	if set.IndexOf(p.Levels) < 0 {
		errs = append(errs, fmt.Sprintf("params: levels %d not in catalog %v", p.Levels, set.Catalog()))
	}
	if p.Distribution != session.ClampDistribution(p.Distribution) {
		errs = append(errs, fmt.Sprintf("params: distribution %v out of range", p.Distribution))
	}
	mode, ok := posterize.ParseChannel(p.Channel)
	if !ok {
		errs = append(errs, fmt.Sprintf("params: unknown channel %q", p.Channel))
	}

	// The table is a pure function of the parameters; rebuild and compare.
	want, err := posterize.BuildTable(p.Levels, p.Distribution, mode)
	if err != nil {
		errs = append(errs, fmt.Sprintf("params: %v", err))
	} else {
		got, err := posterize.ParseHexTable(m.Table.Colors)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("table: %v", err))
		case !got.Equal(want):
			errs = append(errs, fmt.Sprintf("table: recorded colors differ from parameters (want %v)", want.Hex()))
		}
		if h := hasher.TableHash(want); m.Table.Hash != h {
			errs = append(errs, fmt.Sprintf("table: hash %q, want %q", m.Table.Hash, h))
		}
	}

	// Check outputs.
	if len(m.Outputs) == 0 {
		errs = append(errs, "no outputs")
	}
	seenPaths := map[string]bool{}
	var totalBytes int64
	for i, o := range m.Outputs {
		totalBytes += o.Size
		if o.Format == "" {
			errs = append(errs, fmt.Sprintf("output[%d]: empty format", i))
		}
		if o.Width <= 0 || o.Height <= 0 {
			errs = append(errs, fmt.Sprintf("output[%d]: invalid dimensions %dx%d", i, o.Width, o.Height))
		}
		if o.Path == "" {
			errs = append(errs, fmt.Sprintf("output[%d]: missing path", i))
			continue
		}

		// Check duplicate paths.
		if seenPaths[o.Path] {
			errs = append(errs, fmt.Sprintf("output[%d]: duplicate path %q", i, o.Path))
		}
		seenPaths[o.Path] = true

		// Check file exists and matches.
		size, h, err := hashFile(filepath.Join(baseDir, o.Path))
		if err != nil {
			errs = append(errs, fmt.Sprintf("output[%d]: file not found: %s", i, o.Path))
			continue
		}
		if size != o.Size {
			errs = append(errs, fmt.Sprintf("output[%d]: size mismatch: manifest=%d, disk=%d", i, o.Size, size))
		}
		if h != o.Hash {
			errs = append(errs, fmt.Sprintf("output[%d]: hash mismatch: manifest=%s, disk=%s", i, o.Hash, h))
		}
	}

	// Verify stats consistency.
	if m.Stats.TotalOutputs != len(m.Outputs) {
		errs = append(errs, fmt.Sprintf("stats.total_outputs mismatch: %d != %d", m.Stats.TotalOutputs, len(m.Outputs)))
	}
	if m.Stats.TotalOutputBytes != totalBytes {
		errs = append(errs, fmt.Sprintf("stats.total_output_bytes mismatch: %d != %d", m.Stats.TotalOutputBytes, totalBytes))
	}

	return errs
}

// hashFile streams path through the content hasher.
func hashFile(path string) (int64, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return 0, "", err
	}
	h, err := hasher.ContentHashReader(f, 0)
	if err != nil {
		return 0, "", err
	}
	return info.Size(), h, nil
}
