package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DNS451/gray-level-cli/internal/manifest"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <manifest_or_out_dir>",
	Short: "Summarise a graylevels manifest",
	Long: `Prints the parameters, table and outputs recorded in a manifest.
Given a directory, every *.graylevels.json inside it is inspected.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	paths, err := manifestPaths(args[0])
	if err != nil {
		return err
	}
	for _, path := range paths {
		m, err := manifest.ReadJSON(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		printInspect(path, m)
	}
	return nil
}

// manifestPaths expands a directory into the manifests it holds.
func manifestPaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	paths, err := filepath.Glob(filepath.Join(path, "*"+manifest.FileSuffix))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no *%s in %s", manifest.FileSuffix, path)
	}
	return paths, nil
}

func printInspect(path string, m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest:      %s\n", path)
	fmt.Printf("  Version:       %d (graylevels %s)\n", m.Version, m.ToolVersion)
	fmt.Printf("  Generated:     %s\n", m.GeneratedAt)
	fmt.Printf("  Preset:        %s\n", m.Preset)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:       %d\n", m.BuildInfo.Workers)
		if m.BuildInfo.Fit != "" {
			fmt.Printf("  Fit:           %s\n", m.BuildInfo.Fit)
		}
		if m.BuildInfo.Matte != "" {
			fmt.Printf("  Matte:         %s\n", m.BuildInfo.Matte)
		}
	}
	fmt.Println()

	s := m.Source
	fmt.Printf("  Source:        %s  %dx%d %s  %s  alpha=%t\n",
		s.Path, s.Width, s.Height, s.Format, formatBytes(s.Size), s.HasAlpha)
	p := m.Params
	fmt.Printf("  Params:        levels=%d (index %d)  distribution=%.1f  exponent=%.3f  channel=%s",
		p.Levels, p.LevelIndex, p.Distribution, p.Exponent, p.Channel)
	if p.Passthrough {
		fmt.Print("  passthrough")
	}
	fmt.Println()
	fmt.Printf("  Table:         %s\n", strings.Join(m.Table.Colors, " "))
	fmt.Println()

	// Per-format breakdown.
	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, o := range m.Outputs {
		fs := formatStats[o.Format]
		fs.count++
		fs.bytes += o.Size
		formatStats[o.Format] = fs
	}
	fmt.Println("  Format breakdown:")
	for _, f := range []string{"png", "webp", "gif", "jpeg", "raw"} {
		if fs, ok := formatStats[f]; ok {
			fmt.Printf("    %-5s  %3d files  %s\n", f, fs.count, formatBytes(fs.bytes))
		}
	}
	if s.Size > 0 && m.Stats.TotalOutputBytes > 0 {
		fmt.Printf("  Output/source:  %.1f%%\n", float64(m.Stats.TotalOutputBytes)/float64(s.Size)*100)
	}

	// Warnings.
	var warnings []string
	if len(m.Outputs) == 0 {
		warnings = append(warnings, "no outputs")
	}
	if len(m.Table.Colors) != p.Levels {
		warnings = append(warnings, fmt.Sprintf("table has %d colors for %d levels", len(m.Table.Colors), p.Levels))
	}
	if m.Stats.SkippedFormats > 0 {
		warnings = append(warnings, fmt.Sprintf("%d formats failed to encode", m.Stats.SkippedFormats))
	}
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
}
