package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/DNS451/gray-level-cli/internal/manifest"
	"github.com/DNS451/gray-level-cli/internal/pipeline"
)

var (
	applyParams  paramFlags
	applyOutDir  string
	applyFormats []string
	applyQuality int
	applyWorkers int
	applyFit     string
	applyMatte   string
	applyStrip   bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <image>",
	Short: "Posterize one image and write the outputs + manifest",
	Long: `Decodes the image (png, jpg, jpeg, webp, gif, bmp, tiff), optionally fits
it into a bounding box, maps every pixel's luminance onto the selected
levels and encodes the result in each requested format.

Output filenames are content-addressed: <name>.<levels>.<hash>.ext
A manifest <name>.graylevels.json is written next to them.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyParams.register(applyCmd)
	applyCmd.Flags().StringVarP(&applyOutDir, "out", "o", "", "output directory (default $GRAYLEVELS_OUT or ./graylevels_out)")
	applyCmd.Flags().StringSliceVarP(&applyFormats, "formats", "f", nil, "output formats: png, webp, gif, jpeg, raw (default from preset)")
	applyCmd.Flags().IntVarP(&applyQuality, "quality", "q", 0, "jpeg quality 1-100 (0 = preset default)")
	applyCmd.Flags().IntVarP(&applyWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	applyCmd.Flags().StringVar(&applyFit, "fit", "", "fit into WxH before quantizing (0 keeps aspect, e.g. 800x0)")
	applyCmd.Flags().StringVar(&applyMatte, "matte", "", "background for formats without alpha: white, gray, black")
	applyCmd.Flags().BoolVar(&applyStrip, "strip", false, "also write the levels as a preview strip")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	start := time.Now()

	prof, s, err := applyParams.resolve(cmd)
	if err != nil {
		return err
	}

	outDir := firstNonEmpty(applyOutDir, cfg.OutDir)
	absOutput, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	formats := prof.Formats
	if len(cfg.Formats) > 0 {
		formats = cfg.Formats
	}
	if cmd.Flags().Changed("formats") {
		formats = applyFormats
	}
	quality := firstPositive(applyQuality, cfg.Quality, prof.Quality)
	workers := firstPositive(applyWorkers, cfg.Workers)
	fit, err := pipeline.ParseFit(applyFit)
	if err != nil {
		return err
	}

	logVerbose("input:   %s", args[0])
	logVerbose("output:  %s", absOutput)
	logVerbose("formats: %s (quality=%d)", strings.Join(formats, ","), quality)

	p, err := pipeline.New(pipeline.Config{
		InputPath:   args[0],
		OutputDir:   absOutput,
		Preset:      prof.Name,
		Params:      s.Params(),
		LevelIndex:  s.Levels().Index(),
		Formats:     formats,
		Quality:     quality,
		Workers:     workers,
		Fit:         fit,
		Matte:       firstNonEmpty(applyMatte, cfg.Matte),
		Strip:       applyStrip,
		Verbose:     verbose,
		ToolVersion: version.String(),
	})
	if err != nil {
		return err
	}

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	key := strings.TrimSuffix(m.Source.Path, filepath.Ext(m.Source.Path))
	manifestPath := p.ManifestPath(key)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printApplyReport(m, manifestPath, time.Since(start))
	return nil
}

func printApplyReport(m *manifest.Manifest, manifestPath string, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║             graylevels apply complete            ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	p := m.Params
	fmt.Printf("  Source:       %s (%dx%d %s, %s)\n",
		m.Source.Path, m.Source.Width, m.Source.Height, m.Source.Format, formatBytes(m.Source.Size))
	if p.Passthrough {
		fmt.Printf("  Mode:         passthrough\n")
	} else {
		fmt.Printf("  Levels:       %d\n", p.Levels)
		fmt.Printf("  Distribution: %.1f (exponent %.3f)\n", p.Distribution, p.Exponent)
		fmt.Printf("  Channel:      %s\n", p.Channel)
		fmt.Printf("  Table:        %s\n", strings.Join(m.Table.Colors, " "))
	}
	fmt.Println()

	fmt.Printf("  Outputs (%d, %s):\n", m.Stats.TotalOutputs, formatBytes(m.Stats.TotalOutputBytes))
	for _, o := range m.Outputs {
		role := ""
		if o.Role != "" {
			role = "  [" + o.Role + "]"
		}
		fmt.Printf("    %-5s %5dx%-5d %9s  %s%s\n", o.Format, o.Width, o.Height, formatBytes(o.Size), o.Path, role)
	}
	if m.Stats.SkippedFormats > 0 {
		fmt.Printf("  Skipped:      %d formats (encode errors)\n", m.Stats.SkippedFormats)
	}
	fmt.Println()
	fmt.Printf("  Manifest:     %s\n", manifestPath)
	fmt.Printf("  Time:         %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
