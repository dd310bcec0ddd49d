package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DNS451/gray-level-cli/internal/hasher"
	"github.com/DNS451/gray-level-cli/internal/manifest"
	"github.com/DNS451/gray-level-cli/internal/posterize"
)

var (
	tableParams paramFlags
	tableJSON   bool
	tableSwatch bool
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the quantization table for a set of parameters",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	tableParams.register(tableCmd)
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "print the table as JSON")
	tableCmd.Flags().BoolVar(&tableSwatch, "swatch", false, "draw a 24-bit color swatch per level")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	_, s, err := tableParams.resolve(cmd)
	if err != nil {
		return err
	}
	p := s.Params()
	t := s.Table()

	if tableJSON {
		out := struct {
			Params manifest.Params `json:"params"`
			Table  manifest.Table  `json:"table"`
		}{
			Params: manifest.Params{
				Levels:       p.Levels,
				LevelIndex:   s.Levels().Index(),
				Distribution: p.Distribution,
				Exponent:     posterize.Exponent(p.Distribution),
				Channel:      p.Channel.String(),
			},
			Table: manifest.Table{Hash: hasher.TableHash(t), Colors: t.Hex()},
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("  Levels %d, distribution %.1f (exponent %.3f), channel %s\n\n",
		p.Levels, p.Distribution, posterize.Exponent(p.Distribution), p.Channel)
	hex := t.Hex()
	for i, v := range t.Intensities() {
		swatch := ""
		if tableSwatch {
			c := t[i]
			swatch = fmt.Sprintf("\x1b[48;2;%d;%d;%dm      \x1b[0m  ", c.R, c.G, c.B)
		}
		fmt.Printf("  %s%3d  %3d  %s\n", swatch, i, v, hex[i])
	}
	fmt.Println()
	return nil
}
