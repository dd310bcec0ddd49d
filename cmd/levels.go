package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DNS451/gray-level-cli/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the permitted level counts",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		for i, n := range levels.DefaultCatalog() {
			mark := " "
			if i == levels.DefaultIndex {
				mark = "*"
			}
			fmt.Printf("  %s %d  %2d levels\n", mark, i, n)
		}
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
