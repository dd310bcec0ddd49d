package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/blang/semver"
	"github.com/spf13/cobra"

	"github.com/DNS451/gray-level-cli/internal/config"
)

var (
	version = semver.MustParse("0.1.0")
	verbose bool
	envFile string

	// cfg is resolved from the environment before any command runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "graylevels",
	Short: "Posterize images onto a few gray or single-channel levels",
	Long: `graylevels maps image luminance through a power curve onto a small
number of output levels (5, 10, 15, 20 or 25) and writes the result
as gray or isolated to the red, green or blue channel.

The distribution control d biases the curve: the exponent is 2^d,
so d > 0 darkens the lower levels and d < 0 lifts them.`,
	Version:      version.String(),
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with GRAYLEVELS_* defaults")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"graylevels %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[graylevels] "+format+"\n", args...)
	}
}

// warnf always prints to stderr.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[graylevels] warning: "+format+"\n", args...)
}
