package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DNS451/gray-level-cli/internal/levels"
	"github.com/DNS451/gray-level-cli/internal/profile"
	"github.com/DNS451/gray-level-cli/internal/session"
)

// paramFlags are the parameter flags shared by apply and table.
type paramFlags struct {
	preset       string
	levels       int
	levelIndex   int
	up           int
	down         int
	distribution string
	channel      string
	passthrough  bool
}

func (f *paramFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.preset, "preset", "p", profile.DefaultName, "parameter preset ("+fmt.Sprint(profile.Names())+")")
	fl.IntVarP(&f.levels, "levels", "l", 0, fmt.Sprintf("level count, one of %v", levels.DefaultCatalog()))
	fl.IntVar(&f.levelIndex, "level-index", 0, "level catalog index (clamped)")
	fl.IntVar(&f.up, "up", 0, "step the level count up n times")
	fl.IntVar(&f.down, "down", 0, "step the level count down n times")
	fl.StringVarP(&f.distribution, "distribution", "d", "0", "curve bias in [-3, 3]; exponent is 2^d")
	fl.StringVarP(&f.channel, "channel", "c", "gray", "output channel: gray, red, green or blue")
	fl.BoolVar(&f.passthrough, "passthrough", false, "skip quantization and write the source unchanged")
}

// resolve builds a session from the preset, then applies every flag the
// user set, in the order a viewer would: level, distribution, channel.
func (f *paramFlags) resolve(cmd *cobra.Command) (profile.Profile, *session.Session, error) {
	name := f.preset
	if !cmd.Flags().Changed("preset") && cfg.Preset != "" {
		name = cfg.Preset
	}
	if !profile.Known(name) {
		warnf("unknown preset %q, using %s", name, profile.DefaultName)
	}
	prof := profile.Get(name)
	s := prof.Session()

	changed := cmd.Flags().Changed
	if changed("levels") {
		if !s.SelectLevels(f.levels) {
			return prof, nil, fmt.Errorf("--levels %d: not in catalog %v", f.levels, s.Levels().Catalog())
		}
	}
	if changed("level-index") {
		s.SelectLevelIndex(f.levelIndex)
	}
	for i := 0; i < f.up; i++ {
		s.IncreaseLevels()
	}
	for i := 0; i < f.down; i++ {
		s.DecreaseLevels()
	}
	if changed("distribution") {
		if err := s.SetDistributionString(f.distribution); err != nil {
			warnf("%v; using 0", err)
		}
	}
	if changed("channel") {
		if !s.SetChannelName(f.channel) {
			warnf("unknown channel %q, using gray", f.channel)
		}
	}
	s.SetPassthrough(f.passthrough)

	logVerbose("preset: %s, %s", prof.Name, s.Params())
	return prof, s, nil
}
