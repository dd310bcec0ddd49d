package profile

import (
	"sort"

	"github.com/DNS451/gray-level-cli/internal/levels"
	"github.com/DNS451/gray-level-cli/internal/posterize"
	"github.com/DNS451/gray-level-cli/internal/session"
)

// DefaultName is the preset used when none is requested.
const DefaultName = "default"

// Profile is a named starting point for a posterize run.
type Profile struct {
	Name         string
	LevelIndex   int      // index into the level catalog
	Distribution float64  // curve bias, 2^d exponent
	Channel      string   // gray, red, green or blue
	Formats      []string // output formats in priority order
	Quality      int      // lossy encoding quality 1-100
}

// Built-in presets.
var profiles = map[string]Profile{
	DefaultName: {
		Name:       DefaultName,
		LevelIndex: levels.DefaultIndex,
		Channel:    "gray",
		Formats:    []string{"png"},
		Quality:    90,
	},
	"shadows": {
		Name:         "shadows",
		LevelIndex:   2,
		Distribution: 1,
		Channel:      "gray",
		Formats:      []string{"png"},
		Quality:      90,
	},
	"highlights": {
		Name:         "highlights",
		LevelIndex:   2,
		Distribution: -1,
		Channel:      "gray",
		Formats:      []string{"png"},
		Quality:      90,
	},
	"coarse": {
		Name:       "coarse",
		LevelIndex: 0,
		Channel:    "gray",
		Formats:    []string{"png", "gif"},
		Quality:    90,
	},
	"fine": {
		Name:       "fine",
		LevelIndex: 4,
		Channel:    "gray",
		Formats:    []string{"png", "webp"},
		Quality:    90,
	},
	"red": {
		Name:       "red",
		LevelIndex: levels.DefaultIndex,
		Channel:    "red",
		Formats:    []string{"png"},
		Quality:    90,
	},
	"green": {
		Name:       "green",
		LevelIndex: levels.DefaultIndex,
		Channel:    "green",
		Formats:    []string{"png"},
		Quality:    90,
	},
	"blue": {
		Name:       "blue",
		LevelIndex: levels.DefaultIndex,
		Channel:    "blue",
		Formats:    []string{"png"},
		Quality:    90,
	},
}

// Get returns a preset by name. Falls back to default if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		p.Formats = append([]string(nil), p.Formats...)
		return p
	}
	p := profiles[DefaultName]
	p.Formats = append([]string(nil), p.Formats...)
	p.Name = name // preserve requested name
	return p
}

// Known reports whether name is a built-in preset.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Names lists the built-in presets alphabetically.
func Names() []string {
	out := make([]string, 0, len(profiles))
	for n := range profiles {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Session starts a parameter session positioned at this preset.
func (p Profile) Session() *session.Session {
	s := session.New()
	s.SelectLevelIndex(p.LevelIndex)
	s.SetDistribution(p.Distribution)
	s.SetChannelName(p.Channel)
	return s
}

// Params is shorthand for p.Session().Params().
func (p Profile) Params() session.Params {
	return p.Session().Params()
}

// ChannelMode resolves the preset's channel name.
func (p Profile) ChannelMode() posterize.ChannelMode {
	m, _ := posterize.ParseChannel(p.Channel)
	return m
}
