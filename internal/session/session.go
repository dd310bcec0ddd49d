// Package session holds the current posterization parameters and keeps
// the quantization table in step with them.
//
// A Session has a single writer: the last mutation wins, and it is not
// safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/DNS451/gray-level-cli/internal/levels"
	"github.com/DNS451/gray-level-cli/internal/posterize"
)

// ErrMalformed marks a parameter string that could not be parsed. The
// accompanying value is always the safe default.
var ErrMalformed = errors.New("session: malformed parameter")

// Params is an immutable snapshot of the parameters that determine a table.
type Params struct {
	Levels       int
	Distribution float64
	Channel      posterize.ChannelMode
	Passthrough  bool
}

// Table builds the table these parameters describe.
func (p Params) Table() (posterize.Table, error) {
	return posterize.BuildTable(p.Levels, p.Distribution, p.Channel)
}

func (p Params) String() string {
	return fmt.Sprintf("levels=%d distribution=%.1f channel=%s passthrough=%t",
		p.Levels, p.Distribution, p.Channel, p.Passthrough)
}

// Session is the mutable parameter state behind a posterize run.
type Session struct {
	levels       *levels.Set
	distribution float64
	channel      posterize.ChannelMode
	passthrough  bool
	table        posterize.Table
}

// New starts a session over the default catalog with a linear gray curve.
func New() *Session {
	s := &Session{levels: levels.Default()}
	s.rebuild()
	return s
}

// NewWithLevels starts a session over a custom level set.
func NewWithLevels(set *levels.Set) *Session {
	s := &Session{levels: set}
	s.rebuild()
	return s
}

func (s *Session) rebuild() {
	// Catalog entries are >= 2 and the distribution is always finite, so
	// BuildTable cannot fail here.
	t, err := posterize.BuildTable(s.levels.Current(), s.distribution, s.channel)
	if err != nil {
		panic(fmt.Sprintf("session: rebuild table: %v", err))
	}
	s.table = t
}

// Levels exposes the underlying level set for read access.
func (s *Session) Levels() *levels.Set { return s.levels }

// IncreaseLevels moves to the next catalog entry.
func (s *Session) IncreaseLevels() {
	s.levels.Increase()
	s.rebuild()
}

// DecreaseLevels moves to the previous catalog entry.
func (s *Session) DecreaseLevels() {
	s.levels.Decrease()
	s.rebuild()
}

// SelectLevelIndex jumps to a catalog index, clamped.
func (s *Session) SelectLevelIndex(i int) {
	s.levels.Select(i)
	s.rebuild()
}

// SelectLevels jumps to the catalog entry equal to n. It reports false
// and leaves the selection unchanged if n is not in the catalog.
func (s *Session) SelectLevels(n int) bool {
	i := s.levels.IndexOf(n)
	if i < 0 {
		return false
	}
	s.SelectLevelIndex(i)
	return true
}

// SetDistribution clamps d into the supported range; non-finite values
// become 0.
func (s *Session) SetDistribution(d float64) {
	s.distribution = ClampDistribution(d)
	s.rebuild()
}

// SetDistributionString parses raw and applies it. On a parse failure
// the distribution is reset to 0 and the error is returned for logging.
func (s *Session) SetDistributionString(raw string) error {
	d, err := ParseDistribution(raw)
	s.SetDistribution(d)
	return err
}

// ResetDistribution returns to the linear curve.
func (s *Session) ResetDistribution() { s.SetDistribution(0) }

// SetChannel selects the output channel.
func (s *Session) SetChannel(m posterize.ChannelMode) {
	s.channel = m
	s.rebuild()
}

// SetChannelName parses name and applies it; unknown names select gray
// and report false.
func (s *Session) SetChannelName(name string) bool {
	m, ok := posterize.ParseChannel(name)
	s.SetChannel(m)
	return ok
}

// SetPassthrough enables or disables quantization.
func (s *Session) SetPassthrough(on bool) { s.passthrough = on }

// Params returns a snapshot of the current parameters.
func (s *Session) Params() Params {
	return Params{
		Levels:       s.levels.Current(),
		Distribution: s.distribution,
		Channel:      s.channel,
		Passthrough:  s.passthrough,
	}
}

// Table returns the table for the current parameters. Callers must not
// modify it.
func (s *Session) Table() posterize.Table { return s.table }

// Apply quantizes src with the current table, or copies it untouched in
// passthrough mode. The result never aliases src.
func (s *Session) Apply(q posterize.Quantizer, src *posterize.Buffer) (*posterize.Buffer, error) {
	if s.passthrough {
		if src == nil {
			return nil, fmt.Errorf("%w: nil buffer", posterize.ErrInvalidInput)
		}
		return src.Clone(), nil
	}
	return q.Apply(src, s.table)
}

// ClampDistribution bounds d to [MinDistribution, MaxDistribution] and
// maps NaN and infinities to 0.
func ClampDistribution(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return math.Max(posterize.MinDistribution, math.Min(posterize.MaxDistribution, d))
}

// ParseDistribution parses a user-entered distribution value, failing
// closed to 0.
func ParseDistribution(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("%w: distribution %q", ErrMalformed, raw)
	}
	return ClampDistribution(d), nil
}
