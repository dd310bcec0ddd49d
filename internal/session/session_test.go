package session

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/DNS451/gray-level-cli/internal/levels"
	"github.com/DNS451/gray-level-cli/internal/posterize"
)

func mustTable(t *testing.T, p Params) posterize.Table {
	t.Helper()
	tab, err := p.Table()
	if err != nil {
		t.Fatalf("table for %v: %v", p, err)
	}
	return tab
}

func TestNewDefaults(t *testing.T) {
	s := New()
	p := s.Params()
	if p.Levels != 10 || p.Distribution != 0 || p.Channel != posterize.Luminance || p.Passthrough {
		t.Fatalf("defaults: got %v", p)
	}
	if s.Table().Len() != 10 {
		t.Errorf("table len: got %d", s.Table().Len())
	}
}

func TestEveryMutationRebuildsTable(t *testing.T) {
	s := New()
	steps := []struct {
		name string
		do   func()
	}{
		{"increase", s.IncreaseLevels},
		{"decrease", s.DecreaseLevels},
		{"distribution", func() { s.SetDistribution(1.2) }},
		{"channel", func() { s.SetChannel(posterize.Green) }},
		{"select", func() { s.SelectLevelIndex(4) }},
		{"reset", s.ResetDistribution},
		{"channel name", func() { s.SetChannelName("blue") }},
	}
	for _, st := range steps {
		st.do()
		want := mustTable(t, s.Params())
		if !s.Table().Equal(want) {
			t.Errorf("after %s: stale table %v, want %v", st.name, s.Table(), want)
		}
	}
}

func TestLevelNavigationClamps(t *testing.T) {
	s := New()
	for i := 0; i < 8; i++ {
		s.DecreaseLevels()
	}
	if got := s.Params().Levels; got != 5 {
		t.Errorf("after decreases: got %d", got)
	}
	if !s.SelectLevels(20) || s.Params().Levels != 20 {
		t.Errorf("SelectLevels(20): got %d", s.Params().Levels)
	}
	if s.SelectLevels(7) {
		t.Error("SelectLevels(7) accepted a count outside the catalog")
	}
	if s.Params().Levels != 20 {
		t.Errorf("failed select changed levels to %d", s.Params().Levels)
	}
}

func TestCustomLevels(t *testing.T) {
	set, err := levels.New([]int{2, 3}, 0)
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	s := NewWithLevels(set)
	if s.Table().Len() != 2 {
		t.Errorf("table len: got %d", s.Table().Len())
	}
	s.IncreaseLevels()
	if s.Levels().Current() != 3 {
		t.Errorf("current: got %d", s.Levels().Current())
	}
}

func TestDistributionClampAndParse(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"0", 0, false},
		{" 1.5 ", 1.5, false},
		{"-0.3", -0.3, false},
		{"9", 3, false},
		{"-12", -3, false},
		{"", 0, false},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDistribution(tt.raw)
		if got != tt.want {
			t.Errorf("ParseDistribution(%q): got %v, want %v", tt.raw, got, tt.want)
		}
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDistribution(%q): err %v", tt.raw, err)
		}
		if err != nil && !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseDistribution(%q): got %v, want ErrMalformed", tt.raw, err)
		}
	}
	if ClampDistribution(math.NaN()) != 0 {
		t.Error("NaN not mapped to 0")
	}
}

func TestSetDistributionStringFailsClosed(t *testing.T) {
	s := New()
	s.SetDistribution(2)
	if err := s.SetDistributionString("two"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("got %v, want ErrMalformed", err)
	}
	if s.Params().Distribution != 0 {
		t.Errorf("distribution: got %v, want 0", s.Params().Distribution)
	}
	linear := mustTable(t, Params{Levels: 10})
	if !s.Table().Equal(linear) {
		t.Errorf("table not linear after malformed input: %v", s.Table())
	}
}

func TestUnknownChannelFallsBack(t *testing.T) {
	s := New()
	s.SetChannel(posterize.Red)
	if s.SetChannelName("magenta") {
		t.Error("unknown channel reported as recognized")
	}
	if s.Params().Channel != posterize.Luminance {
		t.Errorf("channel: got %v", s.Params().Channel)
	}
}

func TestApplyPassthrough(t *testing.T) {
	src, _ := posterize.NewBuffer(2, 1, []byte{10, 200, 30, 255, 255, 255, 255, 128})
	s := New()
	s.SetPassthrough(true)
	out, err := s.Apply(posterize.Quantizer{}, src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Errorf("passthrough changed pixels: %v", out.Pix)
	}
	out.Pix[0] = 0
	if src.Pix[0] != 10 {
		t.Error("passthrough output aliases source")
	}

	s.SetPassthrough(false)
	out, err = s.Apply(posterize.Quantizer{Workers: 2}, src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	c, _ := out.At(1, 0)
	if c != (color.NRGBA{255, 255, 255, 128}) {
		t.Errorf("quantized white: got %v", c)
	}
}
