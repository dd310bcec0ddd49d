package posterize

import (
	"errors"
	"image/color"
	"testing"
)

func TestBuildTableLinearLuminance(t *testing.T) {
	tab, err := BuildTable(5, 0, Luminance)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []uint8{0, 64, 128, 191, 255}
	if tab.Len() != len(want) {
		t.Fatalf("len: got %d", tab.Len())
	}
	for i, c := range tab {
		if c.R != want[i] || c.G != want[i] || c.B != want[i] || c.A != 255 {
			t.Errorf("entry %d: got %v, want gray %d", i, c, want[i])
		}
	}
}

func TestBuildTableProperties(t *testing.T) {
	for _, n := range []int{2, 5, 10, 15, 20, 25} {
		for d := -3.0; d <= 3.0; d += 0.5 {
			tab, err := BuildTable(n, d, Luminance)
			if err != nil {
				t.Fatalf("build(%d, %v): %v", n, d, err)
			}
			iv := tab.Intensities()
			if iv[0] != 0 {
				t.Errorf("build(%d, %v): first entry %d, want 0", n, d, iv[0])
			}
			if iv[n-1] != 255 {
				t.Errorf("build(%d, %v): last entry %d, want 255", n, d, iv[n-1])
			}
			for i := 1; i < n; i++ {
				if iv[i] < iv[i-1] {
					t.Errorf("build(%d, %v): not monotonic at %d (%d < %d)", n, d, i, iv[i], iv[i-1])
				}
			}
		}
	}
}

func TestBuildTableChannelIsolation(t *testing.T) {
	red, err := BuildTable(10, 0.7, Red)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i, c := range red {
		if c.G != 0 || c.B != 0 {
			t.Errorf("red entry %d: got %v", i, c)
		}
	}
	gray, _ := BuildTable(10, 0.7, Luminance)
	for i := range red {
		if red[i].R != gray[i].R {
			t.Errorf("entry %d: red %d differs from gray %d", i, red[i].R, gray[i].R)
		}
	}
	blue, _ := BuildTable(10, 0.7, Blue)
	for i, c := range blue {
		if c.R != 0 || c.G != 0 || c.B != gray[i].B {
			t.Errorf("blue entry %d: got %v", i, c)
		}
	}
}

func TestBuildTableDegenerate(t *testing.T) {
	tab, err := BuildTable(1, 0, Luminance)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("got %v, want ErrInvalidParameter", err)
	}
	if tab != nil {
		t.Errorf("expected nil table, got %v", tab)
	}
}

func TestBuildTablePure(t *testing.T) {
	a, _ := BuildTable(15, -1.2, Green)
	b, _ := BuildTable(15, -1.2, Green)
	if !a.Equal(b) {
		t.Error("identical parameters produced different tables")
	}
	c, _ := BuildTable(15, -1.1, Green)
	if a.Equal(c) {
		t.Error("different distributions produced identical tables")
	}
}

func TestTableHexRoundTrip(t *testing.T) {
	tab, _ := BuildTable(5, 0, Red)
	hex := tab.Hex()
	if hex[0] != "#000000" || hex[4] != "#ff0000" {
		t.Errorf("hex: got %v", hex)
	}
	back, err := ParseHexTable(hex)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !back.Equal(tab) {
		t.Errorf("round trip: got %v, want %v", back, tab)
	}
	if _, err := ParseHexTable([]string{"nope"}); err == nil {
		t.Error("expected error for malformed hex")
	}
}

func TestTablePalette(t *testing.T) {
	tab, _ := BuildTable(5, 0, Luminance)
	p := tab.Palette()
	cp := p.ColorPalette()
	if len(cp) != 5 {
		t.Fatalf("palette len: got %d", len(cp))
	}
	if p.Len() != 5 {
		t.Errorf("Len: got %d", p.Len())
	}
	if i := p.IndexNear(tab[2]); i != 2 {
		t.Errorf("IndexNear exact entry: got %d, want 2", i)
	}
	near := color.RGBA{R: tab[3].R - 3, G: tab[3].G - 3, B: tab[3].B - 3, A: 0xff}
	if i := p.IndexNear(near); i != 3 {
		t.Errorf("IndexNear off-table color: got %d, want 3", i)
	}
}

func TestTableStrip(t *testing.T) {
	tab, _ := BuildTable(5, 0, Luminance)
	strip := tab.Strip(52, 4)
	if strip.Bounds().Dx() != 52 || strip.Bounds().Dy() != 4 {
		t.Fatalf("bounds: got %v", strip.Bounds())
	}
	// Swatches are 11,11,10,10,10 wide.
	checks := map[int]uint8{0: 0, 10: 0, 11: 64, 21: 64, 22: 128, 32: 191, 51: 255}
	for x, want := range checks {
		if got := strip.NRGBAAt(x, 2).R; got != want {
			t.Errorf("strip x=%d: got %d, want %d", x, got, want)
		}
	}
	if empty := Table(nil).Strip(10, 10); empty.Bounds().Dx() != 0 {
		t.Errorf("empty table strip: got %v", empty.Bounds())
	}
}
