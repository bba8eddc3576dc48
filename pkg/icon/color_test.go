package icon

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantErr bool
	}{
		{"LinkedIn blue", "#0077b5", 0x00, 0x77, 0xb5, false},
		{"No hash prefix", "0077b5", 0x00, 0x77, 0xb5, false},
		{"White", "#ffffff", 0xff, 0xff, 0xff, false},
		{"Too short", "#fff", 0, 0, 0, true},
		{"Too long", "#00112233", 0, 0, 0, true},
		{"Non-hex digits", "#zzzzzz", 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("ParseColor(%q) = %02x%02x%02x, want %02x%02x%02x",
					tt.in, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestParseColorEmptyUsesDefault(t *testing.T) {
	r, g, b, err := ParseColor("")
	if err != nil {
		t.Fatal(err)
	}
	if r != 0x00 || g != 0x77 || b != 0xb5 {
		t.Errorf("empty color = %02x%02x%02x, want default %s", r, g, b, DefaultColor)
	}
}

func TestParseColorRandom(t *testing.T) {
	if _, _, _, err := ParseColor("random"); err != nil {
		t.Fatalf("ParseColor(random): %v", err)
	}
}

func TestResolveColor(t *testing.T) {
	got, err := ResolveColor("#0077B5")
	if err != nil {
		t.Fatal(err)
	}
	if got != "#0077b5" {
		t.Errorf("ResolveColor = %q, want %q", got, "#0077b5")
	}

	pinned, err := ResolveColor("random")
	if err != nil {
		t.Fatal(err)
	}
	if len(pinned) != 7 || pinned[0] != '#' {
		t.Errorf("ResolveColor(random) = %q, want #rrggbb form", pinned)
	}
}

func TestParseHexRGBAFallback(t *testing.T) {
	if got := ParseHexRGBA("not-a-color"); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("ParseHexRGBA fallback = %v, want white", got)
	}
	if got := ParseHexRGBA("#102030"); got != (color.RGBA{0x10, 0x20, 0x30, 255}) {
		t.Errorf("ParseHexRGBA = %v", got)
	}
}

func TestNewSolidImage(t *testing.T) {
	c := color.RGBA{0x10, 0x20, 0x30, 0xff}
	img := NewSolidImage(8, 8, c)
	for _, p := range [][2]int{{0, 0}, {7, 7}, {3, 4}} {
		if got := img.RGBAAt(p[0], p[1]); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}
