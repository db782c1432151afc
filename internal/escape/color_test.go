package escape

import (
	"testing"
)

func TestParseColorSpecRgbForm(t *testing.T) {
	cases := map[string]Rgb{
		"rgb:f/e/d":      {R: 0xFF, G: 0xEE, B: 0xDD},
		"rgb:11/aa/ff":   {R: 0x11, G: 0xAA, B: 0xFF},
		"rgb:f/ed1/cb23": {R: 0xFF, G: 0xEC, B: 0xCA},
		"rgb:ffff/0/0":   {R: 0xFF, G: 0x0, B: 0x0},
	}
	for in, want := range cases {
		got, ok := ParseColorSpec(in)
		if !ok || got != want {
			t.Errorf("ParseColorSpec(%q) = %+v, %v; want %+v, true", in, got, ok, want)
		}
	}
}

func TestParseColorSpecLegacyForm(t *testing.T) {
	cases := map[string]Rgb{
		"#1af":              {R: 0x10, G: 0xA0, B: 0xF0},
		"#11aaff":           {R: 0x11, G: 0xAA, B: 0xFF},
		"#110aa0ff0":        {R: 0x11, G: 0xAA, B: 0xFF},
		"#1100aa00ff00":     {R: 0x11, G: 0xAA, B: 0xFF},
	}
	for in, want := range cases {
		got, ok := ParseColorSpec(in)
		if !ok || got != want {
			t.Errorf("ParseColorSpec(%q) = %+v, %v; want %+v, true", in, got, ok, want)
		}
	}
}

func TestParseColorSpecInvalid(t *testing.T) {
	for _, in := range []string{"rgb:0//", "rgb://///", "#", "#f"} {
		if _, ok := ParseColorSpec(in); ok {
			t.Errorf("ParseColorSpec(%q) expected to fail", in)
		}
	}
}
