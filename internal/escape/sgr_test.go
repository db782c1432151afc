package escape

import (
	"testing"
)

func TestParseSGREmptyIsReset(t *testing.T) {
	attrs := ParseSGR(nil)
	if len(attrs) != 1 || attrs[0].Kind != AttrReset {
		t.Fatalf("expected single reset, got %+v", attrs)
	}
}

func TestParseSGRBoldAndSemicolonColor(t *testing.T) {
	attrs := ParseSGR([][]int64{{1}, {31}})
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %+v", attrs)
	}
	if attrs[0].Kind != AttrBold {
		t.Errorf("expected bold, got %+v", attrs[0])
	}
	if attrs[1].Kind != AttrForeground || attrs[1].Color.Std != Red {
		t.Errorf("expected red foreground, got %+v", attrs[1])
	}
}

func TestParseSGRClassicTrueColor(t *testing.T) {
	attrs := ParseSGR([][]int64{{38}, {2}, {10}, {20}, {30}})
	if len(attrs) != 1 {
		t.Fatalf("expected 1 attr, got %+v", attrs)
	}
	a := attrs[0]
	if a.Kind != AttrForeground || a.Color.Kind != ColorTrueColor {
		t.Fatalf("expected true color foreground, got %+v", a)
	}
	if a.Color.RGB != (Rgb{R: 10, G: 20, B: 30}) {
		t.Errorf("unexpected rgb: %+v", a.Color.RGB)
	}
}

func TestParseSGRColonTrueColor(t *testing.T) {
	attrs := ParseSGR([][]int64{{38, 2, 10, 20, 30}})
	if len(attrs) != 1 {
		t.Fatalf("expected 1 attr, got %+v", attrs)
	}
	a := attrs[0]
	if a.Kind != AttrForeground || a.Color.Kind != ColorTrueColor {
		t.Fatalf("expected true color foreground, got %+v", a)
	}
	if a.Color.RGB != (Rgb{R: 10, G: 20, B: 30}) {
		t.Errorf("unexpected rgb: %+v", a.Color.RGB)
	}
}

func TestParseSGRColonIndexed(t *testing.T) {
	attrs := ParseSGR([][]int64{{48, 5, 200}})
	if len(attrs) != 1 {
		t.Fatalf("expected 1 attr, got %+v", attrs)
	}
	a := attrs[0]
	if a.Kind != AttrBackground || a.Color.Kind != ColorIndexed || a.Color.Indexed != 200 {
		t.Fatalf("unexpected attr: %+v", a)
	}
}

func TestUnderlineStyleVariants(t *testing.T) {
	attrs := ParseSGR([][]int64{{4, 3}})
	if len(attrs) != 1 || attrs[0].Kind != AttrCurlyUnderline {
		t.Fatalf("expected curly underline, got %+v", attrs)
	}
}
