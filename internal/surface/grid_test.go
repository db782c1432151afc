package surface

import "testing"

func TestNewGridDimensions(t *testing.T) {
	g := NewGrid(24, 80, nil)
	if g.Rows() != 24 {
		t.Errorf("expected 24 rows, got %d", g.Rows())
	}
	if g.Cols() != 80 {
		t.Errorf("expected 80 cols, got %d", g.Cols())
	}
}

func TestGridCellOutOfBounds(t *testing.T) {
	g := NewGrid(24, 80, nil)
	if g.Cell(-1, 0) != nil {
		t.Error("expected nil for negative row")
	}
	if g.Cell(24, 0) != nil {
		t.Error("expected nil for row >= rows")
	}
	if g.Cell(0, 80) != nil {
		t.Error("expected nil for col >= cols")
	}
}

func TestGridClearRow(t *testing.T) {
	g := NewGrid(24, 80, nil)
	g.Cell(0, 0).Char = 'A'
	g.ClearRow(0)
	if g.Cell(0, 0).Char != ' ' {
		t.Error("expected cell to be cleared")
	}
}

func TestGridScrollUpPushesToScrollback(t *testing.T) {
	g := NewGrid(5, 10, NewRingScrollback(100))
	for row := 0; row < 5; row++ {
		g.Cell(row, 0).Char = rune('0' + row)
	}
	g.ScrollUp(0, 5, 1)

	if g.Cell(0, 0).Char != '1' {
		t.Errorf("expected '1', got %q", g.Cell(0, 0).Char)
	}
	if g.Cell(4, 0).Char != ' ' {
		t.Error("expected last row cleared")
	}
	if g.ScrollbackLen() != 1 {
		t.Fatalf("expected 1 scrollback line, got %d", g.ScrollbackLen())
	}
	if g.ScrollbackLine(0)[0].Char != '0' {
		t.Errorf("expected scrollback to hold row 0's content")
	}
}

func TestGridScrollDownClearsTop(t *testing.T) {
	g := NewGrid(5, 10, nil)
	for row := 0; row < 5; row++ {
		g.Cell(row, 0).Char = rune('0' + row)
	}
	g.ScrollDown(0, 5, 2)
	if g.Cell(0, 0).Char != ' ' || g.Cell(1, 0).Char != ' ' {
		t.Error("expected top two rows cleared")
	}
	if g.Cell(2, 0).Char != '0' {
		t.Errorf("expected row 2 to hold old row 0, got %q", g.Cell(2, 0).Char)
	}
}

func TestGridResizePreservesTopLeft(t *testing.T) {
	g := NewGrid(5, 10, nil)
	g.Cell(0, 0).Char = 'X'
	g.Resize(10, 20)
	if g.Rows() != 10 || g.Cols() != 20 {
		t.Fatalf("unexpected size after resize: %dx%d", g.Rows(), g.Cols())
	}
	if g.Cell(0, 0).Char != 'X' {
		t.Error("expected preserved content at (0,0)")
	}
	if g.Cell(9, 19).Char != ' ' {
		t.Error("expected new cells to be blank")
	}
}

func TestGridDamageTracking(t *testing.T) {
	g := NewGrid(5, 10, nil)
	if g.Damage().Any() {
		t.Fatal("expected no damage on fresh grid")
	}
	g.SetCell(2, 0, NewCell())
	if !g.Damage().Any() {
		t.Fatal("expected damage after SetCell")
	}
	rows := g.Damage().DirtyRows()
	if len(rows) != 1 || rows[0] != 2 {
		t.Fatalf("expected dirty row [2], got %v", rows)
	}
	g.Damage().Clear()
	if g.Damage().Any() {
		t.Fatal("expected damage cleared")
	}
}

func TestGridTabStops(t *testing.T) {
	g := NewGrid(5, 20, nil)
	if g.NextTabStop(0) != 8 {
		t.Errorf("expected next tab stop at 8, got %d", g.NextTabStop(0))
	}
	g.ClearAllTabStops()
	g.SetTabStop(5)
	if g.NextTabStop(0) != 5 {
		t.Errorf("expected next tab stop at 5, got %d", g.NextTabStop(0))
	}
	if g.PrevTabStop(10) != 5 {
		t.Errorf("expected prev tab stop at 5, got %d", g.PrevTabStop(10))
	}
}

func TestGridLineText(t *testing.T) {
	g := NewGrid(1, 10, nil)
	for i, r := range "hi" {
		g.Cell(0, i).Char = r
	}
	if got := g.LineText(0); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}
}
