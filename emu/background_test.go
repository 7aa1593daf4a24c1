package emu

import "testing"

// --- Nametable resolution tests ---

func TestSnapshot_ResolveNameTable_NoScroll(t *testing.T) {
	s := makeTestSnapshot()

	table, tileX, tileY, fineX, fineY := s.resolveNameTable(83, 45)
	if table != 0 {
		t.Errorf("expected table 0, got %d", table)
	}
	if tileX != 10 || tileY != 5 {
		t.Errorf("expected tile (10,5), got (%d,%d)", tileX, tileY)
	}
	if fineX != 3 || fineY != 5 {
		t.Errorf("expected fine offset (3,5), got (%d,%d)", fineX, fineY)
	}
}

func TestSnapshot_ResolveNameTable_BaseBits(t *testing.T) {
	s := makeTestSnapshot()

	// The effective table is the XOR of the two base bits.
	cases := []struct {
		baseX, baseY bool
		want         int
	}{
		{false, false, 0},
		{true, false, 1},
		{false, true, 1},
		{true, true, 0},
	}
	for _, c := range cases {
		s.Scroll = Scroll{BaseX: c.baseX, BaseY: c.baseY}
		table, _, _, _, _ := s.resolveNameTable(0, 0)
		if table != c.want {
			t.Errorf("baseX=%v baseY=%v: expected table %d, got %d",
				c.baseX, c.baseY, c.want, table)
		}
	}
}

func TestSnapshot_ResolveNameTable_XWraparound(t *testing.T) {
	s := makeTestSnapshot()
	s.Scroll = Scroll{X: 248}

	// Before the seam (screen x < 8) the base table's last tile shows.
	table, tileX, _, _, _ := s.resolveNameTable(4, 0)
	if table != 0 || tileX != 31 {
		t.Errorf("x=4: expected table 0 tile 31, got table %d tile %d", table, tileX)
	}

	// At the seam the other table's first tile shows.
	table, tileX, _, _, _ = s.resolveNameTable(8, 0)
	if table != 1 || tileX != 0 {
		t.Errorf("x=8: expected table 1 tile 0, got table %d tile %d", table, tileX)
	}

	// Deep past the seam still reads the other table.
	table, _, _, _, _ = s.resolveNameTable(250, 0)
	if table != 1 {
		t.Errorf("x=250: expected table 1, got table %d", table)
	}
}

func TestSnapshot_ResolveNameTable_YWraparound(t *testing.T) {
	s := makeTestSnapshot()
	s.Scroll = Scroll{Y: 232}

	// y' = 239 is still inside the base table.
	table, _, tileY, _, _ := s.resolveNameTable(0, 7)
	if table != 0 || tileY != 29 {
		t.Errorf("y=7: expected table 0 tile row 29, got table %d row %d", table, tileY)
	}

	// y' = 240 wraps to row 0 of the other table (240 is subtracted, not 256).
	table, _, tileY, _, _ = s.resolveNameTable(0, 8)
	if table != 1 || tileY != 0 {
		t.Errorf("y=8: expected table 1 tile row 0, got table %d row %d", table, tileY)
	}
}

func TestSnapshot_ResolveNameTable_DiagonalDoubleFlip(t *testing.T) {
	s := makeTestSnapshot()
	s.Scroll = Scroll{X: 248, Y: 232}

	// Crossing both seams flips twice: back to the base table.
	table, tileX, tileY, _, _ := s.resolveNameTable(8, 8)
	if table != 0 {
		t.Errorf("expected base table after double flip, got table %d", table)
	}
	if tileX != 0 || tileY != 0 {
		t.Errorf("expected tile (0,0), got (%d,%d)", tileX, tileY)
	}
}

func TestNameTable_TileAt_Wraps(t *testing.T) {
	var n NameTable
	n[1] = 0x42

	if got := n.TileAt(1, 0); got != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", got)
	}
	// Coordinates wrap at the grid bounds instead of reading out of range.
	if got := n.TileAt(33, 30); got != 0x42 {
		t.Errorf("wrapped read: expected 0x42, got 0x%02X", got)
	}
}

// --- Attribute resolution tests ---

func TestNameTable_PaletteSelect_Quadrants(t *testing.T) {
	var n NameTable

	// Attribute byte for the 4x4-tile block at (0,0):
	// bits 1:0 top-left, 3:2 top-right, 5:4 bottom-left, 7:6 bottom-right.
	n[attributeBase] = 0b11_10_01_00

	cases := []struct {
		tileX, tileY int
		want         uint8
	}{
		{0, 0, 0}, {1, 1, 0}, // top-left 2x2
		{2, 0, 1}, {3, 1, 1}, // top-right 2x2
		{0, 2, 2}, {1, 3, 2}, // bottom-left 2x2
		{2, 2, 3}, {3, 3, 3}, // bottom-right 2x2
	}
	for _, c := range cases {
		got := n.paletteSelect(c.tileX, c.tileY)
		if got != c.want {
			t.Errorf("tile (%d,%d): expected selector %d, got %d",
				c.tileX, c.tileY, c.want, got)
		}
	}
}

func TestNameTable_PaletteSelect_BlockAddressing(t *testing.T) {
	var n NameTable

	// The block at quadrant (3,2) is byte attributeBase + 3 + 2*8.
	n[attributeBase+3+2*8] = 0b00_00_00_10

	// Tile (12,8) is the top-left sub-quadrant of that block.
	if got := n.paletteSelect(12, 8); got != 2 {
		t.Errorf("expected selector 2, got %d", got)
	}
	// A tile in a different block is unaffected.
	if got := n.paletteSelect(0, 0); got != 0 {
		t.Errorf("expected selector 0, got %d", got)
	}
}

func TestSnapshot_BackgroundPixel_TileAndPalette(t *testing.T) {
	s := makeTestSnapshot()

	fillTile(s, false, 9, 3)
	s.Names[0][5+2*NameTableWidth] = 9 // tile (5,2)
	// Tile (5,2) is the bottom-left sub-quadrant of block (1,0): shift 4.
	s.Names[0][attributeBase+1] = 0b00_01_00_00

	palette, colorIndex := s.backgroundPixel(5*TileSize+2, 2*TileSize+6)
	if colorIndex != 3 {
		t.Errorf("expected color index 3, got %d", colorIndex)
	}
	if palette != 1 {
		t.Errorf("expected palette selector 1, got %d", palette)
	}
}

func TestSnapshot_BackgroundPixel_UsesBackgroundPatternHalf(t *testing.T) {
	s := makeTestSnapshot()
	s.BackgroundPattern = true

	fillTile(s, true, 1, 2)
	s.Names[0][0] = 1

	_, colorIndex := s.backgroundPixel(0, 0)
	if colorIndex != 2 {
		t.Errorf("expected color index 2 from high pattern half, got %d", colorIndex)
	}
}
