package emu

// TileAt returns the tile index at a cell. Coordinates wrap at the grid
// bounds; wraparound is hardware behavior, not an error.
func (n *NameTable) TileAt(tileX, tileY int) uint8 {
	tileX %= NameTableWidth
	tileY %= NameTableHeight
	return n[tileX+tileY*NameTableWidth]
}

// paletteSelect returns the 2-bit background palette selector governing a
// cell. Attribute bytes cover 4x4-tile blocks at quadrant granularity; the
// cell's 2x2-tile sub-quadrant picks which two bits of the byte apply.
func (n *NameTable) paletteSelect(tileX, tileY int) uint8 {
	qx := (tileX % NameTableWidth) / 4
	qy := (tileY % NameTableHeight) / 4
	attr := n[attributeBase+qx+qy*8]

	shift := uint((tileX/2%2)*2 + (tileY/2%2)*4)
	return (attr >> shift) & 0x03
}

// resolveNameTable maps an absolute screen pixel through the scroll state
// to a logical nametable, a cell within it, and the sub-tile offset.
// Scrolling past the edge of one table reveals the other, independently on
// each axis: crossing the horizontal seam flips the table, crossing the
// vertical seam flips it again, so a diagonal crossing lands back on the
// base table.
func (s *Snapshot) resolveNameTable(x, y int) (table, tileX, tileY, fineX, fineY int) {
	sx := x + int(s.Scroll.X)
	sy := y + int(s.Scroll.Y)

	useTable1 := s.Scroll.BaseX != s.Scroll.BaseY

	if sx >= ScreenWidth {
		sx -= ScreenWidth
		useTable1 = !useTable1
	}
	if sy >= ScreenHeight {
		sy -= ScreenHeight
		useTable1 = !useTable1
	}

	if useTable1 {
		table = 1
	}
	return table, sx / TileSize, sy / TileSize, sx % TileSize, sy % TileSize
}

// backgroundPixel returns the background layer's palette selector and
// color index at a screen pixel. Color index 0 means the background is
// transparent there.
func (s *Snapshot) backgroundPixel(x, y int) (palette, colorIndex uint8) {
	table, tileX, tileY, fineX, fineY := s.resolveNameTable(x, y)
	nt := &s.Names[table]

	tile := nt.TileAt(tileX, tileY)
	palette = nt.paletteSelect(tileX, tileY)
	colorIndex = s.patternPixel(s.BackgroundPattern, tile, fineY, fineX)
	return
}
