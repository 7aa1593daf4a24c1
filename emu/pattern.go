package emu

// patternPixel returns the 2-bit color index for one pixel of a pattern
// tile. A tile is 16 bytes: two parallel 8-byte bit planes, one byte per
// row, with column 0 in bit 7. high selects the $1000 half of CHR.
// Any byte value is a valid tile index; there is no failure mode.
func (s *Snapshot) patternPixel(high bool, tile uint8, row, col int) uint8 {
	base := int(tile) * patternTileBytes
	if high {
		base += 0x1000
	}

	plane0 := s.CHR[base+row]
	plane1 := s.CHR[base+row+8]

	bit := uint(7 - col)
	lo := (plane0 >> bit) & 1
	hi := (plane1 >> bit) & 1

	return hi<<1 | lo
}
