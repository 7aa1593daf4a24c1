package emu

// spritePixel holds the sprite layer's result for one pixel position.
type spritePixel struct {
	colorIndex uint8 // 0 = no sprite pixel here
	palette    uint8 // sprite palette 0-3
}

// spriteLine holds one scanline of evaluated sprite pixels, split by the
// priority bit into in-front-of-background and behind-background depths.
type spriteLine struct {
	front  [ScreenWidth]spritePixel
	behind [ScreenWidth]spritePixel
}

// renderSpriteLine evaluates every OAM entry whose bounding box intersects
// the scanline into buf. Entries are walked in submission order and the
// first non-transparent pixel at each position wins, regardless of which
// depth it lands in; that is the hardware's fixed lowest-index-wins
// sprite priority. The full list is always evaluated: no per-scanline
// sprite count limit is enforced.
func (s *Snapshot) renderSpriteLine(line int, buf *spriteLine) {
	for i := range buf.front {
		buf.front[i] = spritePixel{}
		buf.behind[i] = spritePixel{}
	}

	// claimed marks positions already taken by a lower-index sprite.
	var claimed [ScreenWidth]bool

	for i := 0; i < SpriteCount; i++ {
		spr := &s.OAM[i]

		top := int(spr.Y)
		if line < top || line >= top+TileSize {
			continue
		}

		row := line - top
		if spr.Attr&sprAttrFlipY != 0 {
			row = TileSize - 1 - row
		}

		flipX := spr.Attr&sprAttrFlipX != 0
		behind := spr.Attr&sprAttrBehind != 0
		palette := spr.Attr & sprAttrPalette

		for col := 0; col < TileSize; col++ {
			x := int(spr.X) + col
			if x >= ScreenWidth {
				break
			}
			if claimed[x] {
				continue
			}

			patternCol := col
			if flipX {
				patternCol = TileSize - 1 - col
			}

			colorIndex := s.patternPixel(s.SpritePattern, spr.Tile, row, patternCol)
			if colorIndex == 0 {
				continue
			}

			claimed[x] = true
			px := spritePixel{colorIndex: colorIndex, palette: palette}
			if behind {
				buf.behind[x] = px
			} else {
				buf.front[x] = px
			}
		}
	}
}
