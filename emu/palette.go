package emu

import "image/color"

// masterPalette is the fixed 64-entry display color table. Palette RAM
// entries index into it.
var masterPalette = [64]color.RGBA{
	{98, 98, 98, 255},
	{0, 31, 177, 255},
	{35, 3, 199, 255},
	{81, 0, 177, 255},
	{115, 0, 117, 255},
	{127, 0, 35, 255},
	{115, 10, 0, 255},
	{81, 39, 0, 255},
	{35, 67, 0, 255},
	{0, 86, 0, 255},
	{0, 92, 0, 255},
	{0, 82, 35, 255},
	{0, 60, 117, 255},
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{170, 170, 170, 255},
	{13, 86, 255, 255},
	{74, 47, 255, 255},
	{138, 18, 255, 255},
	{188, 8, 213, 255},
	{210, 17, 104, 255},
	{199, 45, 0, 255},
	{157, 84, 0, 255},
	{96, 123, 0, 255},
	{32, 151, 0, 255},
	{0, 162, 0, 255},
	{0, 152, 66, 255},
	{0, 124, 180, 255},
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{255, 255, 255, 255},
	{82, 174, 255, 255},
	{143, 133, 255, 255},
	{210, 101, 255, 255},
	{255, 86, 255, 255},
	{255, 93, 206, 255},
	{255, 119, 86, 255},
	{249, 158, 0, 255},
	{188, 199, 0, 255},
	{121, 231, 0, 255},
	{66, 246, 17, 255},
	{38, 239, 125, 255},
	{44, 213, 245, 255},
	{77, 77, 77, 255},
	{0, 0, 0, 255},
	{0, 0, 0, 255},
	{255, 255, 255, 255},
	{182, 225, 255, 255},
	{205, 208, 255, 255},
	{232, 195, 255, 255},
	{255, 187, 255, 255},
	{255, 188, 243, 255},
	{255, 198, 195, 255},
	{255, 213, 153, 255},
	{232, 230, 129, 255},
	{205, 243, 129, 255},
	{182, 250, 153, 255},
	{168, 249, 195, 255},
	{168, 240, 243, 255},
	{183, 183, 183, 255},
	{0, 0, 0, 255},
	{0, 0, 0, 255},
}

// universalColor returns the shared background color drawn wherever no
// layer produced an opaque pixel.
func (p *PaletteRAM) universalColor() color.RGBA {
	return masterPalette[p.Universal&0x3F]
}

// backgroundColor resolves a background palette entry to a display color.
// Color index 0 reads the universal color; transparency decisions are made
// by the compositor before this lookup, not here.
func (p *PaletteRAM) backgroundColor(palette, colorIndex uint8) color.RGBA {
	if colorIndex == 0 {
		return p.universalColor()
	}
	return masterPalette[p.Background[palette&0x03][colorIndex-1]&0x3F]
}

// spriteColor resolves a sprite palette entry to a display color.
func (p *PaletteRAM) spriteColor(palette, colorIndex uint8) color.RGBA {
	if colorIndex == 0 {
		return p.universalColor()
	}
	return masterPalette[p.Sprite[palette&0x03][colorIndex-1]&0x3F]
}

// read returns the palette byte at a palette-space offset. Addressing
// wraps every $20 bytes, and slot 0 of every palette reads the shared
// universal entry.
func (p *PaletteRAM) read(offset uint16) uint8 {
	offset %= 0x20

	slot := int(offset & 0x03)
	palette := int(offset>>2) & 0x03

	if slot == 0 {
		return p.Universal
	}
	if offset < 0x10 {
		return p.Background[palette][slot-1]
	}
	return p.Sprite[palette][slot-1]
}
