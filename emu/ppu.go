package emu

const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

const (
	// TileSize is the width and height of a pattern tile in pixels.
	TileSize = 8

	// NameTableWidth and NameTableHeight are the tile grid dimensions.
	NameTableWidth  = 32
	NameTableHeight = 30

	// SpriteCount is the number of OAM entries evaluated every frame.
	SpriteCount = 64

	chrSize          = 0x2000
	patternTileBytes = 16
	attributeBase    = 0x3C0
)

// NameTable is one logical tile map: a 32x30 grid of tile indexes followed
// by the 64-byte attribute region starting at 0x3C0. Each attribute byte
// packs four 2-bit palette selectors, one per 2x2-tile sub-quadrant of the
// 4x4-tile block it governs.
type NameTable [0x400]uint8

// PaletteRAM holds the four background and four sprite palettes. Slot 0 of
// every palette is the shared universal/transparent sentinel, so only the
// three drawable color slots are stored per palette. Entries index the
// fixed 64-entry master color table.
type PaletteRAM struct {
	Universal  uint8
	Background [4][3]uint8
	Sprite     [4][3]uint8
}

// Scroll is the per-frame scroll state: pixel offsets into the tile maps
// and the base-table bits selecting the nominal nametable on each axis.
type Scroll struct {
	X     uint8 // 0-255
	Y     uint8 // 0-239
	BaseX bool
	BaseY bool
}

// SpriteEntry attribute bits.
const (
	sprAttrPalette = 0x03
	sprAttrBehind  = 0x20
	sprAttrFlipX   = 0x40
	sprAttrFlipY   = 0x80
)

// SpriteEntry is one OAM entry. The list's submission order is the
// hardware's fixed sprite priority order: when two sprites overlap, the
// lower-index one wins the pixel.
type SpriteEntry struct {
	Y    uint8
	Tile uint8
	Attr uint8 // bits 1:0 palette, 5 behind background, 6 flip-x, 7 flip-y
	X    uint8
}

// BehindPolicy selects how behind-background sprites interact with
// transparent background pixels. The original hardware note on this point
// is inconclusive; the zero value is the behavior currently understood to
// match hardware.
type BehindPolicy uint8

const (
	// BehindShowsThroughTransparent draws a behind-background sprite
	// wherever the background pixel is transparent; only opaque
	// background occludes it.
	BehindShowsThroughTransparent BehindPolicy = iota

	// BehindAlwaysHidden occludes behind-background sprites by every
	// background pixel, opaque or not.
	BehindAlwaysHidden
)

// Snapshot is one frame's worth of video memory, captured at a frame
// boundary. The render and read paths never write through it. The caller
// owns the frame-boundary handoff: the emulation step must finish mutating
// this state before a render starts and must not touch it again until the
// render completes.
type Snapshot struct {
	CHR     [chrSize]uint8
	Names   [2]NameTable
	Palette PaletteRAM
	Scroll  Scroll
	OAM     [SpriteCount]SpriteEntry

	// Pattern table halves used by each layer. False selects the $0000
	// half of CHR, true the $1000 half.
	BackgroundPattern bool
	SpritePattern     bool

	// BehindPolicy is a render policy, not console memory; it is not
	// part of the serialized state.
	BehindPolicy BehindPolicy
}
