package emu

// PPU address space boundaries for ReadMemory.
const (
	chrEnd       = 0x1FFF
	nameStart    = 0x2000
	nameEnd      = 0x3EFF
	paletteStart = 0x3F00
)

// ReadMemory answers a single-address read against the snapshot's PPU
// address space: $0000-$1FFF pattern data, $2000-$3EFF nametables in 1 KiB
// pages (page parity selects the logical table, so the upper pages mirror
// the lower), $3F00-$3FFF palette RAM. Mirroring stands in for bounds
// errors; every address maps somewhere.
//
// This is an independent read path over the same frozen snapshot a render
// uses and may run concurrently with it.
func (s *Snapshot) ReadMemory(addr uint16) uint8 {
	addr &= 0x3FFF // 14-bit address space

	switch {
	case addr <= chrEnd:
		return s.CHR[addr]
	case addr <= nameEnd:
		base := int(addr - nameStart)
		page := (base / 0x400) % 2
		return s.Names[page][base%0x400]
	default:
		return s.Palette.read(addr - paletteStart)
	}
}
