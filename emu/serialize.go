package emu

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

// Save state format constants
const (
	stateVersion    = 1
	stateMagic      = "eMNESState\x00\x00"
	stateHeaderSize = 18 // magic(12) + version(2) + dataCRC(4)
)

// Fixed body layout sizes
const (
	paletteSerializeSize = 25 // universal(1) + background(12) + sprite(12)
	scrollSerializeSize  = 4  // x(1) + y(1) + baseX(1) + baseY(1)
	oamSerializeSize     = SpriteCount * 4
	flagsSerializeSize   = 2 // backgroundPattern(1) + spritePattern(1)

	stateBodySize = chrSize + 2*0x400 +
		paletteSerializeSize + scrollSerializeSize +
		oamSerializeSize + flagsSerializeSize
)

// boolByte converts a bool to a uint8 (0 or 1).
func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// SerializeSize returns the total size in bytes of a serialized snapshot.
// The layout is fixed, so the size is a constant.
func SerializeSize() int {
	return stateHeaderSize + stateBodySize
}

// Serialize encodes the snapshot as a save state blob. Restoring the blob
// with Deserialize and re-rendering reproduces a bit-identical frame.
func (s *Snapshot) Serialize() []byte {
	data := make([]byte, SerializeSize())

	// Header (CRC written last, once the body is in place)
	copy(data[0:12], stateMagic)
	binary.LittleEndian.PutUint16(data[12:14], stateVersion)

	offset := stateHeaderSize

	// Pattern data
	copy(data[offset:], s.CHR[:])
	offset += chrSize

	// Nametables
	for i := range s.Names {
		copy(data[offset:], s.Names[i][:])
		offset += len(s.Names[i])
	}

	// Palette RAM
	data[offset] = s.Palette.Universal
	offset++
	for i := range s.Palette.Background {
		copy(data[offset:], s.Palette.Background[i][:])
		offset += 3
	}
	for i := range s.Palette.Sprite {
		copy(data[offset:], s.Palette.Sprite[i][:])
		offset += 3
	}

	// Scroll state
	data[offset] = s.Scroll.X
	offset++
	data[offset] = s.Scroll.Y
	offset++
	data[offset] = boolByte(s.Scroll.BaseX)
	offset++
	data[offset] = boolByte(s.Scroll.BaseY)
	offset++

	// OAM
	for i := range s.OAM {
		data[offset] = s.OAM[i].Y
		data[offset+1] = s.OAM[i].Tile
		data[offset+2] = s.OAM[i].Attr
		data[offset+3] = s.OAM[i].X
		offset += 4
	}

	// Pattern table selection
	data[offset] = boolByte(s.BackgroundPattern)
	offset++
	data[offset] = boolByte(s.SpritePattern)
	offset++

	binary.LittleEndian.PutUint32(data[14:18], crc32.ChecksumIEEE(data[stateHeaderSize:]))

	return data
}

// VerifyState checks whether data is a structurally valid save state
// without loading it.
func VerifyState(data []byte) error {
	if len(data) < SerializeSize() {
		return errors.New("save state too short")
	}

	if string(data[0:12]) != stateMagic {
		return errors.New("invalid save state magic")
	}

	version := binary.LittleEndian.Uint16(data[12:14])
	if version > stateVersion {
		return errors.New("unsupported save state version")
	}

	expectedCRC := binary.LittleEndian.Uint32(data[14:18])
	actualCRC := crc32.ChecksumIEEE(data[stateHeaderSize : stateHeaderSize+stateBodySize])
	if expectedCRC != actualCRC {
		return errors.New("save state data is corrupted")
	}

	return nil
}

// Deserialize restores the snapshot from a save state blob. Malformed
// input is rejected before any field is touched, so on error the receiver
// is unchanged and remains renderable.
func (s *Snapshot) Deserialize(data []byte) error {
	if err := VerifyState(data); err != nil {
		return err
	}

	offset := stateHeaderSize

	// Pattern data
	copy(s.CHR[:], data[offset:offset+chrSize])
	offset += chrSize

	// Nametables
	for i := range s.Names {
		copy(s.Names[i][:], data[offset:offset+len(s.Names[i])])
		offset += len(s.Names[i])
	}

	// Palette RAM
	s.Palette.Universal = data[offset]
	offset++
	for i := range s.Palette.Background {
		copy(s.Palette.Background[i][:], data[offset:offset+3])
		offset += 3
	}
	for i := range s.Palette.Sprite {
		copy(s.Palette.Sprite[i][:], data[offset:offset+3])
		offset += 3
	}

	// Scroll state
	s.Scroll.X = data[offset]
	offset++
	s.Scroll.Y = data[offset]
	offset++
	s.Scroll.BaseX = data[offset] != 0
	offset++
	s.Scroll.BaseY = data[offset] != 0
	offset++

	// OAM
	for i := range s.OAM {
		s.OAM[i].Y = data[offset]
		s.OAM[i].Tile = data[offset+1]
		s.OAM[i].Attr = data[offset+2]
		s.OAM[i].X = data[offset+3]
		offset += 4
	}

	// Pattern table selection
	s.BackgroundPattern = data[offset] != 0
	offset++
	s.SpritePattern = data[offset] != 0
	offset++

	return nil
}
