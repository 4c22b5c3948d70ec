package dfs

import (
	"encoding/binary"
	"strings"

	"acorn65c02/asmerr"
	"acorn65c02/mask"
)

// Entry is one catalog slot: a name entry (sector 0) plus its matching
// info entry (sector 1).
type Entry struct {
	Name      string
	Dir       byte // 'A'..'Z', or '$' for root
	Locked    bool
	Load      uint32
	Exec      uint32
	Length    uint32
	StartSect uint16
}

// directoryByte packs a directory letter and the locked bit into the
// second name-entry byte (spec §4.8): the letter occupies bits 2-8, the
// locked flag bit 1.
func directoryByte(dir byte, locked bool) byte {
	b := mask.Range(dir, mask.I2, mask.I8)
	if locked {
		b = mask.Set(b, mask.I1, 1)
	}
	return b
}

func unpackDirectoryByte(b byte) (dir byte, locked bool) {
	return mask.Range(b, mask.I2, mask.I8), mask.IsSet(b, mask.I1)
}

// nameSlot returns the 8-byte sector-0 name entry for e.
func nameSlot(e Entry) [nameEntrySize]byte {
	var slot [nameEntrySize]byte
	name := padRight(strings.ToUpper(e.Name), 7)
	copy(slot[:7], name)
	slot[7] = directoryByte(e.Dir, e.Locked)
	return slot
}

// packHighBits packs the four 2-bit high-address groups of sector 1's
// packed byte (spec §4.8: exec:len:load:start, MSB first), one bit at a
// time so each mask.Set call sees a genuine single-bit value -- Set
// positions a value by its own leading-zero count, which only agrees with
// a fixed-width field when the value is 0 or 1 bit wide.
func packHighBits(execHigh, lenHigh, loadHigh, startHigh byte) byte {
	var b byte
	b = mask.Set(b, mask.I1, (execHigh>>1)&1)
	b = mask.Set(b, mask.I2, execHigh&1)
	b = mask.Set(b, mask.I3, (lenHigh>>1)&1)
	b = mask.Set(b, mask.I4, lenHigh&1)
	b = mask.Set(b, mask.I5, (loadHigh>>1)&1)
	b = mask.Set(b, mask.I6, loadHigh&1)
	b = mask.Set(b, mask.I7, (startHigh>>1)&1)
	b = mask.Set(b, mask.I8, startHigh&1)
	return b
}

func unpackHighBits(b byte) (execHigh, lenHigh, loadHigh, startHigh byte) {
	return mask.Range(b, mask.I1, mask.I2), mask.Range(b, mask.I3, mask.I4),
		mask.Range(b, mask.I5, mask.I6), mask.Range(b, mask.I7, mask.I8)
}

// infoSlot returns the 8-byte sector-1 info entry for e.
func infoSlot(e Entry) [infoEntrySize]byte {
	var slot [infoEntrySize]byte
	binary.LittleEndian.PutUint16(slot[0:2], uint16(e.Load))
	binary.LittleEndian.PutUint16(slot[2:4], uint16(e.Exec))
	binary.LittleEndian.PutUint16(slot[4:6], uint16(e.Length))
	loadHigh := byte((e.Load >> 16) & 0x03)
	execHigh := byte((e.Exec >> 16) & 0x03)
	lenHigh := byte((e.Length >> 16) & 0x03)
	startHigh := byte((e.StartSect >> 8) & 0x03)
	slot[6] = packHighBits(execHigh, lenHigh, loadHigh, startHigh)
	slot[7] = byte(e.StartSect & 0xFF)
	return slot
}

func decodeEntry(name [nameEntrySize]byte, info [infoEntrySize]byte) Entry {
	dir, locked := unpackDirectoryByte(name[7])
	loadLo := binary.LittleEndian.Uint16(info[0:2])
	execLo := binary.LittleEndian.Uint16(info[2:4])
	lenLo := binary.LittleEndian.Uint16(info[4:6])
	execHighB, lenHighB, loadHighB, startHighB := unpackHighBits(info[6])
	startHigh := uint16(startHighB)
	loadHigh := uint32(loadHighB)
	lenHigh := uint32(lenHighB)
	execHigh := uint32(execHighB)
	return Entry{
		Name:      strings.TrimRight(string(name[:7]), " "),
		Dir:       dir,
		Locked:    locked,
		Load:      loadHigh<<16 | uint32(loadLo),
		Exec:      execHigh<<16 | uint32(execLo),
		Length:    lenHigh<<16 | uint32(lenLo),
		StartSect: startHigh<<8 | uint16(info[7]),
	}
}

// entries returns every catalog entry currently recorded in img.
func (img *Image) entries() []Entry {
	n := img.fileCount()
	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		var name [nameEntrySize]byte
		var info [infoEntrySize]byte
		copy(name[:], img.Data[sector0Base+8+i*nameEntrySize:sector0Base+8+(i+1)*nameEntrySize])
		copy(info[:], img.Data[sector1Base+8+i*infoEntrySize:sector1Base+8+(i+1)*infoEntrySize])
		out = append(out, decodeEntry(name, info))
	}
	return out
}

// writeCatalog rewrites the full name- and info-entry areas from scratch,
// preserving sector 1's first 8 bytes (title tail, cycle, counts) per the
// catalog writer discipline (spec §4.8): space-pad the name area, zero the
// info area, then write every entry.
func (img *Image) writeCatalog(entries []Entry) {
	nameArea := img.Data[sector0Base+8 : sector0Base+8+maxEntries*nameEntrySize]
	for i := range nameArea {
		nameArea[i] = ' '
	}
	infoArea := img.Data[sector1Base+8 : sector1Base+8+maxEntries*infoEntrySize]
	for i := range infoArea {
		infoArea[i] = 0
	}
	for i, e := range entries {
		slot := nameSlot(e)
		copy(nameArea[i*nameEntrySize:(i+1)*nameEntrySize], slot[:])
		info := infoSlot(e)
		copy(infoArea[i*infoEntrySize:(i+1)*infoEntrySize], info[:])
	}
	img.setFileCount(len(entries))
}

// findEntryIndex returns the index of the entry named name (case-insensitive),
// or -1 if none exists.
func findEntryIndex(entries []Entry, name string) int {
	want := strings.ToUpper(name)
	for i, e := range entries {
		if strings.ToUpper(e.Name) == want {
			return i
		}
	}
	return -1
}

func sectorsFor(length int) int {
	return (length + sectorSize - 1) / sectorSize
}

func validateDirAndName(dir byte, name string) error {
	if dir != '$' && (dir < 'A' || dir > 'Z') {
		return &asmerr.DiskError{Message: "invalid directory letter"}
	}
	if len(name) == 0 || len(name) > 7 {
		return &asmerr.DiskError{Message: "invalid file name length"}
	}
	return nil
}
