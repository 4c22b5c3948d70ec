package dfs

import "acorn65c02/asmerr"

// PatchTemplate rewrites an existing DFS image's HELLO entry in place:
// locate HELLO's start sector from the catalog, verify the new payload
// fits within the image, overwrite its sector range (zero-filling the
// slack of the final sector), and rewrite only HELLO's info entry (load,
// exec, length, and the packed high-bits byte) with its start-sector-high
// bits preserved. Every other catalog byte, and every other file's data,
// is untouched (spec §4.8's template patcher rules).
//
// Input must be exactly one 200 KiB image; anything else, or an image
// missing HELLO, is fatal.
func PatchTemplate(image []byte, payload []byte, load, exec uint32) ([]byte, error) {
	if len(image) != imageSize {
		return nil, &asmerr.DiskError{Message: "template is not 200 KiB"}
	}
	out := make([]byte, imageSize)
	copy(out, image)
	img := &Image{Data: out}

	entries := img.entries()
	idx := findEntryIndex(entries, "HELLO")
	if idx < 0 {
		return nil, &asmerr.DiskError{Message: "template has no HELLO entry"}
	}
	e := entries[idx]

	need := sectorsFor(len(payload))
	if int(e.StartSect)+need > sectorsPerSide {
		return nil, &asmerr.DiskError{Message: "payload overruns the image"}
	}

	region := out[int(e.StartSect)*sectorSize : (int(e.StartSect)+need)*sectorSize]
	for i := range region {
		region[i] = 0
	}
	copy(region, payload)

	e.Load = load
	e.Exec = exec
	e.Length = uint32(len(payload))
	entries[idx] = e

	rewriteSingleInfoEntry(img, idx, e)
	return out, nil
}

// rewriteSingleInfoEntry overwrites only the named entry's 8-byte info
// slot, leaving every other catalog byte (including every other entry)
// untouched.
func rewriteSingleInfoEntry(img *Image, idx int, e Entry) {
	info := infoSlot(e)
	base := sector1Base + 8 + idx*infoEntrySize
	copy(img.Data[base:base+infoEntrySize], info[:])
}
