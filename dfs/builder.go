package dfs

import "acorn65c02/asmerr"

// AddFile allocates ceil(len(data)/256) contiguous sectors starting at the
// first free sector (sector 2 for an empty disk, since sectors 0-1 hold
// the catalog), copies data in, and appends a catalog entry. Up to 31
// entries are supported; a 32nd, or a payload that doesn't fit in the
// remaining space, is fatal (spec §4.8).
func (img *Image) AddFile(dir byte, name string, data []byte, load, exec uint32, locked bool) error {
	if err := validateDirAndName(dir, name); err != nil {
		return err
	}
	entries := img.entries()
	if len(entries) >= maxEntries {
		return &asmerr.DiskError{Message: "catalog full"}
	}
	if findEntryIndex(entries, name) >= 0 {
		return &asmerr.DiskError{Message: "duplicate file name " + name}
	}

	start := firstFreeSector(entries)
	need := sectorsFor(len(data))
	if start+need > img.sectorCount() {
		return &asmerr.DiskError{Message: "disk full"}
	}

	copy(img.Data[start*sectorSize:start*sectorSize+len(data)], data)

	entries = append(entries, Entry{
		Name: name, Dir: dir, Locked: locked,
		Load: load, Exec: exec, Length: uint32(len(data)),
		StartSect: uint16(start),
	})
	img.writeCatalog(entries)
	return nil
}

// firstFreeSector returns the first sector not occupied by any existing
// entry's payload; sectors 0 and 1 (the catalog) are never free.
func firstFreeSector(entries []Entry) int {
	free := 2
	for _, e := range entries {
		end := int(e.StartSect) + sectorsFor(int(e.Length))
		if end > free {
			free = end
		}
	}
	return free
}

// BootFileContents returns the payload for the auto-boot file stored as
// $.!BOOT: "*RUN " followed by the qualified DFS name, terminated by CR
// (spec §6).
func BootFileContents(dir byte, name string) []byte {
	qualified := string(dir) + "." + name
	return append([]byte("*RUN "+qualified), 0x0D)
}

// AddBootFile writes $.!BOOT for an auto-booting DFS disk (spec §6):
// load=0, exec=0, locked=true. It does not change the boot option; the EXEC
// option (3) comes from CreateBlank.
func (img *Image) AddBootFile(dir byte, name string) error {
	return img.AddFile('$', "!BOOT", BootFileContents(dir, name), 0, 0, true)
}
