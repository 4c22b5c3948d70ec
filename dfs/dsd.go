package dfs

import "acorn65c02/asmerr"

// Ordering selects how a DSD image interleaves its two DFS sides (spec
// §4.9).
type Ordering int

const (
	// Side0ThenSide1 lays out side 0's full 200 KiB followed by side 1's.
	Side0ThenSide1 Ordering = iota
	// TrackInterleaved alternates side 0/side 1 sectors track by track:
	// track0-side0, track0-side1, track1-side0, track1-side1, ...
	TrackInterleaved
)

const (
	sectorsPerTrack = 10
	tracksPerSide   = sectorsPerSide / sectorsPerTrack // 80
)

// BuildDSD composes two independent single-side DFS images into one
// double-side image, in the given physical ordering.
func BuildDSD(side0, side1 *Image, ordering Ordering) ([]byte, error) {
	if len(side0.Data) != imageSize || len(side1.Data) != imageSize {
		return nil, &asmerr.DiskError{Message: "both sides must be 200 KiB DFS images"}
	}

	switch ordering {
	case Side0ThenSide1:
		out := make([]byte, 2*imageSize)
		copy(out[:imageSize], side0.Data)
		copy(out[imageSize:], side1.Data)
		return out, nil

	case TrackInterleaved:
		out := make([]byte, 2*imageSize)
		for track := 0; track < tracksPerSide; track++ {
			for side, img := range [2]*Image{side0, side1} {
				for sector := 0; sector < sectorsPerTrack; sector++ {
					srcOff := (track*sectorsPerTrack + sector) * sectorSize
					dstIdx := (track*2 + side) * sectorsPerTrack
					dstOff := (dstIdx + sector) * sectorSize
					copy(out[dstOff:dstOff+sectorSize], img.Data[srcOff:srcOff+sectorSize])
				}
			}
		}
		return out, nil

	default:
		return nil, &asmerr.DiskError{Message: "unknown DSD ordering"}
	}
}
