// Package asmsrc implements the include expander and source map (C3): it
// inlines ".include" files, detects include cycles, and records the
// original (file, line) behind every line of the expanded source so that
// later errors can be reported against what the user actually wrote.
package asmsrc

// A Location names one line of original source.
type Location struct {
	File string
	Line int // 1-based, within File
}

// A SourceMap is an ordered sequence of Locations, one per line of expanded
// source. Lookup is 1-based; out-of-range lookups return the zero Location
// and ok=false, leaving the caller to fall back to the expanded line
// number unchanged (spec §3).
type SourceMap struct {
	entries []Location
}

// NewSourceMap returns an empty SourceMap, ready to be appended to.
func NewSourceMap() *SourceMap {
	return &SourceMap{}
}

// Append records one more expanded-output line mapping to loc.
func (m *SourceMap) Append(loc Location) {
	m.entries = append(m.entries, loc)
}

// Lookup returns the original Location for 1-based expanded line n.
func (m *SourceMap) Lookup(n int) (Location, bool) {
	if n < 1 || n > len(m.entries) {
		return Location{}, false
	}
	return m.entries[n-1], true
}

// Len reports how many lines are currently mapped.
func (m *SourceMap) Len() int {
	return len(m.entries)
}
