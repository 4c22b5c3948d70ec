package asmsrc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reader(files map[string]string) FileReader {
	return func(path string) ([]byte, error) {
		s, ok := files[path]
		if !ok {
			return nil, fmt.Errorf("no such file: %s", path)
		}
		return []byte(s), nil
	}
}

func TestExpandNoIncludes(t *testing.T) {
	files := map[string]string{
		"main.s": "LDA #$01\nSTA $00\n",
	}
	sm := NewSourceMap()
	out, err := Expand("main.s", reader(files), sm)
	assert.NoError(t, err)
	assert.Equal(t, "LDA #$01\nSTA $00\n", out)
	assert.Equal(t, 2, sm.Len())

	loc, ok := sm.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, Location{File: "main.s", Line: 1}, loc)

	loc, ok = sm.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, Location{File: "main.s", Line: 2}, loc)
}

func TestExpandInlinesIncludedFile(t *testing.T) {
	files := map[string]string{
		"main.s":        "LDA #$01\n.include \"lib/macros.s\"\nSTA $00\n",
		"lib/macros.s": "; a macro file\nNOP\n",
	}
	sm := NewSourceMap()
	out, err := Expand("main.s", reader(files), sm)
	assert.NoError(t, err)
	assert.Equal(t, "LDA #$01\n; a macro file\nNOP\nSTA $00\n", out)
	assert.Equal(t, 4, sm.Len())

	loc, _ := sm.Lookup(2)
	assert.Equal(t, Location{File: "lib/macros.s", Line: 1}, loc)
	loc, _ = sm.Lookup(3)
	assert.Equal(t, Location{File: "lib/macros.s", Line: 2}, loc)
	loc, _ = sm.Lookup(4)
	assert.Equal(t, Location{File: "main.s", Line: 3}, loc)
}

func TestExpandToleratesLeadingWhitespaceAndComment(t *testing.T) {
	files := map[string]string{
		"main.s": "  .include \"lib.s\"  ; pull in helpers\n",
		"lib.s":  "NOP\n",
	}
	sm := NewSourceMap()
	out, err := Expand("main.s", reader(files), sm)
	assert.NoError(t, err)
	assert.Equal(t, "NOP\n", out)
}

func TestExpandMissingFileIsIncludeError(t *testing.T) {
	files := map[string]string{
		"main.s": ".include \"missing.s\"\n",
	}
	sm := NewSourceMap()
	_, err := Expand("main.s", reader(files), sm)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.s")
}

func TestExpandCircularIncludeIsError(t *testing.T) {
	files := map[string]string{
		"a.s": ".include \"b.s\"\n",
		"b.s": ".include \"a.s\"\n",
	}
	sm := NewSourceMap()
	_, err := Expand("a.s", reader(files), sm)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Circular")
}

func TestExpandRelativePathsResolveAgainstIncludingDir(t *testing.T) {
	files := map[string]string{
		"src/main.s":     ".include \"sub/lib.s\"\n",
		"src/sub/lib.s": "NOP\n",
	}
	sm := NewSourceMap()
	out, err := Expand("src/main.s", reader(files), sm)
	assert.NoError(t, err)
	assert.Equal(t, "NOP\n", out)
}
