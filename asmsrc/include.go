package asmsrc

import (
	"path/filepath"
	"strings"

	"acorn65c02/asmerr"
)

// FileReader abstracts reading a source file by path. Production callers
// pass os.ReadFile; tests pass an in-memory map-backed reader. The core
// does its own include-file I/O (it is the only component that can resolve
// ".include" relative paths) even though the wider toolchain's general
// file I/O wiring is an external concern (spec §1).
type FileReader func(path string) ([]byte, error)

// Expand reads path via read, inlining every ".include \"rel/path\"" line
// (leading whitespace and an optional trailing ";comment" are tolerated)
// with the full contents of the referenced file, resolved relative to the
// including file's directory. It returns the fully expanded text.
//
// sm receives one entry per output line, tagged with the line's original
// (file, line); pass a fresh NewSourceMap() for a single top-level file, or
// a SourceMap already populated by prior top-level files when
// concatenating several sources (the expander appends).
func Expand(path string, read FileReader, sm *SourceMap) (string, error) {
	visiting := map[string]bool{}
	var out strings.Builder
	if err := expandInto(&out, path, read, sm, visiting); err != nil {
		return "", err
	}
	return out.String(), nil
}

func expandInto(out *strings.Builder, path string, read FileReader, sm *SourceMap, visiting map[string]bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if visiting[abs] {
		return &asmerr.IncludeError{Path: path, Message: "Circular .include"}
	}
	visiting[abs] = true
	defer delete(visiting, abs)

	data, err := read(path)
	if err != nil {
		return &asmerr.IncludeError{Path: path, Message: "file not found"}
	}

	dir := filepath.Dir(path)
	lines := strings.Split(string(data), "\n")
	// strings.Split on a file ending in \n produces a trailing empty
	// element; drop it so we don't emit a phantom extra blank line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lineNo := i + 1
		if incPath, ok := parseIncludeDirective(line); ok {
			resolved := incPath
			if !filepath.IsAbs(resolved) {
				resolved = filepath.Join(dir, incPath)
			}
			if err := expandInto(out, resolved, read, sm, visiting); err != nil {
				return err
			}
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
		sm.Append(Location{File: path, Line: lineNo})
	}
	return nil
}

// parseIncludeDirective recognizes a line of the form:
//
//	[whitespace] .include "path" [whitespace] [; comment]
//
// returning the quoted path and true if it matches.
func parseIncludeDirective(line string) (string, bool) {
	s := strings.TrimLeft(line, " \t")
	const kw = ".include"
	if !strings.HasPrefix(strings.ToLower(s), kw) {
		return "", false
	}
	s = s[len(kw):]
	s = strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(s, "\"") {
		return "", false
	}
	s = s[1:]
	end := strings.IndexByte(s, '"')
	if end < 0 {
		return "", false
	}
	path := s[:end]
	rest := strings.TrimLeft(s[end+1:], " \t")
	if rest != "" && !strings.HasPrefix(rest, ";") {
		return "", false
	}
	return path, true
}
