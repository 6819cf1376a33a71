package pacman

import (
	"bytes"
	"sort"
)

// InstalledSet is an immutable snapshot of installed package names.
// Names are compared byte-for-byte; the listing does not need to be valid UTF-8.
type InstalledSet struct {
	names map[string]struct{}
}

// ParseInstalled builds an InstalledSet from newline separated package names,
// as printed by `pacman -Qnq`. Empty lines are ignored and a trailing '\r' is
// dropped.
func ParseInstalled(out []byte) InstalledSet {
	names := make(map[string]struct{}, bytes.Count(out, []byte{'\n'})+1)
	for len(out) > 0 {
		var line []byte
		if i := bytes.IndexByte(out, '\n'); i >= 0 {
			line, out = out[:i], out[i+1:]
		} else {
			line, out = out, nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		names[string(line)] = struct{}{}
	}
	return InstalledSet{names: names}
}

// Contains reports whether name is installed.
func (s InstalledSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of installed packages.
func (s InstalledSet) Len() int {
	return len(s.names)
}

// Names returns the installed package names in sorted order.
func (s InstalledSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
