// Package manifest reads the packagelist: a line-oriented file that declares
// which packages should be installed and where each one comes from.
//
// Each content line is a kind marker followed by a package name:
//
//	+ xorg   # official repositories
//	* zsh    # AUR, installed through the AUR helper
//
// Blank lines and comments are ignored.
package manifest

import (
	"strings"
	"unicode"
)

// Kind identifies the source a package is installed from.
type Kind int

const (
	// KindStandard marks packages from the official repositories ('+').
	KindStandard Kind = iota
	// KindAlternate marks packages installed through the AUR helper ('*').
	KindAlternate
)

// String returns the marker-independent name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindAlternate:
		return "aur"
	default:
		return "unknown"
	}
}

// Marker returns the packagelist marker for the kind.
func (k Kind) Marker() rune {
	if k == KindAlternate {
		return markerAlternate
	}
	return markerStandard
}

const (
	markerStandard  = '+'
	markerAlternate = '*'
	commentStart    = '#'
)

// Line is one parsed packagelist record.
type Line struct {
	Kind Kind
	Name string
}

type parseState int

const (
	stateKind parseState = iota
	stateWhitespace
	stateName
	stateEnd
)

// ParseLine parses one raw packagelist line, including any line terminator
// and trailing comment. ok is false for lines that carry no record (blank,
// whitespace-only, comment-only); err is a *LineError for malformed lines.
func ParseLine(raw string) (line Line, ok bool, err error) {
	state := stateKind
	// The name is the half-open byte range raw[nameStart:nameEnd].
	nameStart, nameEnd := 0, 0
	stop := len(raw)

	for index, char := range raw {
		if char == commentStart || char == '\n' || char == '\r' {
			stop = index
			break
		}

		switch state {
		case stateKind:
			if unicode.IsSpace(char) {
				continue
			}
			switch char {
			case markerStandard:
				line.Kind = KindStandard
			case markerAlternate:
				line.Kind = KindAlternate
			default:
				return Line{}, false, &LineError{Kind: ErrKindUnknownKind, Char: char}
			}
			state = stateWhitespace
		case stateWhitespace:
			if unicode.IsSpace(char) {
				continue
			}
			state = stateName
			nameStart = index
		case stateName:
			if unicode.IsSpace(char) {
				state = stateEnd
				nameEnd = index
			}
		case stateEnd:
			if !unicode.IsSpace(char) {
				return Line{}, false, &LineError{Kind: ErrKindUnexpectedContent, Char: char}
			}
		}
	}

	switch state {
	case stateKind:
		return Line{}, false, nil
	case stateWhitespace:
		return Line{}, false, &LineError{Kind: ErrKindMissingName}
	case stateName:
		nameEnd = stop
	}

	line.Name = strings.Clone(raw[nameStart:nameEnd])
	return line, true, nil
}
