package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NathanKolpa/pacup/internal/messages"
)

// Sentinels matched by errors.Is against *LineError, *ParseError and the
// locator errors.
var (
	ErrUnknownKind       = errors.New("unknown package type")
	ErrMissingName       = errors.New("missing package name")
	ErrUnexpectedContent = errors.New("unexpected content after package name")
	ErrNotFound          = errors.New("packagelist not found")
	ErrOpen              = errors.New("cannot open packagelist file")
)

// LineErrorKind classifies a malformed packagelist line.
type LineErrorKind int

const (
	// ErrKindUnknownKind is a line whose first character is not '+' or '*'.
	ErrKindUnknownKind LineErrorKind = iota + 1
	// ErrKindMissingName is a kind marker with no package name after it.
	ErrKindMissingName
	// ErrKindUnexpectedContent is anything but whitespace after the name.
	ErrKindUnexpectedContent
)

// LineError describes why a single line failed to parse.
type LineError struct {
	Kind LineErrorKind
	// Char is the offending character; zero for ErrKindMissingName.
	Char rune
}

func (e *LineError) Error() string {
	switch e.Kind {
	case ErrKindUnknownKind:
		return fmt.Sprintf(messages.ManifestUnknownKindFmt, string(e.Char))
	case ErrKindMissingName:
		return messages.ManifestMissingName
	case ErrKindUnexpectedContent:
		return fmt.Sprintf(messages.ManifestUnexpectedStringFmt, string(e.Char))
	default:
		return "invalid packagelist line"
	}
}

// Is reports whether target is the sentinel for e.Kind.
func (e *LineError) Is(target error) bool {
	switch e.Kind {
	case ErrKindUnknownKind:
		return target == ErrUnknownKind
	case ErrKindMissingName:
		return target == ErrMissingName
	case ErrKindUnexpectedContent:
		return target == ErrUnexpectedContent
	}
	return false
}

// ParseError is a LineError tagged with its 1-based line number.
type ParseError struct {
	Line int
	Err  *LineError
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(messages.ManifestParseFmt, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadError wraps an I/O failure while reading the packagelist.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf(messages.ManifestReadFmt, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NotFoundError lists every location that was tried.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	b.WriteString(messages.ManifestNotFound)
	for _, path := range e.Tried {
		fmt.Fprintf(&b, messages.ManifestNotFoundPathFmt, path)
	}
	return b.String()
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
