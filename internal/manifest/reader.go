package manifest

import (
	"bufio"
	"errors"
	"io"
)

// Set is the membership query NextNotIn filters against.
type Set interface {
	Contains(name string) bool
}

// Reader streams records from a packagelist.
// A Reader is single-pass: once it returns an error (including io.EOF) every
// later call returns the same error.
type Reader struct {
	src  *bufio.Reader
	line int
	err  error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: bufio.NewReader(r)}
}

// Line returns the 1-based number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next record, skipping blank and comment-only lines.
// It returns io.EOF at the end of the stream, a *ReadError on I/O failure and
// a *ParseError for a malformed line.
func (r *Reader) Next() (Line, error) {
	for {
		if r.err != nil {
			return Line{}, r.err
		}

		raw, err := r.src.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.err = &ReadError{Err: err}
				return Line{}, r.err
			}
			// The final line may lack a newline; parse it before reporting EOF.
			r.err = io.EOF
			if raw == "" {
				return Line{}, r.err
			}
		}
		r.line++

		line, ok, parseErr := ParseLine(raw)
		if parseErr != nil {
			var lineErr *LineError
			errors.As(parseErr, &lineErr)
			r.err = &ParseError{Line: r.line, Err: lineErr}
			return Line{}, r.err
		}
		if !ok {
			continue
		}
		return line, nil
	}
}

// NextNotIn returns the next record whose name is not in set.
func (r *Reader) NextNotIn(set Set) (Line, error) {
	for {
		line, err := r.Next()
		if err != nil {
			return Line{}, err
		}
		if !set.Contains(line.Name) {
			return line, nil
		}
	}
}
