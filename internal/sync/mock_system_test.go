package sync

import (
	"bytes"
	"io"
	"strings"

	"github.com/NathanKolpa/pacup/internal/pacman"
)

// execCall records one process replacement request.
type execCall struct {
	Path string
	Argv []string
}

// testSystem runs child processes for real (so shell stubs work) but never
// replaces the test process: Exec only records the call.
type testSystem struct {
	pacman.RealSystem

	EUID    int
	ExecErr error
	Execs   []execCall

	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newTestSystem() *testSystem {
	return &testSystem{EUID: 1000}
}

func (s *testSystem) Geteuid() int {
	return s.EUID
}

func (s *testSystem) Exec(path string, argv []string, env []string) error {
	s.Execs = append(s.Execs, execCall{Path: path, Argv: append([]string(nil), argv...)})
	return s.ExecErr
}

func (s *testSystem) Environ() []string {
	return nil
}

func (s *testSystem) Stdin() io.Reader {
	return strings.NewReader("")
}

func (s *testSystem) Stdout() io.Writer {
	return &s.stdout
}

func (s *testSystem) Stderr() io.Writer {
	return &s.stderr
}

// testPrompter answers the confirmation with a fixed value.
type testPrompter struct {
	interactive bool
	answer      bool
	err         error
	titles      []string
}

func (p *testPrompter) Interactive() bool {
	return p.interactive
}

func (p *testPrompter) Confirm(title string) (bool, error) {
	p.titles = append(p.titles, title)
	return p.answer, p.err
}
