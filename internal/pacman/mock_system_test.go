package pacman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errNotMocked is returned when a testSystem method with side effects is called without a mock.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Fallback behavior:
//   - Exec: returns errNotMocked; tests must never replace the test process.
//   - Geteuid: reports an unprivileged user (1000) unless EUID is set.
//   - Command: falls back to RealSystem so shell stubs from testutil can run.
//   - Stdin/Stdout/Stderr: in-memory buffers.
type testSystem struct {
	RealSystem

	EUID     *int
	ExecFunc func(path string, argv []string, env []string) error
	Env      []string

	stdin  io.Reader
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newTestSystem() *testSystem {
	return &testSystem{stdin: strings.NewReader("")}
}

func (s *testSystem) Geteuid() int {
	if s.EUID != nil {
		return *s.EUID
	}
	return 1000
}

func (s *testSystem) Exec(path string, argv []string, env []string) error {
	if s.ExecFunc != nil {
		return s.ExecFunc(path, argv, env)
	}
	return fmt.Errorf("%w: Exec", errNotMocked)
}

func (s *testSystem) Environ() []string {
	return s.Env
}

func (s *testSystem) Stdin() io.Reader {
	return s.stdin
}

func (s *testSystem) Stdout() io.Writer {
	return &s.stdout
}

func (s *testSystem) Stderr() io.Writer {
	return &s.stderr
}

func intPtr(v int) *int {
	return &v
}
