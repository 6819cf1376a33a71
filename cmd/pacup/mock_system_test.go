package main

import (
	"bytes"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/NathanKolpa/pacup/internal/manifest"
	"github.com/NathanKolpa/pacup/internal/pacman"
	"github.com/NathanKolpa/pacup/internal/sync"
)

// testSystem lets child processes run for real but only records Exec.
type testSystem struct {
	pacman.RealSystem

	EUID  int
	Execs [][]string

	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (s *testSystem) Geteuid() int { return s.EUID }

func (s *testSystem) Exec(path string, argv []string, env []string) error {
	s.Execs = append(s.Execs, append([]string(nil), argv...))
	return nil
}

func (s *testSystem) Environ() []string { return nil }

func (s *testSystem) Stdin() io.Reader { return strings.NewReader("") }

func (s *testSystem) Stdout() io.Writer { return &s.stdout }

func (s *testSystem) Stderr() io.Writer { return &s.stderr }

type fixedPrompter struct {
	answer bool
	asked  int
}

func (p *fixedPrompter) Interactive() bool { return true }

func (p *fixedPrompter) Confirm(string) (bool, error) {
	p.asked++
	return p.answer, nil
}

// stubSeams swaps the process-level collaborators for the duration of a test.
func stubSeams(t *testing.T, sys *testSystem, prompter sync.Prompter) {
	t.Helper()
	origSystem, origPrompter, origLocator := newSystem, newPrompter, newLocator
	t.Cleanup(func() {
		newSystem, newPrompter, newLocator = origSystem, origPrompter, origLocator
	})
	newSystem = func() pacman.System { return sys }
	newPrompter = func(io.Writer) sync.Prompter { return prompter }
	newLocator = func() manifest.Locator {
		return manifest.Locator{
			Getenv:  func(string) string { return "" },
			HomeDir: func() (string, error) { return "", nil },
			Stat: func(string) (fs.FileInfo, error) {
				return nil, fs.ErrNotExist
			},
		}
	}
}
