package pacman

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/NathanKolpa/pacup/internal/messages"
)

// Manager runs pacman and the AUR helper for one run.
type Manager struct {
	cfg      Config
	sys      System
	elevated bool
}

// NewManager captures the caller's privilege state from sys.
func NewManager(cfg Config, sys System) (*Manager, error) {
	if sys == nil {
		return nil, errors.New(messages.PacmanSystemRequired)
	}
	return &Manager{
		cfg:      cfg,
		sys:      sys,
		elevated: sys.Geteuid() == 0,
	}, nil
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() Config {
	return m.cfg
}

// Elevated reports whether the caller runs as root.
func (m *Manager) Elevated() bool {
	return m.elevated
}

// Begin starts an empty transaction bound to the manager's config.
func (m *Manager) Begin() *Transaction {
	return NewTransaction(m.cfg, m.elevated)
}

// InstalledPackages runs `pacman -Qnq` and parses its output.
// stdin and stderr are passed through so pacman can report problems itself.
func (m *Manager) InstalledPackages() (InstalledSet, error) {
	var stdout bytes.Buffer
	cmd := m.sys.Command(m.cfg.Binary, QueryFlag)
	cmd.Stdin = m.sys.Stdin()
	cmd.Stdout = &stdout
	cmd.Stderr = m.sys.Stderr()

	if err := wait(cmd, m.cfg.Binary); err != nil {
		return InstalledSet{}, err
	}
	return ParseInstalled(stdout.Bytes()), nil
}

// Run executes cmd as a child process with the caller's stdio and waits for it.
func (m *Manager) Run(cmd Command) error {
	child := m.sys.Command(cmd.Path, cmd.Argv[1:]...)
	child.Stdin = m.sys.Stdin()
	child.Stdout = m.sys.Stdout()
	child.Stderr = m.sys.Stderr()
	return wait(child, cmd.Path)
}

// Exec replaces the current process with cmd. On success it does not return
// (test systems may return nil).
func (m *Manager) Exec(cmd Command) error {
	if err := m.sys.Exec(cmd.Path, cmd.Argv, m.sys.Environ()); err != nil {
		return fmt.Errorf(messages.PacmanLaunchFmt, ErrInstall, cmd.Path, err)
	}
	return nil
}

// wait starts cmd and waits for it, mapping failures onto ErrLaunch, ErrWait
// and *ExitError.
func wait(cmd *exec.Cmd, binary string) error {
	if err := cmd.Start(); err != nil {
		return fmt.Errorf(messages.PacmanLaunchFmt, ErrLaunch, binary, err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Binary: binary, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf(messages.PacmanWaitFmt, ErrWait, binary, err)
	}
	return nil
}
