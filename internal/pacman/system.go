package pacman

import (
	"io"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// System abstracts the OS operations the package manager needs so tests never
// touch the real pacman or replace the test process.
type System interface {
	Geteuid() int
	Command(name string, args ...string) *exec.Cmd
	Exec(path string, argv []string, env []string) error
	Environ() []string
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// RealSystem implements System using the running process.
type RealSystem struct{}

// Geteuid returns the effective user id of the caller.
func (RealSystem) Geteuid() int {
	return unix.Geteuid()
}

// Command returns an exec.Cmd for name.
func (RealSystem) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// Exec replaces the current process with path. It only returns on failure.
func (RealSystem) Exec(path string, argv []string, env []string) error {
	return unix.Exec(path, argv, env)
}

// Environ returns a copy of the process environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// Stdin returns the standard input reader.
func (RealSystem) Stdin() io.Reader {
	return os.Stdin
}

// Stdout returns the standard output writer.
func (RealSystem) Stdout() io.Writer {
	return os.Stdout
}

// Stderr returns the standard error writer.
func (RealSystem) Stderr() io.Writer {
	return os.Stderr
}
