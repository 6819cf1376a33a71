package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/NathanKolpa/pacup/internal/messages"
)

// EnvXDGConfigHome and EnvHome are the variables the search path is built from.
const (
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	EnvHome          = "HOME"
)

// GlobalPath is the system-wide packagelist, tried last.
const GlobalPath = "/etc/pacup/packagelist"

// Locator finds the packagelist on disk.
// The zero value is not usable; start from DefaultLocator.
type Locator struct {
	Getenv  func(key string) string
	HomeDir func() (string, error)
	Stat    func(name string) (fs.FileInfo, error)
}

// DefaultLocator returns a Locator backed by the process environment.
func DefaultLocator() Locator {
	return Locator{
		Getenv:  os.Getenv,
		HomeDir: homedir.Dir,
		Stat:    os.Stat,
	}
}

// candidate is one search location; label is shown when path cannot be resolved.
type candidate struct {
	path  string
	label string
}

func (l Locator) candidates() []candidate {
	var xdg, home string
	if dir := l.Getenv(EnvXDGConfigHome); dir != "" {
		xdg = filepath.Join(dir, "pacup", "packagelist")
	}
	homeDir := l.Getenv(EnvHome)
	if homeDir == "" && l.HomeDir != nil {
		// go-homedir falls back to the passwd database when $HOME is unset.
		if dir, err := l.HomeDir(); err == nil {
			homeDir = dir
		}
	}
	if homeDir != "" {
		home = filepath.Join(homeDir, ".packagelist")
	}
	return []candidate{
		{path: xdg, label: messages.ManifestLocationXDG},
		{path: home, label: messages.ManifestLocationHome},
		{path: GlobalPath, label: messages.ManifestLocationGlobal},
	}
}

// Find returns the first existing packagelist in search order:
// $XDG_CONFIG_HOME/pacup/packagelist, $HOME/.packagelist, /etc/pacup/packagelist.
// It returns a *NotFoundError (matching ErrNotFound) when none exists.
func (l Locator) Find() (string, error) {
	var tried []string
	for _, c := range l.candidates() {
		if c.path == "" {
			tried = append(tried, c.label)
			continue
		}
		tried = append(tried, c.path)
		if _, err := l.Stat(c.path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf(messages.ManifestStatCandidateFmt, c.path, err)
		}
		return c.path, nil
	}
	return "", &NotFoundError{Tried: tried}
}

// Open opens the packagelist at path for reading.
func Open(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestOpenFmt, ErrOpen, path, err)
	}
	return file, nil
}
