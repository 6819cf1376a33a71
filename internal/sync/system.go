package sync

import (
	"github.com/charmbracelet/log"

	"github.com/NathanKolpa/pacup/internal/manifest"
)

// Prompter asks the user before the install starts.
type Prompter interface {
	Interactive() bool
	Confirm(title string) (bool, error)
}

// loggedSet reports every packagelist entry skipped because it is installed.
type loggedSet struct {
	set    manifest.Set
	logger *log.Logger
}

func (s loggedSet) Contains(name string) bool {
	if !s.set.Contains(name) {
		return false
	}
	s.logger.Debug("already installed", "package", name)
	return true
}
