package pacman

import (
	"errors"
	"fmt"

	"github.com/NathanKolpa/pacup/internal/messages"
)

var (
	// ErrLaunch reports that a binary could not be started (or exec'd).
	ErrLaunch = errors.New("cannot run")
	// ErrWait reports a failure while waiting for a started binary.
	ErrWait = errors.New("error while waiting for")
	// ErrInstall reports that the final install command could not replace the process.
	ErrInstall = errors.New("cannot install with")
	// ErrEmptyTransaction is returned when rendering a transaction with no packages.
	ErrEmptyTransaction = errors.New(messages.PacmanEmptyTransaction)
)

// ExitError reports a binary that ran and exited with a non-zero status.
type ExitError struct {
	Binary string
	Code   int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf(messages.PacmanNonZeroExitFmt, e.Binary, e.Code)
}
