// Package sync runs one packagelist synchronisation: locate the packagelist,
// query what pacman has installed, reconcile and install the rest.
package sync

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/NathanKolpa/pacup/internal/logging"
	"github.com/NathanKolpa/pacup/internal/manifest"
	"github.com/NathanKolpa/pacup/internal/messages"
	"github.com/NathanKolpa/pacup/internal/pacman"
	"github.com/NathanKolpa/pacup/internal/reconcile"
)

// ErrDeclined is returned by Run when the user answers "no" at the prompt.
// Callers treat it as a successful run.
var ErrDeclined = errors.New(messages.SyncDeclined)

// Options select what a run does.
type Options struct {
	// ManifestPath skips the search path when set.
	ManifestPath string
	// DryRun prints the missing package names instead of installing them.
	DryRun bool
	// Ask confirms before installing when a terminal is attached.
	Ask bool
}

// Runner holds the collaborators of a sync run.
type Runner struct {
	Locator  manifest.Locator
	Manager  *pacman.Manager
	Prompter Prompter
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *log.Logger
}

// Run performs one sync. Nothing is installed unless the whole packagelist
// parses. On success the final install replaces the process, so Run only
// returns when nothing needed installing, in dry-run mode, or on error.
func (r *Runner) Run(opts Options) error {
	if r.Manager == nil {
		return errors.New(messages.SyncSystemRequired)
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	plan, err := r.plan(opts, logger)
	if err != nil {
		return err
	}

	if opts.DryRun {
		for _, name := range plan.Pending {
			_, _ = fmt.Fprintln(r.Stdout, name)
		}
		return nil
	}

	if plan.IsEmpty() {
		_, _ = fmt.Fprintln(r.Stderr, messages.SyncNothingMissing)
		return nil
	}

	commands, err := plan.Commands()
	if err != nil {
		return err
	}
	r.printSummary(len(plan.Pending), commands)

	if opts.Ask {
		if err := r.confirm(len(plan.Pending), logger); err != nil {
			return err
		}
	}

	return r.install(commands, logger)
}

// plan locates and reads the packagelist and reconciles it against the
// installed packages.
func (r *Runner) plan(opts Options, logger *log.Logger) (*reconcile.Plan, error) {
	path := opts.ManifestPath
	if path == "" {
		found, err := r.Locator.Find()
		if err != nil {
			return nil, err
		}
		path = found
	}
	logger.Debug("using packagelist", "path", path)

	file, err := manifest.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	installed, err := r.Manager.InstalledPackages()
	if err != nil {
		return nil, fmt.Errorf(messages.PacmanFetchPackagesFmt, err)
	}
	logger.Debug("queried installed packages", "count", installed.Len())

	cfg := r.Manager.Config()
	plan, err := reconcile.Reconcile(manifest.NewReader(file), loggedSet{set: installed, logger: logger}, r.Manager, cfg.MixedSources)
	if err != nil {
		return nil, err
	}
	logger.Debug("reconciled packagelist", "missing", len(plan.Pending), "transactions", len(plan.Transactions))
	return plan, nil
}

func (r *Runner) printSummary(count int, commands []pacman.Command) {
	header := color.New(color.Bold)
	_, _ = header.Fprintf(r.Stderr, messages.SyncSummaryFmt, count, packageNoun(count))
	for _, cmd := range commands {
		_, _ = fmt.Fprintf(r.Stderr, messages.SyncSummaryCommandFmt, color.CyanString(cmd.String()))
	}
}

func (r *Runner) confirm(count int, logger *log.Logger) error {
	if r.Prompter == nil || !r.Prompter.Interactive() {
		logger.Debug("no terminal attached, installing without confirmation")
		return nil
	}
	ok, err := r.Prompter.Confirm(fmt.Sprintf(messages.SyncConfirmPromptFmt, count, packageNoun(count)))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(r.Stderr, messages.SyncConfirmDeclined)
		return ErrDeclined
	}
	return nil
}

// install runs every command but the last as a child process, then replaces
// the process with the last one.
func (r *Runner) install(commands []pacman.Command, logger *log.Logger) error {
	last := len(commands) - 1
	for _, cmd := range commands[:last] {
		logger.Debug("running", "command", cmd.String())
		if err := r.Manager.Run(cmd); err != nil {
			return fmt.Errorf(messages.PacmanInstallFmt, err)
		}
	}
	logger.Debug("exec", "command", commands[last].String())
	if err := r.Manager.Exec(commands[last]); err != nil {
		return fmt.Errorf(messages.PacmanInstallFmt, err)
	}
	return nil
}

func packageNoun(count int) string {
	if count == 1 {
		return messages.SyncPackageSingular
	}
	return messages.SyncPackagePlural
}
