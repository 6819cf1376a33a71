// Package reconcile turns the packagelist entries missing from the host into
// install transactions.
package reconcile

import (
	"errors"
	"fmt"
	"io"

	"github.com/NathanKolpa/pacup/internal/manifest"
	"github.com/NathanKolpa/pacup/internal/messages"
	"github.com/NathanKolpa/pacup/internal/pacman"
)

// Plan is the outcome of one reconciliation.
type Plan struct {
	// Transactions run in order; none is empty.
	Transactions []*pacman.Transaction
	// Pending lists the missing names in packagelist order.
	Pending []string
}

// IsEmpty reports whether nothing needs installing.
func (p *Plan) IsEmpty() bool {
	return len(p.Pending) == 0
}

// Commands renders every transaction in run order.
func (p *Plan) Commands() ([]pacman.Command, error) {
	commands := make([]pacman.Command, 0, len(p.Transactions))
	for _, tx := range p.Transactions {
		cmd, err := tx.Render()
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

// Reconcile drains r, keeps every entry whose name is not in installed and
// routes it to a transaction begun from mgr.
//
// In MixedSplit mode repository packages and AUR packages get separate
// transactions, repository first. In MixedCollapse mode a single transaction
// holds everything and one AUR entry sends it through the AUR helper.
func Reconcile(r *manifest.Reader, installed manifest.Set, mgr *pacman.Manager, mode pacman.MixedSourceMode) (*Plan, error) {
	if r == nil {
		return nil, errors.New(messages.ManifestReaderRequired)
	}
	if mgr == nil {
		return nil, errors.New(messages.ReconcileManagerRequired)
	}

	var route func(manifest.Line)
	var order []*pacman.Transaction
	pending := []string{}

	switch mode {
	case pacman.MixedSplit:
		standard, alternate := mgr.Begin(), mgr.Begin()
		alternate.MarkAlternateSource()
		order = []*pacman.Transaction{standard, alternate}
		route = func(line manifest.Line) {
			if line.Kind == manifest.KindAlternate {
				alternate.Add(line.Name)
				return
			}
			standard.Add(line.Name)
		}
	case pacman.MixedCollapse:
		tx := mgr.Begin()
		order = []*pacman.Transaction{tx}
		route = func(line manifest.Line) {
			if line.Kind == manifest.KindAlternate {
				tx.MarkAlternateSource()
			}
			tx.Add(line.Name)
		}
	default:
		return nil, fmt.Errorf(messages.ReconcileUnknownModeFmt, mode)
	}

	for {
		line, err := r.NextNotIn(installed)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		route(line)
		pending = append(pending, line.Name)
	}

	plan := &Plan{Pending: pending}
	for _, tx := range order {
		if !tx.IsEmpty() {
			plan.Transactions = append(plan.Transactions, tx)
		}
	}
	return plan, nil
}
