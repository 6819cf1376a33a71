// Package prompt asks the user to confirm an install before it starts.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/NathanKolpa/pacup/internal/messages"
	"github.com/NathanKolpa/pacup/internal/terminal"
)

var (
	// ErrNotInteractive is returned when a prompt is requested without a terminal.
	ErrNotInteractive = errors.New(messages.PromptRequiresTerminal)
	// ErrInterrupted is returned when the user presses Ctrl+C at the prompt.
	ErrInterrupted = errors.New(messages.PromptInterrupted)
)

// HuhConfirmer asks yes/no questions with charmbracelet/huh.
type HuhConfirmer struct {
	isTerminal func() bool
	output     io.Writer
	ctrlCAbort bool // set by the key filter while the form runs
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhConfirmer returns a confirmer that renders on output (stderr when nil).
func NewHuhConfirmer(output io.Writer) *HuhConfirmer {
	if output == nil {
		output = os.Stderr
	}
	return &HuhConfirmer{isTerminal: terminal.IsInteractive, output: output}
}

// Interactive reports whether a prompt can be shown.
func (c *HuhConfirmer) Interactive() bool {
	checker := c.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	return checker()
}

// confirmKeyMap lets Esc decline and Ctrl+C abort the run.
func confirmKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	km.Confirm.Prev = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "no"))
	return km
}

func (c *HuhConfirmer) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			c.ctrlCAbort = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// Confirm asks title and returns the answer. Esc counts as "no"; Ctrl+C
// returns ErrInterrupted.
func (c *HuhConfirmer) Confirm(title string) (bool, error) {
	if !c.Interactive() {
		return false, ErrNotInteractive
	}

	answer := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	)
	c.ctrlCAbort = false
	form.WithKeyMap(confirmKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(c.output),
		tea.WithFilter(c.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if c.ctrlCAbort {
			return false, ErrInterrupted
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return answer, nil
}
