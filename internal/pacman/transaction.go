package pacman

import "strings"

// Command is a fully rendered invocation.
type Command struct {
	// Path is the program to run; it equals Argv[0].
	Path string
	Argv []string
}

// String returns the command line as shown to the user.
func (c Command) String() string {
	return strings.Join(c.Argv, " ")
}

// Transaction accumulates the packages to install in one invocation.
// Packages keep insertion order and duplicates are not removed.
type Transaction struct {
	cfg       Config
	elevated  bool
	packages  []string
	alternate bool
}

// NewTransaction starts an empty transaction. elevated reports whether the
// caller already runs as root.
func NewTransaction(cfg Config, elevated bool) *Transaction {
	return &Transaction{cfg: cfg, elevated: elevated}
}

// Add appends a package name.
func (t *Transaction) Add(name string) {
	t.packages = append(t.packages, name)
}

// MarkAlternateSource sends the whole transaction through the AUR helper.
func (t *Transaction) MarkAlternateSource() {
	t.alternate = true
}

// IsEmpty reports whether no package has been added.
func (t *Transaction) IsEmpty() bool {
	return len(t.packages) == 0
}

// Count returns the number of packages added.
func (t *Transaction) Count() int {
	return len(t.packages)
}

// Packages returns a copy of the pending package names in insertion order.
func (t *Transaction) Packages() []string {
	return append([]string(nil), t.packages...)
}

// UsesAlternateSource reports whether the AUR helper will be invoked, either
// because the transaction was marked or because the config defaults to it.
func (t *Transaction) UsesAlternateSource() bool {
	return t.alternate || t.cfg.DefaultToAUR
}

// NeedsElevation reports whether the command is prefixed with sudo.
// AUR helpers elevate on their own, so they never get the prefix.
func (t *Transaction) NeedsElevation() bool {
	return !t.elevated && !t.UsesAlternateSource()
}

func (t *Transaction) binary() string {
	if t.UsesAlternateSource() {
		return t.cfg.AURBinary
	}
	return t.cfg.Binary
}

// Render builds the install command. Rendering an empty transaction is a
// caller error and returns ErrEmptyTransaction.
func (t *Transaction) Render() (Command, error) {
	if t.IsEmpty() {
		return Command{}, ErrEmptyTransaction
	}

	argv := make([]string, 0, 3+len(t.cfg.ExtraArgs)+len(t.packages))
	if t.NeedsElevation() {
		argv = append(argv, t.cfg.SudoBinary)
	}
	argv = append(argv, t.binary(), InstallFlag)
	argv = append(argv, t.cfg.ExtraArgs...)
	argv = append(argv, t.packages...)

	return Command{Path: argv[0], Argv: argv}, nil
}

// String returns the rendered command line, or an empty string for an empty transaction.
func (t *Transaction) String() string {
	cmd, err := t.Render()
	if err != nil {
		return ""
	}
	return cmd.String()
}
