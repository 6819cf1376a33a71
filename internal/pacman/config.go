package pacman

// MixedSourceMode decides how a run that needs both repository and AUR
// packages is turned into transactions.
type MixedSourceMode string

const (
	// MixedSplit installs repository packages with pacman first, then AUR
	// packages with the AUR helper.
	MixedSplit MixedSourceMode = "split"
	// MixedCollapse installs everything in one transaction; a single AUR
	// package sends the whole transaction through the AUR helper.
	MixedCollapse MixedSourceMode = "collapse"
)

// InstallFlag is the operation passed to both pacman and the AUR helper.
const InstallFlag = "-Sy"

// QueryFlag lists installed packages by name only, without confirmation.
const QueryFlag = "-Qnq"

// Default binary locations.
const (
	DefaultBinary     = "/usr/bin/pacman"
	DefaultAURBinary  = "/usr/bin/trizen"
	DefaultSudoBinary = "/usr/bin/sudo"
)

// Config is the read-only package manager setup for one run.
type Config struct {
	// Binary is the primary package manager.
	Binary string
	// AURBinary is the AUR helper. It handles its own elevation.
	AURBinary string
	// SudoBinary prefixes pacman when the caller is not root.
	SudoBinary string
	// DefaultToAUR routes every transaction through the AUR helper.
	DefaultToAUR bool
	MixedSources MixedSourceMode
	// ExtraArgs are inserted between InstallFlag and the package names.
	ExtraArgs []string
}

// DefaultConfig returns the stock Arch Linux setup.
func DefaultConfig() Config {
	return Config{
		Binary:       DefaultBinary,
		AURBinary:    DefaultAURBinary,
		SudoBinary:   DefaultSudoBinary,
		MixedSources: MixedSplit,
	}
}
