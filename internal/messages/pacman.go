package messages

// Pacman messages for querying the package database and installing packages.
const (
	PacmanLaunchFmt        = "%w %s: %w"
	PacmanWaitFmt          = "%w %s: %w"
	PacmanNonZeroExitFmt   = "%s exited with non zero status (%d)"
	PacmanFetchPackagesFmt = "failed to fetch pacman packages: %w"
	PacmanInstallFmt       = "failed to install packages: %w"
	PacmanEmptyTransaction = "transaction has no packages"
	PacmanSystemRequired   = "pacman system is required"
)
