package messages

// CLI messages for user-facing commands and output.
const (
	// RootUse is the CLI command name.
	RootUse = "pacup"
	// RootShort is the short description for the root command.
	RootShort = "Synchronise packages between the packagelist and pacman"
	RootLong  = `pacup reads the packagelist, compares it with the packages pacman reports as
installed, and installs whatever is missing.

Lines start with '+' for repository packages or '*' for AUR packages:

  + xorg      # from the official repositories
  * zsh-theme # through the AUR helper`

	RootFlagDiff     = "Print the packages missing from the host and exit without installing"
	RootFlagManifest = "Path to the packagelist (skips the search path)"
	RootFlagConfig   = "Path to the config file"
	RootFlagAsk      = "Ask for confirmation before installing"
	RootFlagVerbose  = "Enable debug logging on stderr"

	// VersionUse is the version command name.
	VersionUse       = "version"
	VersionShort     = "Print the pacup version"
	VersionTemplate  = "{{.Version}}\n"
	VersionFullFmt   = "%s (%s)"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"

	SyncNothingMissing    = "All packages from the packagelist are installed."
	SyncSummaryFmt        = "Installing %d missing %s:\n"
	SyncSummaryCommandFmt = "  %s\n"
	SyncConfirmPromptFmt  = "Install %d missing %s?"
	SyncConfirmDeclined   = "Nothing installed."
	SyncPackageSingular   = "package"
	SyncPackagePlural     = "packages"

	// PromptRequiresTerminal is returned when a confirmation is requested without a TTY.
	PromptRequiresTerminal = "confirmation requires an interactive terminal"
	PromptInterrupted      = "interrupted"
)
