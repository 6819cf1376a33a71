package messages

// Manifest messages for locating, reading and parsing the packagelist.
const (
	// ManifestNotFound heads the list of tried locations.
	ManifestNotFound            = "no packagelist file found, tried the following paths (in order):"
	ManifestNotFoundPathFmt     = "\n\t%s"
	ManifestOpenFmt             = "%w %s: %w"
	ManifestReadFmt             = "failed to read packagelist: %v"
	ManifestParseFmt            = "parse error at line %d: %v"
	ManifestReaderRequired      = "packagelist reader is required"
	ManifestStatCandidateFmt    = "check packagelist candidate %s: %w"
	ManifestUnknownKindFmt      = "unknown package type, expected '+' or '*' got %q"
	ManifestMissingName         = "expected package name"
	ManifestUnexpectedStringFmt = "unexpected string %q"

	ManifestLocationXDG    = "$XDG_CONFIG_HOME/pacup/packagelist"
	ManifestLocationHome   = "$HOME/.packagelist"
	ManifestLocationGlobal = "/etc/pacup/packagelist"
)
