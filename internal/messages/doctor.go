package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the config, package manager binaries and packagelist"

	DoctorHealthCheck = "Checking pacup health..."

	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameBinary   = "Binary"
	DoctorCheckNameManifest = "Packagelist"

	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Fix config.toml or remove it to fall back to the defaults."
	DoctorConfigLoadedFmt     = "Configuration loaded from %s"

	DoctorBinaryMissingFmt          = "%s binary not found: %s"
	DoctorBinaryMissingRecommendFmt = "Install %s or point binaries.%s at the right path."
	DoctorBinaryNotExecFmt          = "%s binary is not executable: %s"
	DoctorBinaryNotExecRecommend    = "Check the file permissions."
	DoctorBinaryOKFmt               = "%s binary found: %s"
	DoctorBinarySkippedFmt          = "%s binary not needed (running as root or installing through the AUR helper)"

	DoctorManifestMissingRecommend = "Create one of the listed files, or pass --manifest."
	DoctorManifestInvalidFmt       = "%s: %v"
	DoctorManifestInvalidRecommend = "Each line must be '+ name' or '* name', optionally followed by a # comment."
	DoctorManifestOKFmt            = "%s: %d %s"

	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"
	DoctorResultLineFmt   = "%s %-12s %s\n"

	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "

	DoctorSuccessSummary = "✅ All checks passed."
	DoctorFailureSummary = "❌ Some checks failed."
	DoctorFailureError   = "doctor checks failed"
)
