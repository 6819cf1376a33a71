package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFileFmt formats config read errors.
	ConfigReadFileFmt         = "read config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %v"
	ConfigValidationGuidance  = "(see the [binaries] and [install] tables in config.toml)"

	ConfigBinaryRequiredFmt      = "%s: binaries.%s is required"
	ConfigBinaryNotAbsoluteFmt   = "%s: binaries.%s must be an absolute path (got %q)"
	ConfigMixedSourcesInvalidFmt = "%s: install.mixed_sources must be one of split, collapse (got %q)"
	ConfigExtraArgInvalidFmt     = "%s: install.extra_args[%d] must be a flag starting with '-' (got %q)"
	ConfigDefaultsSource         = "built-in defaults"
)
