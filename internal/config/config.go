// Package config loads pacup's config.toml: where the package manager
// binaries live and how mixed repository/AUR runs are installed.
package config

import "github.com/NathanKolpa/pacup/internal/pacman"

// Config is the on-disk configuration.
type Config struct {
	Binaries Binaries `toml:"binaries"`
	Install  Install  `toml:"install"`
}

// Binaries holds absolute paths to the external programs pacup runs.
type Binaries struct {
	Pacman    string `toml:"pacman"`
	AURHelper string `toml:"aur_helper"`
	Sudo      string `toml:"sudo"`
}

// Install holds transaction policy.
type Install struct {
	DefaultToAUR bool     `toml:"default_to_aur"`
	MixedSources string   `toml:"mixed_sources"`
	ExtraArgs    []string `toml:"extra_args"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Binaries: Binaries{
			Pacman:    pacman.DefaultBinary,
			AURHelper: pacman.DefaultAURBinary,
			Sudo:      pacman.DefaultSudoBinary,
		},
		Install: Install{
			MixedSources: string(pacman.MixedSplit),
		},
	}
}

// Pacman converts the config into the package manager's runtime config.
func (c *Config) Pacman() pacman.Config {
	return pacman.Config{
		Binary:       c.Binaries.Pacman,
		AURBinary:    c.Binaries.AURHelper,
		SudoBinary:   c.Binaries.Sudo,
		DefaultToAUR: c.Install.DefaultToAUR,
		MixedSources: pacman.MixedSourceMode(c.Install.MixedSources),
		ExtraArgs:    append([]string(nil), c.Install.ExtraArgs...),
	}
}
