package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// EnvConfigPath overrides the config search path.
const EnvConfigPath = "PACUP_CONFIG"

// GlobalPath is the system-wide config, used when no per-user config exists.
const GlobalPath = "/etc/pacup/config.toml"

// Paths resolves the config file location.
type Paths struct {
	// Explicit is the --config flag value; it wins over everything else.
	Explicit string
	Getenv   func(key string) string
	HomeDir  func() (string, error)
	Exists   func(path string) bool
}

// DefaultPaths returns Paths backed by the process environment.
func DefaultPaths(explicit string) Paths {
	return Paths{
		Explicit: explicit,
		Getenv:   os.Getenv,
		HomeDir:  homedir.Dir,
		Exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// Resolve returns the config path to read and whether the user asked for it
// explicitly (flag or PACUP_CONFIG). Otherwise the first existing file of
// $XDG_CONFIG_HOME/pacup/config.toml (default ~/.config) and GlobalPath is
// returned, or "" when neither exists.
func (p Paths) Resolve() (path string, explicit bool) {
	if p.Explicit != "" {
		return p.Explicit, true
	}
	if env := p.Getenv(EnvConfigPath); env != "" {
		return env, true
	}

	var candidates []string
	if dir := p.userConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "pacup", "config.toml"))
	}
	candidates = append(candidates, GlobalPath)
	for _, candidate := range candidates {
		if p.Exists(candidate) {
			return candidate, false
		}
	}
	return "", false
}

func (p Paths) userConfigDir() string {
	if dir := p.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home := p.Getenv("HOME")
	if home == "" && p.HomeDir != nil {
		if dir, err := p.HomeDir(); err == nil {
			home = dir
		}
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config")
}
