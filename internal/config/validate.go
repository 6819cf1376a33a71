package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/NathanKolpa/pacup/internal/messages"
	"github.com/NathanKolpa/pacup/internal/pacman"
)

var validMixedSources = map[string]struct{}{
	string(pacman.MixedSplit):    {},
	string(pacman.MixedCollapse): {},
}

// Validate ensures the config is complete and consistent.
// source names the config in error messages.
func (c *Config) Validate(source string) error {
	binaries := []struct {
		key  string
		path string
	}{
		{key: "pacman", path: c.Binaries.Pacman},
		{key: "aur_helper", path: c.Binaries.AURHelper},
		{key: "sudo", path: c.Binaries.Sudo},
	}
	for _, b := range binaries {
		if strings.TrimSpace(b.path) == "" {
			return fmt.Errorf(messages.ConfigBinaryRequiredFmt, source, b.key)
		}
		if !filepath.IsAbs(b.path) {
			return fmt.Errorf(messages.ConfigBinaryNotAbsoluteFmt, source, b.key, b.path)
		}
	}

	if _, ok := validMixedSources[c.Install.MixedSources]; !ok {
		return fmt.Errorf(messages.ConfigMixedSourcesInvalidFmt, source, c.Install.MixedSources)
	}

	for i, arg := range c.Install.ExtraArgs {
		if !strings.HasPrefix(arg, "-") {
			return fmt.Errorf(messages.ConfigExtraArgInvalidFmt, source, i, arg)
		}
	}
	return nil
}
