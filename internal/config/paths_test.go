package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakePaths(explicit string, env map[string]string, existing ...string) Paths {
	files := make(map[string]bool, len(existing))
	for _, path := range existing {
		files[path] = true
	}
	return Paths{
		Explicit: explicit,
		Getenv:   func(key string) string { return env[key] },
		HomeDir:  func() (string, error) { return "", errors.New("no home") },
		Exists:   func(path string) bool { return files[path] },
	}
}

func TestPathsResolve(t *testing.T) {
	tests := []struct {
		name         string
		paths        Paths
		wantPath     string
		wantExplicit bool
	}{
		{
			name:         "flag wins",
			paths:        fakePaths("/tmp/flag.toml", map[string]string{EnvConfigPath: "/tmp/env.toml"}),
			wantPath:     "/tmp/flag.toml",
			wantExplicit: true,
		},
		{
			name:         "env var",
			paths:        fakePaths("", map[string]string{EnvConfigPath: "/tmp/env.toml"}),
			wantPath:     "/tmp/env.toml",
			wantExplicit: true,
		},
		{
			name:     "xdg config home",
			paths:    fakePaths("", map[string]string{"XDG_CONFIG_HOME": "/cfg"}, "/cfg/pacup/config.toml", GlobalPath),
			wantPath: "/cfg/pacup/config.toml",
		},
		{
			name:     "home dot config",
			paths:    fakePaths("", map[string]string{"HOME": "/home/u"}, "/home/u/.config/pacup/config.toml"),
			wantPath: "/home/u/.config/pacup/config.toml",
		},
		{
			name:     "global",
			paths:    fakePaths("", map[string]string{"HOME": "/home/u"}, GlobalPath),
			wantPath: GlobalPath,
		},
		{
			name:     "nothing exists",
			paths:    fakePaths("", map[string]string{"HOME": "/home/u"}),
			wantPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, explicit := tt.paths.Resolve()
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantExplicit, explicit)
		})
	}
}

func TestPathsResolve_HomeDirFallback(t *testing.T) {
	paths := fakePaths("", nil, "/srv/u/.config/pacup/config.toml")
	paths.HomeDir = func() (string, error) { return "/srv/u", nil }

	path, explicit := paths.Resolve()
	assert.Equal(t, "/srv/u/.config/pacup/config.toml", path)
	assert.False(t, explicit)
}
