package pacman

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NathanKolpa/pacup/internal/testutil"
)

func newTestManager(t *testing.T, cfg Config, sys *testSystem) *Manager {
	t.Helper()
	m, err := NewManager(cfg, sys)
	require.NoError(t, err)
	return m
}

func TestNewManager_RequiresSystem(t *testing.T) {
	_, err := NewManager(DefaultConfig(), nil)
	assert.EqualError(t, err, "pacman system is required")
}

func TestNewManager_CapturesPrivilege(t *testing.T) {
	user := newTestManager(t, DefaultConfig(), newTestSystem())
	assert.False(t, user.Elevated())
	assert.True(t, user.Begin().NeedsElevation())

	sys := newTestSystem()
	sys.EUID = intPtr(0)
	root := newTestManager(t, DefaultConfig(), sys)
	assert.True(t, root.Elevated())
	assert.False(t, root.Begin().NeedsElevation())
}

func TestManager_InstalledPackages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Binary = testutil.WriteStubWithOutput(t, t.TempDir(), "pacman", "xorg\nzsh\n", 0)
	m := newTestManager(t, cfg, newTestSystem())

	set, err := m.InstalledPackages()
	require.NoError(t, err)
	assert.Equal(t, []string{"xorg", "zsh"}, set.Names())
}

func TestManager_InstalledPackagesPassesQueryFlag(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "args")
	cfg := DefaultConfig()
	cfg.Binary = testutil.WriteStubRecordingArgs(t, dir, "pacman", record, 0)
	m := newTestManager(t, cfg, newTestSystem())

	_, err := m.InstalledPackages()
	require.NoError(t, err)
	assert.Equal(t, []string{"-Qnq"}, testutil.ReadLines(t, record))
}

func TestManager_InstalledPackagesNonZeroExit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Binary = testutil.WriteStubWithOutput(t, t.TempDir(), "pacman", "partial\n", 3)
	m := newTestManager(t, cfg, newTestSystem())

	_, err := m.InstalledPackages()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, cfg.Binary, exitErr.Binary)
	assert.Contains(t, err.Error(), "non zero status (3)")
}

func TestManager_InstalledPackagesLaunchFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Binary = filepath.Join(t.TempDir(), "missing-pacman")
	m := newTestManager(t, cfg, newTestSystem())

	_, err := m.InstalledPackages()
	require.ErrorIs(t, err, ErrLaunch)
	assert.Contains(t, err.Error(), "missing-pacman")
}

func TestManager_RunChildSuccess(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "args")
	sudo := testutil.WriteStubRecordingArgs(t, dir, "sudo", record, 0)
	m := newTestManager(t, DefaultConfig(), newTestSystem())

	err := m.Run(Command{Path: sudo, Argv: []string{sudo, "/usr/bin/pacman", "-Sy", "grub"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/bin/pacman", "-Sy", "grub"}, testutil.ReadLines(t, record))
}

func TestManager_RunChildFailure(t *testing.T) {
	sudo := testutil.WriteStubWithExit(t, t.TempDir(), "sudo", 1)
	m := newTestManager(t, DefaultConfig(), newTestSystem())

	err := m.Run(Command{Path: sudo, Argv: []string{sudo, "-Sy", "grub"}})
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
}

func TestManager_ExecHandsOverArgvAndEnv(t *testing.T) {
	sys := newTestSystem()
	sys.Env = []string{"LANG=C"}
	var gotPath string
	var gotArgv, gotEnv []string
	sys.ExecFunc = func(path string, argv []string, env []string) error {
		gotPath, gotArgv, gotEnv = path, argv, env
		return nil
	}
	m := newTestManager(t, DefaultConfig(), sys)
	tx := m.Begin()
	tx.Add("zsh")
	tx.MarkAlternateSource()
	cmd, err := tx.Render()
	require.NoError(t, err)

	require.NoError(t, m.Exec(cmd))
	assert.Equal(t, DefaultAURBinary, gotPath)
	assert.Equal(t, []string{DefaultAURBinary, "-Sy", "zsh"}, gotArgv)
	assert.Equal(t, []string{"LANG=C"}, gotEnv)
}

func TestManager_ExecFailure(t *testing.T) {
	sys := newTestSystem()
	boom := errors.New("exec format error")
	sys.ExecFunc = func(string, []string, []string) error { return boom }
	m := newTestManager(t, DefaultConfig(), sys)

	err := m.Exec(Command{Path: "/usr/bin/sudo", Argv: []string{"/usr/bin/sudo", "/usr/bin/pacman", "-Sy", "grub"}})
	require.ErrorIs(t, err, ErrInstall)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "/usr/bin/sudo")
}
