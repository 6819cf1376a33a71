package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully and returns its path.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return writeScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteStubWithOutput writes an executable stub that prints stdout verbatim and
// exits with exitCode. It stands in for `pacman -Qnq`.
func WriteStubWithOutput(t *testing.T, dir string, name string, stdout string, exitCode int) string {
	t.Helper()
	// printf '%s' keeps the payload byte-exact, including a missing trailing newline.
	quoted := "'" + strings.ReplaceAll(stdout, "'", `'\''`) + "'"
	return writeScript(t, dir, name, fmt.Sprintf("printf '%%s' %s\nexit %d\n", quoted, exitCode))
}

// WriteStubRecordingArgs writes an executable stub that appends its arguments,
// one per line, to record and exits with exitCode.
func WriteStubRecordingArgs(t *testing.T, dir string, name string, record string, exitCode int) string {
	t.Helper()
	body := fmt.Sprintf("for arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> '%s'\ndone\nexit %d\n", record, exitCode)
	return writeScript(t, dir, name, body)
}

// ReadLines returns the lines of path, failing the test if it cannot be read.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func writeScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
