package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInstalled(t *testing.T) {
	set := ParseInstalled([]byte("xorg\nzsh\n"))

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("xorg"))
	assert.True(t, set.Contains("zsh"))
	assert.False(t, set.Contains(""))
	assert.Equal(t, []string{"xorg", "zsh"}, set.Names())
}

func TestParseInstalled_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{name: "empty output", out: "", want: []string{}},
		{name: "only newlines", out: "\n\n\n", want: []string{}},
		{name: "no trailing newline", out: "base\nlinux", want: []string{"base", "linux"}},
		{name: "blank lines between", out: "base\n\n\nlinux\n", want: []string{"base", "linux"}},
		{name: "crlf", out: "base\r\nlinux\r\n", want: []string{"base", "linux"}},
		{name: "duplicates collapse", out: "vim\nvim\n", want: []string{"vim"}},
		{name: "invalid utf-8 kept as bytes", out: "caf\xe9\n", want: []string{"caf\xe9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ParseInstalled([]byte(tt.out))
			assert.Equal(t, tt.want, set.Names())
			assert.False(t, set.Contains(""))
		})
	}
}

func TestInstalledSet_CaseSensitive(t *testing.T) {
	set := ParseInstalled([]byte("Xorg\n"))

	assert.True(t, set.Contains("Xorg"))
	assert.False(t, set.Contains("xorg"))
	assert.False(t, set.Contains("Xorg\n"))
}

func TestInstalledSet_ZeroValue(t *testing.T) {
	var set InstalledSet

	assert.False(t, set.Contains("xorg"))
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Names())
}
