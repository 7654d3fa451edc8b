package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peerfold/peerfold/models"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "shorter than max", in: "abc", max: 10, want: "abc"},
		{name: "exactly max", in: "abcde", max: 5, want: "abcde"},
		{name: "truncated with ellipsis", in: "abcdefghij", max: 7, want: "abcd..."},
		{name: "tiny max", in: "abcdef", max: 2, want: "ab"},
		{name: "zero max returns input", in: "abc", max: 0, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "/home/alice/sync", valueOrDash("/home/alice/sync"))
}

func TestEntryLine(t *testing.T) {
	assert.Equal(t, "[D] photos", entryLine(models.DirEntry{Name: "photos", IsDir: true}))
	assert.Equal(t, "    notes.txt", entryLine(models.DirEntry{Name: "notes.txt"}))
}

func TestRenderPage_ContainsParts(t *testing.T) {
	out := renderPage("TITLE", "line one\nline two", "enter: go")

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "line one")
	assert.Contains(t, out, "line two")
	assert.Contains(t, out, "enter: go")
	assert.Contains(t, out, "ctrl+c: quit")
	assert.Contains(t, out, uiDivider)
}

func TestRenderPage_EmptyBodyShowsDash(t *testing.T) {
	out := renderPage("TITLE", "   ", "")

	// each body line is indented two spaces
	assert.True(t, strings.Contains(out, "  -\n"), "empty body should render a dash placeholder")
}
