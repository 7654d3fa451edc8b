package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// folderSelectModel is the first onboarding screen: the user types the path
// of the folder to synchronize.
type folderSelectModel struct {
	input      textinput.Model
	submitting bool
}

func newFolderSelectModel() folderSelectModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/folder"
	pathInput.CharLimit = 512
	pathInput.Width = 48
	pathInput.Focus()

	return folderSelectModel{input: pathInput}
}

func (m folderSelectModel) view(selected string) string {
	var b strings.Builder

	b.WriteString("Folder │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	b.WriteString("\nSelected: ")
	b.WriteString(valueOrDash(selected))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Selecting...]\n")
	}

	return renderPage(
		"PEERFOLD · CHOOSE A FOLDER",
		strings.TrimRight(b.String(), "\n"),
		"enter: select │ ctrl+n: continue",
	)
}
