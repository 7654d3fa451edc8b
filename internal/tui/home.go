package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/peerfold/peerfold/models"
)

const maxVisibleEntries = 15

// homeModel is the main dashboard of an active session: the folder snapshot,
// the sharing toggles and the node diagnostics.
type homeModel struct {
	refreshing bool
	spinner    spinner.Model

	showStatus bool
	status     models.NodeStatus
}

func newHomeModel() homeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return homeModel{spinner: s}
}

func (m homeModel) view(cfg models.SessionConfig, snapshot models.DirectorySnapshot) string {
	var b strings.Builder

	b.WriteString("Folder: ")
	b.WriteString(valueOrDash(snapshot.Path))
	if m.refreshing {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Auto-sync: %s │ Clipboard sharing: %s\n", onOff(cfg.AutoSyncEnabled), onOff(cfg.ClipboardSharingEnabled)))
	b.WriteString("\n")

	if len(snapshot.Entries) == 0 {
		b.WriteString("(folder is empty)\n")
	} else {
		shown := snapshot.Entries
		if len(shown) > maxVisibleEntries {
			shown = shown[:maxVisibleEntries]
		}
		for _, entry := range shown {
			b.WriteString(entryLine(entry))
			b.WriteString("\n")
		}
		if hidden := len(snapshot.Entries) - len(shown); hidden > 0 {
			b.WriteString(fmt.Sprintf("... and %d more\n", hidden))
		}
	}

	if m.showStatus {
		b.WriteString("\nNode: ")
		b.WriteString(valueOrDash(m.status.NodeID))
		b.WriteString("\nTopic: ")
		b.WriteString(valueOrDash(m.status.Topic))
		b.WriteString(fmt.Sprintf("\nJoined: %v\n", m.status.Joined))
	}

	return renderPage(
		"PEERFOLD",
		strings.TrimRight(b.String(), "\n"),
		"a: auto-sync │ c: clipboard │ r: refresh │ s: node status │ q: quit",
	)
}
