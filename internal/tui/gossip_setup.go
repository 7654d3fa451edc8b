package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/peerfold/peerfold/models"
)

// gossipSetupModel is the second onboarding screen: the user either generates
// a fresh group ticket to share with peers, or pastes a ticket received from
// one.
type gossipSetupModel struct {
	idx        int // 0 = generate, 1 = enter a ticket
	input      textinput.Model
	typing     bool
	generating bool
	spinner    spinner.Model
}

func newGossipSetupModel() gossipSetupModel {
	ticketInput := textinput.New()
	ticketInput.Placeholder = "paste ticket here"
	ticketInput.CharLimit = 2048
	ticketInput.Width = 48

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return gossipSetupModel{input: ticketInput, spinner: s}
}

func (m gossipSetupModel) view(onboarding models.Onboarding) string {
	var b strings.Builder

	options := []string{"Generate a new ticket", "Enter a ticket"}
	for i, option := range options {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(option)
		b.WriteString("\n")
	}

	if m.typing {
		b.WriteString("\nTicket │ [")
		b.WriteString(m.input.View())
		b.WriteString("]\n")
	}

	if m.generating {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Generating ticket...\n")
	}

	if onboarding.PendingTicket != "" {
		b.WriteString("\nPending ticket (share it with your peers):\n")
		b.WriteString(fitText(onboarding.PendingTicket, 64))
		b.WriteString("\n")
	}

	return renderPage(
		"PEERFOLD · SYNC GROUP",
		strings.TrimRight(b.String(), "\n"),
		"enter: choose │ ctrl+f: finish setup",
	)
}
