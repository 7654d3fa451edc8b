// Package tui renders the interactive terminal interface: the onboarding
// wizard and the home dashboard of an active session. All state lives in the
// coordinator; the models here only read it and translate key presses into
// coordinator operations.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/peerfold/peerfold/internal/coordinator"
	"github.com/peerfold/peerfold/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	coord  *coordinator.Coordinator
	logger *logger.Logger
}

func New(coord *coordinator.Coordinator, log *logger.Logger) *TUI {
	return &TUI{coord: coord, logger: log}
}

// Run drives the whole interactive session: onboarding screens while the
// session is unconfigured, then the home dashboard. It blocks until the user
// quits or ctx ends.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.coord)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitting {
		return ErrUserQuit
	}

	return nil
}
