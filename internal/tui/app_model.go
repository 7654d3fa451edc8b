package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/peerfold/peerfold/internal/coordinator"
)

type screen int

const (
	screenFolderSelect screen = iota
	screenGossipSetup
	screenHome
	screenStoreError
)

const maxVisibleNotifications = 3

type appModel struct {
	ctx           context.Context
	coord         *coordinator.Coordinator
	currentScreen screen

	folderSelect folderSelectModel
	gossipSetup  gossipSetupModel
	home         homeModel

	notifications []coordinator.Notification
	quitting      bool
}

func newAppModel(ctx context.Context, coord *coordinator.Coordinator) appModel {
	m := appModel{
		ctx:          ctx,
		coord:        coord,
		folderSelect: newFolderSelectModel(),
		gossipSetup:  newGossipSetupModel(),
		home:         newHomeModel(),
	}

	switch coord.State() {
	case coordinator.StateActive:
		m.currentScreen = screenHome
	case coordinator.StateStoreFailed:
		m.currentScreen = screenStoreError
	default:
		m.currentScreen = screenFolderSelect
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdWaitNotification(), cmdPoll())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationMsg:
		m.notifications = append(m.notifications, msg.notification)
		if len(m.notifications) > maxVisibleNotifications {
			m.notifications = m.notifications[len(m.notifications)-maxVisibleNotifications:]
		}
		return m, m.cmdWaitNotification()

	case pollMsg:
		// background changes (fs events, ready signal) surface through the
		// coordinator's version; re-rendering on the tick is enough
		return m, cmdPoll()

	case folderSelectedMsg:
		m.folderSelect.submitting = false
		return m, nil

	case continuedMsg:
		if msg.err == nil {
			m.currentScreen = screenGossipSetup
			return m, m.gossipSetup.spinner.Tick
		}
		return m, nil

	case ticketGeneratedMsg:
		m.gossipSetup.generating = false
		return m, nil

	case setupFinishedMsg:
		if msg.err == nil {
			m.currentScreen = screenHome
		}
		return m, nil

	case toggledMsg:
		return m, nil

	case snapshotRefreshedMsg:
		m.home.refreshing = false
		return m, nil

	case nodeStatusMsg:
		if msg.err == nil {
			m.home.status = msg.status
			m.home.showStatus = true
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenFolderSelect:
		return m.updateFolderSelect(msg)
	case screenGossipSetup:
		return m.updateGossipSetup(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenStoreError:
		return m.updateStoreError(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string

	switch m.currentScreen {
	case screenFolderSelect:
		body = m.folderSelect.view(m.coord.Config().SyncFolderPath)
	case screenGossipSetup:
		body = m.gossipSetup.view(m.coord.OnboardingView())
	case screenHome:
		body = m.home.view(m.coord.Config(), m.coord.Snapshot())
	case screenStoreError:
		body = renderPage(
			"PEERFOLD · STORAGE ERROR",
			errorStyle.Render("Session storage is unavailable.")+"\nFix the database file and restart the application.",
			"q: quit",
		)
	}

	if len(m.notifications) > 0 {
		var b strings.Builder
		for _, n := range m.notifications {
			style := noticeStyle
			if n.Level == coordinator.LevelError {
				style = errorStyle
			}
			b.WriteString("\n")
			b.WriteString(style.Render("• " + n.Message))
		}
		body += "\n" + b.String()
	}

	return appStyle.Render(body)
}

func (m appModel) updateFolderSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.folderSelect.submitting {
				return m, nil
			}
			path := strings.TrimSpace(m.folderSelect.input.Value())
			if path == "" {
				return m, nil
			}
			m.folderSelect.submitting = true
			return m, m.cmdSelectFolder(path)
		case key.Matches(keyMsg, keys.next):
			return m, m.cmdContinueToGossip()
		}
	}

	var cmd tea.Cmd
	m.folderSelect.input, cmd = m.folderSelect.input.Update(msg)
	return m, cmd
}

func (m appModel) updateGossipSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok && m.gossipSetup.generating {
		var cmd tea.Cmd
		m.gossipSetup.spinner, cmd = m.gossipSetup.spinner.Update(tick)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.finish):
			if m.gossipSetup.typing {
				m.coord.SetTicketInput(m.gossipSetup.input.Value())
			}
			return m, m.cmdFinishSetup()
		}

		if m.gossipSetup.typing {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.gossipSetup.typing = false
				m.gossipSetup.input.Blur()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				m.coord.SetTicketInput(m.gossipSetup.input.Value())
				return m, nil
			}

			var cmd tea.Cmd
			m.gossipSetup.input, cmd = m.gossipSetup.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(keyMsg, keys.up):
			if m.gossipSetup.idx > 0 {
				m.gossipSetup.idx--
			}
		case key.Matches(keyMsg, keys.down):
			if m.gossipSetup.idx < 1 {
				m.gossipSetup.idx++
			}
		case key.Matches(keyMsg, keys.enter):
			if m.gossipSetup.idx == 0 {
				if m.gossipSetup.generating {
					return m, nil
				}
				m.gossipSetup.generating = true
				return m, tea.Batch(m.gossipSetup.spinner.Tick, m.cmdChooseGenerate())
			}
			m.gossipSetup.typing = true
			m.gossipSetup.input.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.autoSync):
			return m, m.cmdToggleAutoSync()
		case key.Matches(msg, keys.clipboard):
			return m, m.cmdToggleClipboardSharing()
		case key.Matches(msg, keys.refresh):
			if m.home.refreshing {
				return m, nil
			}
			m.home.refreshing = true
			return m, tea.Batch(m.home.spinner.Tick, m.cmdRefreshSnapshot())
		case key.Matches(msg, keys.status):
			if m.home.showStatus {
				m.home.showStatus = false
				return m, nil
			}
			return m, m.cmdNodeStatus()
		}
	case spinner.TickMsg:
		if m.home.refreshing {
			var cmd tea.Cmd
			m.home.spinner, cmd = m.home.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateStoreError(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && key.Matches(keyMsg, keys.quit) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func cmdPoll() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func (m appModel) cmdWaitNotification() tea.Cmd {
	notifications := m.coord.Notifications()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case n := <-notifications:
			return notificationMsg{notification: n}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m appModel) cmdSelectFolder(path string) tea.Cmd {
	ctx := m.ctx
	coord := m.coord
	return func() tea.Msg {
		return folderSelectedMsg{err: coord.SelectFolder(ctx, path)}
	}
}

func (m appModel) cmdContinueToGossip() tea.Cmd {
	ctx := m.ctx
	coord := m.coord
	return func() tea.Msg {
		return continuedMsg{err: coord.ContinueToGossip(ctx)}
	}
}

func (m appModel) cmdChooseGenerate() tea.Cmd {
	ctx := m.ctx
	coord := m.coord
	return func() tea.Msg {
		return ticketGeneratedMsg{err: coord.ChooseGenerate(ctx)}
	}
}

func (m appModel) cmdFinishSetup() tea.Cmd {
	ctx := m.ctx
	coord := m.coord
	return func() tea.Msg {
		return setupFinishedMsg{err: coord.FinishSetup(ctx)}
	}
}

func (m appModel) cmdToggleAutoSync() tea.Cmd {
	ctx := m.ctx
	coord := m.coord
	return func() tea.Msg {
		return toggledMsg{err: coord.ToggleAutoSync(ctx)}
	}
}

func (m appModel) cmdToggleClipboardSharing() tea.Cmd {
	ctx := m.ctx
	coord := m.coord
	return func() tea.Msg {
		return toggledMsg{err: coord.ToggleClipboardSharing(ctx)}
	}
}

func (m appModel) cmdRefreshSnapshot() tea.Cmd {
	ctx := m.ctx
	coord := m.coord
	return func() tea.Msg {
		return snapshotRefreshedMsg{err: coord.RefreshSnapshot(ctx)}
	}
}

func (m appModel) cmdNodeStatus() tea.Cmd {
	ctx := m.ctx
	coord := m.coord
	return func() tea.Msg {
		status, err := coord.NodeStatus(ctx)
		return nodeStatusMsg{status: status, err: err}
	}
}
