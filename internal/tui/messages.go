package tui

import (
	"github.com/peerfold/peerfold/internal/coordinator"
	"github.com/peerfold/peerfold/models"
)

type folderSelectedMsg struct {
	err error
}

type continuedMsg struct {
	err error
}

type ticketGeneratedMsg struct {
	err error
}

type setupFinishedMsg struct {
	err error
}

type toggledMsg struct {
	err error
}

type snapshotRefreshedMsg struct {
	err error
}

type nodeStatusMsg struct {
	status models.NodeStatus
	err    error
}

type notificationMsg struct {
	notification coordinator.Notification
}

type pollMsg struct{}
