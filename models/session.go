package models

// Store keys under which the session configuration is persisted. Renaming
// any of them orphans the values in existing session stores.
const (
	StoreKeySyncFolderPath   = "sync-folder-path"
	StoreKeyGossipTicket     = "gossip-ticket"
	StoreKeyAutoSync         = "auto-sync-enabled"
	StoreKeyClipboardSharing = "clipboard-sharing-enabled"
)

// SessionConfig is the durable part of a sync session: which folder is
// synchronized, the credential of the sync group it belongs to, and the
// user-facing toggles. A zero value means "never configured".
type SessionConfig struct {
	// SyncFolderPath is the absolute path of the directory under
	// synchronization. Empty until onboarding binds a folder.
	SyncFolderPath string `json:"sync_folder_path"`

	// GossipTicket is the opaque group-membership credential. It is only
	// meaningful once SyncFolderPath is set and is never persisted before it.
	GossipTicket string `json:"gossip_ticket"`

	// AutoSyncEnabled controls whether detected folder changes are
	// propagated to peers without user confirmation.
	AutoSyncEnabled bool `json:"auto_sync_enabled"`

	// ClipboardSharingEnabled mirrors the engine-side clipboard sharing
	// switch.
	ClipboardSharingEnabled bool `json:"clipboard_sharing_enabled"`
}

// Configured reports whether the config describes a complete session:
// a bound folder plus a group ticket.
func (c SessionConfig) Configured() bool {
	return c.SyncFolderPath != "" && c.GossipTicket != ""
}

// OnboardingStep identifies the active wizard screen.
type OnboardingStep int

const (
	// StepFolderSelection is the first wizard step: pick a local directory.
	StepFolderSelection OnboardingStep = iota + 1

	// StepGossipSetup is the second wizard step: obtain or enter a ticket.
	StepGossipSetup
)

// GossipChoice is the user's decision on where the ticket comes from.
type GossipChoice int

const (
	// ChoiceNone means the user has not picked a ticket source yet.
	ChoiceNone GossipChoice = iota

	// ChoiceGenerate mints a fresh ticket via the engine.
	ChoiceGenerate

	// ChoiceInput uses ticket text the user pasted in.
	ChoiceInput
)

// Onboarding is the transient wizard state. It exists only between the
// start of setup and a successful finish; at that point PendingTicket
// becomes SessionConfig.GossipTicket and the value is discarded.
type Onboarding struct {
	Step          OnboardingStep
	Choice        GossipChoice
	PendingTicket string
}
