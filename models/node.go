package models

// NodeStatus is a diagnostic snapshot of the local engine node.
type NodeStatus struct {
	// NodeID identifies this device inside the sync group.
	NodeID string `json:"node_id"`

	// Topic is the identifier of the joined gossip topic, empty before a
	// group has been joined.
	Topic string `json:"topic"`

	// Joined reports whether the node is a member of a gossip group.
	Joined bool `json:"joined"`

	// WatchedFolder is the folder the engine currently watches, empty
	// before a folder has been bound.
	WatchedFolder string `json:"watched_folder"`
}
