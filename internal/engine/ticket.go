package engine

import (
	"encoding/base32"
	"encoding/json"
	"fmt"
	"strings"
)

// NodeAddr identifies one reachable member of a sync group.
type NodeAddr struct {
	NodeID string `json:"node_id"`
}

// GossipTicket is the decoded form of a shareable group credential: the group
// topic plus the addresses of nodes already in the group. Its wire form is
// lowercase unpadded base32 over the JSON encoding, so tickets survive being
// pasted into chats and terminals without case or padding damage.
type GossipTicket struct {
	Topic string     `json:"topic"`
	Nodes []NodeAddr `json:"nodes"`
}

var ticketEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Encode serialises the ticket into its opaque wire form.
func (t GossipTicket) Encode() (string, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("failed to encode gossip ticket: %w", err)
	}

	return strings.ToLower(ticketEncoding.EncodeToString(raw)), nil
}

// DecodeTicket parses an opaque ticket string back into a [GossipTicket].
// Leading and trailing whitespace is tolerated; the token itself is
// case-insensitive.
func DecodeTicket(token string) (GossipTicket, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return GossipTicket{}, fmt.Errorf("%w: empty token", ErrInvalidTicket)
	}

	raw, err := ticketEncoding.DecodeString(strings.ToUpper(token))
	if err != nil {
		return GossipTicket{}, fmt.Errorf("%w: %w", ErrInvalidTicket, err)
	}

	var ticket GossipTicket
	if err := json.Unmarshal(raw, &ticket); err != nil {
		return GossipTicket{}, fmt.Errorf("%w: %w", ErrInvalidTicket, err)
	}

	if ticket.Topic == "" {
		return GossipTicket{}, fmt.Errorf("%w: missing topic", ErrInvalidTicket)
	}

	return ticket, nil
}
