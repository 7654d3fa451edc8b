package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGossipTicket_EncodeDecodeRoundTrip(t *testing.T) {
	original := GossipTicket{
		Topic: "3f8d1c2e-9a4b-4c6d-8e7f-0a1b2c3d4e5f",
		Nodes: []NodeAddr{{NodeID: "node-1"}, {NodeID: "node-2"}},
	}

	token, err := original.Encode()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := DecodeTicket(token)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestGossipTicket_EncodeIsLowercaseWithoutPadding(t *testing.T) {
	ticket := GossipTicket{Topic: "topic-1", Nodes: []NodeAddr{{NodeID: "n"}}}

	token, err := ticket.Encode()
	require.NoError(t, err)

	assert.Equal(t, strings.ToLower(token), token, "token should be lowercase")
	assert.NotContains(t, token, "=", "token should carry no padding")
}

func TestDecodeTicket_AcceptsUppercaseAndWhitespace(t *testing.T) {
	ticket := GossipTicket{Topic: "topic-1", Nodes: []NodeAddr{{NodeID: "n"}}}

	token, err := ticket.Encode()
	require.NoError(t, err)

	decoded, err := DecodeTicket("  " + strings.ToUpper(token) + "\n")
	require.NoError(t, err)
	assert.Equal(t, ticket, decoded)
}

func TestDecodeTicket_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "whitespace only", token: "   "},
		{name: "not base32", token: "!!!not-base32!!!"},
		{name: "base32 of non-JSON", token: "mzxw6ytboi"}, // "fooba r"-ish bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTicket(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTicket), "expected ErrInvalidTicket, got: %v", err)
		})
	}
}

func TestDecodeTicket_MissingTopic(t *testing.T) {
	ticket := GossipTicket{Nodes: []NodeAddr{{NodeID: "n"}}}

	token, err := ticket.Encode()
	require.NoError(t, err)

	_, err = DecodeTicket(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTicket))
}
