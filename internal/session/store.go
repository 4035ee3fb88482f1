// Package session holds the per-session conversation state used by the
// guided interview flow. State is keyed by a caller-supplied session id so
// concurrent sessions never share history; every implementation evicts idle
// sessions after a TTL.
package session

import (
	"context"
	"time"
)

// Role identifies the originator of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single entry in a guided session's append-only history.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is the contract for guided conversation state.
type Store interface {
	// Append adds turns to the session's history and refreshes its TTL.
	Append(ctx context.Context, sessionID string, turns ...Turn) error
	// History returns the session's turns in append order. A missing or
	// expired session yields an empty slice, not an error.
	History(ctx context.Context, sessionID string) ([]Turn, error)
	// Clear removes the session's history so the next call starts fresh.
	Clear(ctx context.Context, sessionID string) error
}
