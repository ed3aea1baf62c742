package sync

import (
	"encoding/json"
	"time"
)

// Kind is the remote operation that failed.
type Kind string

const (
	KindCreate Kind = "create"
	KindUpdate Kind = "update"
	KindPatch  Kind = "patch"
	KindDelete Kind = "delete"
)

// Op is a remote mutation that failed and waits for replay.
type Op struct {
	ID          string          `json:"id"`
	Collection  string          `json:"collection"`
	Kind        Kind            `json:"kind"`
	Method      string          `json:"method"`
	Path        string          `json:"path"`
	RecordID    int64           `json:"record_id,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Error       string          `json:"error"`
	Attempts    int             `json:"attempts"`
	CreatedAt   time.Time       `json:"created_at"`
	LastTriedAt time.Time       `json:"last_tried_at"`
}

// RecordInput describes a failed operation to store.
type RecordInput struct {
	Collection string
	Kind       Kind
	RecordID   int64
	Payload    any
	Err        error
}

// Notification is a transient user-facing message about a failed sync.
type Notification struct {
	OpID    string    `json:"op_id"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// RetryResult summarizes one replay pass.
type RetryResult struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Rejected  int `json:"rejected"`
	Remaining int `json:"remaining"`
}

// Config controls the replay backoff.
type Config struct {
	MaxAttempts int
	Backoff     time.Duration
}
