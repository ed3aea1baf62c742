package sync

import (
	"context"
	"encoding/json"
)

// Recorder stores failed remote operations. Stores depend on this narrow view.
type Recorder interface {
	Record(ctx context.Context, in RecordInput) (Op, error)
	// HasPending reports whether an op for the record waits for replay.
	HasPending(collection string, recordID int64) bool
}

// Outbox holds failed remote operations and replays them.
type Outbox interface {
	Recorder
	// Pending returns the queued operations in FIFO order.
	Pending() []Op
	// Failed returns the operations the remote rejected during replay.
	Failed() []Op
	// Purge drops all pending and failed operations and returns how many
	// were pending.
	Purge(ctx context.Context) int
	// Notifications returns and clears the queued notifications.
	Notifications() []Notification
	// Retry replays pending operations in FIFO order.
	Retry(ctx context.Context) (RetryResult, error)
	// RegisterApplier sets the in-memory updater for a collection.
	RegisterApplier(collection string, a Applier)
}

// Applier brings the in-memory store in line once a replayed op succeeds.
// resp is the raw server response body, empty for deletes.
type Applier interface {
	ApplySynced(ctx context.Context, op Op, resp json.RawMessage) error
}

// Doer issues a raw remote request. *remote.Client implements it.
type Doer interface {
	Do(ctx context.Context, method, collection, path string, data, out any) error
}

// Gauge receives the pending count. prometheus.Gauge implements it.
type Gauge interface {
	Set(float64)
}
