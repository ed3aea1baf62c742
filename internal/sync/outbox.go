package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"taskboard/pkg/remote"
)

// Record queues a failed operation and a notification for it.
func (o *implOutbox) Record(ctx context.Context, in RecordInput) (Op, error) {
	method, path, err := route(in.Kind, in.Collection, in.RecordID)
	if err != nil {
		o.l.Errorf(ctx, "sync.Record route: %v", err)
		return Op{}, err
	}

	var payload json.RawMessage
	if in.Payload != nil {
		payload, err = json.Marshal(in.Payload)
		if err != nil {
			o.l.Errorf(ctx, "sync.Record json.Marshal: %v", err)
			return Op{}, fmt.Errorf("failed to encode payload: %w", err)
		}
	}

	now := o.now()
	op := Op{
		ID:          uuid.NewString(),
		Collection:  in.Collection,
		Kind:        in.Kind,
		Method:      method,
		Path:        path,
		RecordID:    in.RecordID,
		Payload:     payload,
		Attempts:    1,
		CreatedAt:   now,
		LastTriedAt: now,
	}
	if in.Err != nil {
		op.Error = in.Err.Error()
	}

	o.mu.Lock()
	o.pending = append(o.pending, op)
	o.notifications = append(o.notifications, Notification{
		OpID:    op.ID,
		Message: fmt.Sprintf("Could not save %s change (%s). It will be retried.", in.Collection, in.Kind),
		At:      now,
	})
	o.reportLocked()
	o.mu.Unlock()

	o.l.Warnf(ctx, "sync.Record: queued %s %s record=%d: %s", op.Kind, op.Collection, op.RecordID, op.Error)
	return op, nil
}

func (o *implOutbox) Pending() []Op {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Op, len(o.pending))
	copy(out, o.pending)
	return out
}

func (o *implOutbox) Failed() []Op {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Op, len(o.failed))
	copy(out, o.failed)
	return out
}

// HasPending reports whether an op for the record still waits for replay.
// Creates carry no record id and never match.
func (o *implOutbox) HasPending(collection string, recordID int64) bool {
	if recordID == 0 {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, op := range o.pending {
		if op.Collection == collection && op.RecordID == recordID {
			return true
		}
	}
	return false
}

// Purge drops every pending and failed op along with the notifications.
func (o *implOutbox) Purge(ctx context.Context) int {
	o.mu.Lock()
	n := len(o.pending)
	o.pending = nil
	o.failed = nil
	o.notifications = nil
	o.reportLocked()
	o.mu.Unlock()

	if n > 0 {
		o.l.Warnf(ctx, "sync.Purge: dropped %d pending ops", n)
	}
	return n
}

func (o *implOutbox) Notifications() []Notification {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := o.notifications
	o.notifications = nil
	return out
}

func route(kind Kind, collection string, id int64) (string, string, error) {
	switch kind {
	case KindCreate:
		return http.MethodPost, remote.CollectionPath(collection), nil
	case KindUpdate:
		return http.MethodPut, remote.RecordPath(collection, id), nil
	case KindPatch:
		return http.MethodPatch, remote.RecordPath(collection, id), nil
	case KindDelete:
		return http.MethodDelete, remote.RecordPath(collection, id), nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
