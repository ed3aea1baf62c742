package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"taskboard/pkg/remote"
)

// Retry replays pending ops oldest first. Each op gets up to MaxAttempts tries
// with doubling backoff. An op the remote rejects outright is moved to the
// failed list and the pass goes on. The pass stops at the first op that keeps
// failing with a retryable error so later ops never overtake an earlier one.
func (o *implOutbox) Retry(ctx context.Context) (RetryResult, error) {
	o.mu.Lock()
	if o.retrying {
		o.mu.Unlock()
		return RetryResult{}, ErrRetryInProgress
	}
	o.retrying = true
	queue := make([]Op, len(o.pending))
	copy(queue, o.pending)
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.retrying = false
		o.mu.Unlock()
	}()

	var result RetryResult
	for _, op := range queue {
		// Purged by a logout while the pass was running.
		if !o.isPending(op.ID) {
			continue
		}

		resp, err := o.replay(ctx, op)
		if err != nil {
			if ctx.Err() == nil && !remote.IsRetryable(err) {
				result.Rejected++
				o.reject(op, err)
				o.l.Errorf(ctx, "sync.Retry rejected %s %s: %v", op.Method, op.Path, err)
				continue
			}
			result.Failed++
			o.markFailed(op.ID, err)
			o.l.Errorf(ctx, "sync.Retry replay %s %s: %v", op.Method, op.Path, err)
			break
		}

		if !o.remove(op.ID) {
			continue
		}
		result.Succeeded++

		if a := o.applier(op.Collection); a != nil {
			if err := a.ApplySynced(ctx, op, resp); err != nil {
				o.l.Errorf(ctx, "sync.Retry ApplySynced %s: %v", op.Collection, err)
			}
		}
	}

	result.Remaining = len(o.Pending())
	return result, ctx.Err()
}

// replay sends op until it succeeds, the remote rejects it or the attempts run
// out. A delete of a record the remote no longer has counts as done.
func (o *implOutbox) replay(ctx context.Context, op Op) (json.RawMessage, error) {
	backoff := o.cfg.Backoff
	var lastErr error

	for i := 0; i < o.cfg.MaxAttempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-o.sleep(backoff):
			}
			backoff *= 2
		}

		var data any
		if len(op.Payload) > 0 {
			data = op.Payload
		}

		var resp json.RawMessage
		err := o.remote.Do(ctx, op.Method, op.Collection, op.Path, data, &resp)
		o.touch(op.ID)
		if err == nil {
			return resp, nil
		}
		if op.Kind == KindDelete && remote.IsNotFound(err) {
			o.l.Warnf(ctx, "sync.replay: %s %s already gone", op.Method, op.Path)
			return nil, nil
		}
		lastErr = err
		if ctx.Err() != nil || !remote.IsRetryable(err) {
			return nil, err
		}
		o.l.Warnf(ctx, "sync.replay: %s %s failed (retry %d/%d): %v", op.Method, op.Path, i+1, o.cfg.MaxAttempts, err)
	}
	return nil, lastErr
}

func (o *implOutbox) applier(collection string) Applier {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.appliers[collection]
}

func (o *implOutbox) isPending(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.indexLocked(id) >= 0
}

func (o *implOutbox) touch(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if i := o.indexLocked(id); i >= 0 {
		o.pending[i].Attempts++
		o.pending[i].LastTriedAt = o.now()
	}
}

func (o *implOutbox) markFailed(id string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if i := o.indexLocked(id); i >= 0 {
		o.pending[i].Error = err.Error()
	}
}

// reject moves op out of the queue into the failed list.
func (o *implOutbox) reject(op Op, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	i := o.indexLocked(op.ID)
	if i < 0 {
		return
	}
	failed := o.pending[i]
	failed.Error = err.Error()
	o.pending = append(o.pending[:i], o.pending[i+1:]...)
	o.failed = append(o.failed, failed)
	o.notifications = append(o.notifications, Notification{
		OpID:    failed.ID,
		Message: fmt.Sprintf("The server rejected the %s change (%s). It was discarded.", failed.Collection, failed.Kind),
		At:      o.now(),
	})
	o.reportLocked()
}

func (o *implOutbox) remove(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	i := o.indexLocked(id)
	if i < 0 {
		return false
	}
	o.pending = append(o.pending[:i], o.pending[i+1:]...)
	o.reportLocked()
	return true
}

// indexLocked must be called with mu held.
func (o *implOutbox) indexLocked(id string) int {
	for i := range o.pending {
		if o.pending[i].ID == id {
			return i
		}
	}
	return -1
}
