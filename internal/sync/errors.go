package sync

import "errors"

var (
	ErrRetryInProgress = errors.New("sync retry already in progress")
	ErrUnknownKind     = errors.New("unknown sync operation kind")
	ErrQueuedBehind    = errors.New("an earlier change to this record is still pending")
)
