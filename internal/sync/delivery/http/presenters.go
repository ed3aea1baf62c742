package http

import (
	"taskboard/internal/sync"
	"taskboard/pkg/response"
)

type opResp struct {
	ID          string             `json:"id"`
	Collection  string             `json:"collection"`
	Kind        sync.Kind          `json:"kind"`
	RecordID    int64              `json:"record_id,omitempty"`
	Error       string             `json:"error"`
	Attempts    int                `json:"attempts"`
	CreatedAt   response.DateTime  `json:"created_at"`
	LastTriedAt *response.DateTime `json:"last_tried_at,omitempty"`
}

type notificationResp struct {
	OpID    string            `json:"op_id"`
	Message string            `json:"message"`
	At      response.DateTime `json:"at"`
}

type statusResp struct {
	Pending       []opResp           `json:"pending"`
	Failed        []opResp           `json:"failed"`
	Notifications []notificationResp `json:"notifications"`
}

func newOpResp(op sync.Op) opResp {
	o := opResp{
		ID:         op.ID,
		Collection: op.Collection,
		Kind:       op.Kind,
		RecordID:   op.RecordID,
		Error:      op.Error,
		Attempts:   op.Attempts,
		CreatedAt:  response.DateTime(op.CreatedAt),
	}
	if !op.LastTriedAt.IsZero() {
		t := response.DateTime(op.LastTriedAt)
		o.LastTriedAt = &t
	}
	return o
}

func newStatusResp(pending, failed []sync.Op, notifications []sync.Notification) statusResp {
	resp := statusResp{
		Pending:       make([]opResp, 0, len(pending)),
		Failed:        make([]opResp, 0, len(failed)),
		Notifications: make([]notificationResp, 0, len(notifications)),
	}
	for _, op := range pending {
		resp.Pending = append(resp.Pending, newOpResp(op))
	}
	for _, op := range failed {
		resp.Failed = append(resp.Failed, newOpResp(op))
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, notificationResp{
			OpID:    n.OpID,
			Message: n.Message,
			At:      response.DateTime(n.At),
		})
	}
	return resp
}
