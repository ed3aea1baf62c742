package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/pkg/response"
)

// Status godoc
// @Summary     Sync status
// @Description Lists operations waiting for replay, the ones the server rejected, and drains the pending notifications.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/sync [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.outbox.Pending(), h.outbox.Failed(), h.outbox.Notifications()))
}

// Retry godoc
// @Summary     Replay pending operations
// @Description Replays queued operations oldest first. Rejected ones are discarded. Stops at the first one that keeps failing.
// @Tags        Sync
// @Produce     json
// @Success     200 {object} sync.RetryResult
// @Failure     409 {object} response.Resp "Retry already running"
// @Router      /api/v1/sync/retry [POST]
func (h *handler) Retry(c *gin.Context) {
	ctx := c.Request.Context()

	res, err := h.outbox.Retry(ctx)
	if err != nil {
		h.l.Warnf(ctx, "outbox.Retry: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, res)
}
