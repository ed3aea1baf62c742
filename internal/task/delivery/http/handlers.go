package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns every task in insertion order, optionally filtered by bucket.
// @Tags        Tasks
// @Produce     json
// @Param       bucket query string false "to-do, in-progress, await-feedback or done"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.Bucket == "" {
		response.OK(c, h.newListResp(h.uc.List(ctx)))
		return
	}

	bucket := model.Bucket(req.Bucket)
	if !bucket.IsValid() {
		response.Error(c, h.mapError(task.ErrInvalidBucket), nil)
		return
	}
	response.OK(c, h.newListResp(h.uc.ListByBucket(ctx, bucket)))
}

// Create godoc
// @Summary     Create a task
// @Description Validates the task, stores it remotely and adds it to the board.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Remote storage unavailable"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Create(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Omitted fields stay unchanged.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Remote storage unavailable"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Update(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Remote storage unavailable"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, model.GetScopeFromContext(ctx), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Move godoc
// @Summary     Move a task to another bucket
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Task ID"
// @Param       body body moveReq true "Target bucket"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Invalid bucket"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/bucket [PATCH]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processMoveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.MoveBucket(ctx, model.GetScopeFromContext(ctx), id, model.Bucket(req.Bucket))
	if err != nil {
		h.l.Errorf(ctx, "uc.MoveBucket: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// AddSubtask godoc
// @Summary     Add a subtask
// @Tags        Subtasks
// @Accept      json
// @Produce     json
// @Param       id   path int             true "Task ID"
// @Param       body body subtaskTitleReq true "Subtask"
// @Success     200 {object} detailResp
// @Router      /api/v1/tasks/{id}/subtasks [POST]
func (h *handler) AddSubtask(c *gin.Context) {
	h.subtask(c, false, true, "uc.AddSubtask", h.uc.AddSubtask)
}

// UpdateSubtask godoc
// @Summary     Rename a subtask
// @Description Renaming clears the done flag.
// @Tags        Subtasks
// @Accept      json
// @Produce     json
// @Param       id    path int             true "Task ID"
// @Param       index path int             true "Subtask position"
// @Param       body  body subtaskTitleReq true "Subtask"
// @Success     200 {object} detailResp
// @Router      /api/v1/tasks/{id}/subtasks/{index} [PUT]
func (h *handler) UpdateSubtask(c *gin.Context) {
	h.subtask(c, true, true, "uc.UpdateSubtask", h.uc.UpdateSubtask)
}

// ToggleSubtask godoc
// @Summary     Toggle a subtask
// @Tags        Subtasks
// @Produce     json
// @Param       id    path int true "Task ID"
// @Param       index path int true "Subtask position"
// @Success     200 {object} detailResp
// @Router      /api/v1/tasks/{id}/subtasks/{index}/toggle [POST]
func (h *handler) ToggleSubtask(c *gin.Context) {
	h.subtask(c, true, false, "uc.ToggleSubtask", h.uc.ToggleSubtask)
}

// DeleteSubtask godoc
// @Summary     Delete a subtask
// @Tags        Subtasks
// @Produce     json
// @Param       id    path int true "Task ID"
// @Param       index path int true "Subtask position"
// @Success     200 {object} detailResp
// @Router      /api/v1/tasks/{id}/subtasks/{index} [DELETE]
func (h *handler) DeleteSubtask(c *gin.Context) {
	h.subtask(c, true, false, "uc.DeleteSubtask", h.uc.DeleteSubtask)
}

type subtaskFunc func(ctx context.Context, sc model.Scope, input task.SubtaskInput) (model.Task, error)

func (h *handler) subtask(c *gin.Context, withIndex, withBody bool, name string, fn subtaskFunc) {
	ctx := c.Request.Context()

	id, idx, req, err := h.processSubtaskReq(c, withIndex, withBody)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := fn(ctx, model.GetScopeFromContext(ctx), task.SubtaskInput{TaskID: id, Index: idx, Title: req.Title})
	if err != nil {
		h.l.Errorf(ctx, "%s: %v", name, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}
