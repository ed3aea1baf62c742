package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/pkg/response"
)

// List godoc
// @Summary     List contacts
// @Description Contacts sorted by name and grouped by first letter.
// @Tags        Contacts
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/contacts [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, newListResp(h.uc.List(c.Request.Context())))
}

// Create godoc
// @Summary     Create a contact
// @Tags        Contacts
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Contact data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Invalid fields"
// @Failure     502 {object} response.Resp "Remote storage unavailable"
// @Router      /api/v1/contacts [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	ct, err := h.uc.Create(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, detailResp{Contact: newContactResp(ct)})
}

// Detail godoc
// @Summary     Get contact detail
// @Tags        Contacts
// @Produce     json
// @Param       id path int true "Contact ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/contacts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ct, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, detailResp{Contact: newContactResp(ct)})
}

// Update godoc
// @Summary     Update a contact
// @Description Partial update. The own user card also updates the profile.
// @Tags        Contacts
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Contact ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Invalid fields"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/contacts/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ct, err := h.uc.Update(ctx, model.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, detailResp{Contact: newContactResp(ct)})
}

// Delete godoc
// @Summary     Delete a contact
// @Description Deletes the contact and removes it from every task it was assigned to.
// @Tags        Contacts
// @Produce     json
// @Param       id path int true "Contact ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Remote storage unavailable"
// @Router      /api/v1/contacts/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Delete(ctx, model.GetScopeFromContext(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"unassigned_tasks": res.UnassignedTasks})
		return
	}

	response.OK(c, deleteResp{UnassignedTasks: res.UnassignedTasks})
}
