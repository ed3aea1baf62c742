package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Authenticates against the remote API and stores the session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Email or password is not valid"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.manager.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.l.Warnf(ctx, "manager.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(s, h.manager.Guard("").Redirect))
}

// Register godoc
// @Summary     Sign up
// @Description Registers a new user and starts their session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Registration form"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Registration failed"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.manager.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "manager.Register: %v", err)
		response.Error(c, h.mapRegisterError(err), nil)
		return
	}

	response.OK(c, newSessionResp(s, h.manager.Guard("").Redirect))
}

// Guest godoc
// @Summary     Guest log in
// @Description Starts the shared guest session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/auth/guest [POST]
func (h *handler) Guest(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.manager.Guest(ctx)
	if err != nil {
		h.l.Errorf(ctx, "manager.Guest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(s, h.manager.Guard("").Redirect))
}

// Logout godoc
// @Summary     Log out
// @Description Clears all persisted session state.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.manager.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "manager.Logout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(h.manager.Current(), h.manager.Guard("").Redirect))
}

// Current godoc
// @Summary     Current session
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/auth/session [GET]
func (h *handler) Current(c *gin.Context) {
	response.OK(c, newSessionResp(h.manager.Current(), ""))
}

// Guard godoc
// @Summary     Page guard
// @Description Tells the front end whether a page may be shown or where to redirect.
// @Tags        Auth
// @Produce     json
// @Param       page query string false "Page name, e.g. board.html"
// @Success     200 {object} session.GuardResult
// @Router      /api/v1/auth/guard [GET]
func (h *handler) Guard(c *gin.Context) {
	var req guardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	response.OK(c, h.manager.Guard(req.Page))
}
