package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "taskboard/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(400, "invalid contact id")

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}
