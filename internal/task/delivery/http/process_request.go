package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "taskboard/pkg/errors"
)

var (
	errInvalidID    = pkgErrors.NewHTTPError(400, "invalid task id")
	errInvalidIndex = pkgErrors.NewHTTPError(400, "invalid subtask index")
)

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processIndex(c *gin.Context) (int, error) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return 0, errInvalidIndex
	}
	return idx, nil
}

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update request body + URI param.
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

func (h *handler) processMoveReq(c *gin.Context) (int64, moveReq, error) {
	var req moveReq
	id, err := h.processID(c)
	if err != nil {
		return 0, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return 0, req, err
	}
	return id, req, nil
}

func (h *handler) processSubtaskReq(c *gin.Context, withIndex, withBody bool) (int64, int, subtaskTitleReq, error) {
	var req subtaskTitleReq
	id, err := h.processID(c)
	if err != nil {
		return 0, 0, req, err
	}
	idx := 0
	if withIndex {
		if idx, err = h.processIndex(c); err != nil {
			return 0, 0, req, err
		}
	}
	if withBody {
		if err := c.ShouldBindJSON(&req); err != nil {
			return 0, 0, req, err
		}
	}
	return id, idx, req, nil
}
