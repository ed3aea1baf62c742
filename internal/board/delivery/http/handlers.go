package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/board"
	"taskboard/internal/model"
	"taskboard/pkg/response"
)

// Board godoc
// @Summary     Board view
// @Description Tasks grouped into the four bucket columns, optionally filtered by a search term on title or description.
// @Tags        Board
// @Produce     json
// @Param       search query string false "Search term"
// @Success     200 {object} boardResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()

	var req boardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	layout := board.View(h.tasks.List(ctx), req.Search)
	response.OK(c, newBoardResp(layout, h.contacts.List(ctx)))
}

// Summary godoc
// @Summary     Summary page
// @Description Task counts per bucket, urgent tasks and the time-of-day greeting.
// @Tags        Board
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/board/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	greeting := board.Greeting(h.now().In(h.loc).Hour())
	response.OK(c, newSummaryResp(board.Summarize(h.tasks.List(ctx)), greeting, sc.Username))
}
