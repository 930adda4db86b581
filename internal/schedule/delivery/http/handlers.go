package http

import (
	"github.com/gin-gonic/gin"

	"home-pa-scheduler/pkg/response"
)

// Generate godoc
// @Summary     Generate a day schedule
// @Description Scores the supplied tasks, selects the most valuable subset, and places it into the supplied free-time gaps.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Tasks, gaps, and optional calendar events"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateSchedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateSchedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// MarkSession godoc
// @Summary     Record a work session
// @Description Applies minutes worked on a task, advancing its progress and routine counters.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body sessionReq true "Task snapshot and minutes worked"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/session [POST]
func (h *handler) MarkSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.MarkSessionComplete(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.MarkSessionComplete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}
