package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"home-pa-scheduler/internal/schedule"
	"home-pa-scheduler/pkg/response"
)

// respondError translates domain errors into HTTP responses. Contract
// violations are the caller's fault; anything else is ours.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrMissingTaskID),
		errors.Is(err, schedule.ErrNegativeMinutes):
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
