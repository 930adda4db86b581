package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds and validates the generate schedule request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSessionReq binds and validates the session completion request body.
func (h *handler) processSessionReq(c *gin.Context) (sessionReq, error) {
	var req sessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
