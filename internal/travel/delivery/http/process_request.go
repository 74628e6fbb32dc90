package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processCreateSessionReq binds the optional seed body. An empty body is
// an empty seed.
func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(c.Request.Context(), "%s: bind: %v", LogPrefixCreateSession, err)
		return req, errWrongBody
	}
	return req, req.validate()
}

// processTurnReq binds the turn body and the URI param.
func (h *handler) processTurnReq(c *gin.Context) (turnReq, error) {
	var req turnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "%s: bind: %v", LogPrefixProcessTurn, err)
		return req, errWrongBody
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
