package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
	"travel-planner/pkg/textutil"
)

// CreateSession godoc
// @Summary     Start a conversation
// @Description Creates a session, optionally seeded with preferences and an existing plan.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       body body createSessionReq false "Seed data"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.CreateSession: %v", LogPrefixCreateSession, err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(state))
}

// GetSession godoc
// @Summary     Get session state
// @Description Returns the slots, current node, plan and calendar step of a session.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, err := h.uc.GetSession(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "%s: uc.GetSession: %v", LogPrefixGetSession, err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(state))
}

// EndSession godoc
// @Summary     End a conversation
// @Description Discards the session and its history.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.EndSession(ctx, id); err != nil {
		h.l.Warnf(ctx, "%s: uc.EndSession: %v", LogPrefixEndSession, err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// ProcessTurn godoc
// @Summary     Send a user message
// @Description Runs one dialogue turn. With "Accept: text/event-stream" the reply is streamed as
// @Description status, chunk, plan and done events.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Produce     text/event-stream
// @Param       id   path string  true "Session ID"
// @Param       body body turnReq true "User message"
// @Success     200  {object} turnResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/turns [POST]
func (h *handler) ProcessTurn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTurnReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if strings.Contains(c.GetHeader("Accept"), mimeEventStream) {
		h.streamTurn(c, req)
		return
	}

	out, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.ProcessTurn: %v", LogPrefixProcessTurn, err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTurnResp(out))
}

// streamTurn announces processing, runs the turn and then replays the reply
// in rune chunks. Errors after the headers are sent become an error event.
func (h *handler) streamTurn(c *gin.Context, req turnReq) {
	ctx := c.Request.Context()

	c.Header("Content-Type", mimeEventStream)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent(eventStatus, statusEvent{Status: statusProcessing, SessionID: req.SessionID})
	c.Writer.Flush()

	out, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.ProcessTurn: %v", LogPrefixProcessTurn, err)
		msg := response.DefaultErrorMessage
		if httpErr := h.mapError(err); httpErr != nil {
			msg = httpErr.Message
		}
		c.SSEvent(eventError, errorEvent{Message: msg})
		c.Writer.Flush()
		return
	}

	for _, chunk := range textutil.Chunks(out.Reply, h.chunkSize) {
		if ctx.Err() != nil {
			h.l.Warnf(ctx, "%s: client went away: %v", LogPrefixProcessTurn, ctx.Err())
			return
		}
		c.SSEvent(eventChunk, chunkEvent{Text: chunk})
		c.Writer.Flush()
	}

	if out.HasPlan {
		c.SSEvent(eventPlan, planEvent{HasPlan: true, Plan: newPlanResp(out.Plan)})
	}
	c.SSEvent(eventDone, doneEvent{SessionID: out.SessionID, Node: string(out.Node), Violation: out.Violation})
	c.Writer.Flush()
}

func (h *handler) respondError(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr, nil)
		return
	}
	response.InternalError(c, err)
}
