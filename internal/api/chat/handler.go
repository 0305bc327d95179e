package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kisanmitra/kisanmitra/internal/chat"
	"github.com/kisanmitra/kisanmitra/internal/domain"
	"github.com/kisanmitra/kisanmitra/internal/i18n"
	"github.com/kisanmitra/kisanmitra/internal/speech"
)

// Handler handles chat session API requests
type Handler struct {
	manager *chat.Manager
}

// NewHandler creates a new chat handler
func NewHandler(manager *chat.Manager) *Handler {
	return &Handler{manager: manager}
}

// RegisterRoutes registers chat routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions/:session_id", h.GetSession)
	r.DELETE("/sessions/:session_id", h.DeleteSession)
	r.POST("/sessions/:session_id/stream", h.Stream)
	r.GET("/sessions/:session_id/input", h.GetInput)
	r.PUT("/sessions/:session_id/input", h.SetInput)
	r.DELETE("/sessions/:session_id/input", h.ClearInput)
	r.POST("/sessions/:session_id/input/transcript", h.AppendTranscript)
	r.GET("/sessions/:session_id/voice", h.GetVoice)
	r.POST("/sessions/:session_id/voice/toggle", h.ToggleVoice)
}

// CreateSession starts a new session; one session spans one view lifetime
func (h *Handler) CreateSession(c *gin.Context) {
	sess := h.manager.Create()
	c.JSON(http.StatusOK, domain.SessionResponse{SessionID: sess.ID})
}

// GetSession returns the conversation snapshot for a session
func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.manager.Get(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	turns := sess.Engine.Conversation()
	c.JSON(http.StatusOK, domain.SessionResponse{
		SessionID: sess.ID,
		TurnCount: len(turns),
		InFlight:  sess.Engine.InFlight(),
		Turns:     turns,
	})
}

// DeleteSession tears a session down
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.manager.Delete(c.Param("session_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}

// Stream submits a user turn and streams model-turn updates over SSE.
// Rejected submissions (empty, or a turn already in flight) are silent
// no-ops: the stream ends immediately with only a done event.
func (h *Handler) Stream(c *gin.Context) {
	sess, err := h.manager.Get(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req domain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A submission without its own message drains the composed input
	// buffer, picking up typed text and any transcripts that queued while
	// a previous turn was streaming.
	if strings.TrimSpace(req.Message) == "" {
		req.Message = sess.Composer.Take()
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// The backend call outlives the HTTP request on purpose: teardown is
	// the session delete, not a dropped SSE connection.
	updates, err := sess.Engine.SubmitTurn(context.WithoutCancel(c.Request.Context()), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySubmission) || errors.Is(err, domain.ErrTurnInFlight) {
			writeSSE(c.Writer, "done", "{}")
			return
		}
		writeSSE(c.Writer, "error", err.Error())
		return
	}

	c.Stream(func(w io.Writer) bool {
		update, ok := <-updates
		if !ok {
			writeSSE(w, "done", "{}")
			return false
		}
		data, _ := json.Marshal(update)
		fmt.Fprintf(w, "event: turn\ndata: %s\n\n", data)
		return true
	})
}

// GetInput returns the composed input buffer
func (h *Handler) GetInput(c *gin.Context) {
	sess, err := h.manager.Get(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": sess.Composer.Text()})
}

// SetInput replaces the composed input buffer with the client's typed text
func (h *Handler) SetInput(c *gin.Context) {
	sess, err := h.manager.Get(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.Composer.Set(req.Text)
	c.JSON(http.StatusOK, gin.H{"text": sess.Composer.Text()})
}

// ClearInput discards the composed input buffer
func (h *Handler) ClearInput(c *gin.Context) {
	sess, err := h.manager.Get(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	sess.Composer.Clear()
	c.JSON(http.StatusOK, gin.H{"text": ""})
}

// AppendTranscript appends a finalized transcript to the input buffer
func (h *Handler) AppendTranscript(c *gin.Context) {
	sess, err := h.manager.Get(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req struct {
		Transcript string `json:"transcript" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.Composer.AppendTranscript(req.Transcript)
	c.JSON(http.StatusOK, gin.H{"text": sess.Composer.Text()})
}

// GetVoice reports the capture capability and state for a session
func (h *Handler) GetVoice(c *gin.Context) {
	sess, err := h.manager.Get(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, h.voiceState(sess, c.Query("lang")))
}

// ToggleVoice starts or stops voice capture for a session
func (h *Handler) ToggleVoice(c *gin.Context) {
	sess, err := h.manager.Get(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !sess.Capture.Supported() {
		c.JSON(http.StatusOK, h.voiceState(sess, req.Language))
		return
	}
	if err := sess.Capture.Toggle(req.Language); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.voiceState(sess, req.Language))
}

// voiceState maps the capture state to user-facing fields, localizing the
// error message per the session's language
func (h *Handler) voiceState(sess *chat.Session, languageCode string) gin.H {
	state := gin.H{
		"supported": sess.Capture.Supported(),
		"listening": sess.Capture.Listening(),
	}

	if code, ok := sess.Capture.Err(); ok {
		strings := i18n.Lookup(languageCode).Chat
		msg := strings.MicError
		if code == speech.ErrorNetwork {
			msg = strings.MicErrorNetwork
		}
		state["error_code"] = string(code)
		state["error_message"] = msg
	}
	return state
}

func writeSSE(w io.Writer, eventType, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, data)
}
