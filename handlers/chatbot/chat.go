package chatbot

import (
	"errors"
	"net/http"
	"time"

	"github.com/axelse03-gif/reybanpac/chat"
	"github.com/axelse03-gif/reybanpac/models"
	"github.com/axelse03-gif/reybanpac/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	Sessions *chat.Sessions
	Secret   []byte
	TTL      time.Duration
	Logger   *zap.Logger
}

func snapshot(conv *chat.Conversation) gin.H {
	return gin.H{
		"turns":  models.RenderTurns(conv.Turns()),
		"state":  conv.State(),
		"topics": chat.SuggestedTopics,
	}
}

// issueToken signs a fresh handle valid for TTL from now and marks the
// conversation in use.
func (h *Handler) issueToken(c *gin.Context, id string, conv *chat.Conversation) (string, bool) {
	token, err := utils.GenerateSessionToken(h.Secret, id, h.TTL)
	if err != nil {
		h.Logger.Error("failed to sign session token", zap.String("session_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not sign session token"})
		return "", false
	}
	conv.Touch()
	return token, true
}

// CreateSession opens a conversation when the chatbot screen mounts.
func (h *Handler) CreateSession(c *gin.Context) {
	id, conv := h.Sessions.Create()

	token, err := utils.GenerateSessionToken(h.Secret, id, h.TTL)
	if err != nil {
		_ = h.Sessions.Close(id)
		h.Logger.Error("failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not open chat session"})
		return
	}

	h.Logger.Info("chat session opened", zap.String("session_id", id))

	body := snapshot(conv)
	body["sessionId"] = id
	body["token"] = token
	c.JSON(http.StatusCreated, body)
}

// GetSession returns the current history of the caller's conversation
// with a renewed token.
func (h *Handler) GetSession(c *gin.Context) {
	conv, id := conversationFrom(c)

	token, ok := h.issueToken(c, id, conv)
	if !ok {
		return
	}

	body := snapshot(conv)
	body["token"] = token
	c.JSON(http.StatusOK, body)
}

// RefreshSession exchanges a still-valid token for one with a new expiry.
func (h *Handler) RefreshSession(c *gin.Context) {
	conv, id := conversationFrom(c)

	token, ok := h.issueToken(c, id, conv)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "sessionId": id})
}

// SendMessage appends the user's message and waits for the reply.
func (h *Handler) SendMessage(c *gin.Context) {
	conv, id := conversationFrom(c)

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	added, err := conv.Send(c.Request.Context(), input.Text)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "state": conv.State()})
		return
	case errors.Is(err, chat.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": conv.State()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	token, ok := h.issueToken(c, id, conv)
	if !ok {
		return
	}

	body := snapshot(conv)
	body["added"] = added
	body["token"] = token
	c.JSON(http.StatusOK, body)
}

// CloseSession discards the conversation when the chatbot screen unmounts.
func (h *Handler) CloseSession(c *gin.Context) {
	_, id := conversationFrom(c)

	if err := h.Sessions.Close(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat session not found"})
		return
	}

	h.Logger.Info("chat session closed", zap.String("session_id", id))
	c.Status(http.StatusNoContent)
}
