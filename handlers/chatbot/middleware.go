package chatbot

import (
	"net/http"

	"github.com/axelse03-gif/reybanpac/chat"
	"github.com/axelse03-gif/reybanpac/utils"

	"github.com/gin-gonic/gin"
)

const (
	sessionIDKey    = "session_id"
	conversationKey = "conversation"
)

// SessionMiddleware resolves the bearer session token to its conversation.
func (h *Handler) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		sessionID, err := utils.ExtractSessionID(h.Secret, authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		conv, err := h.Sessions.Get(sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Chat session not found"})
			return
		}

		c.Set(sessionIDKey, sessionID)
		c.Set(conversationKey, conv)

		c.Next()
	}
}

func conversationFrom(c *gin.Context) (*chat.Conversation, string) {
	return c.MustGet(conversationKey).(*chat.Conversation), c.GetString(sessionIDKey)
}
