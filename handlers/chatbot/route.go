package chatbot

import "github.com/gin-gonic/gin"

func RegisterChatRoutes(r gin.IRouter, h *Handler) {
	r.POST("/chat/sessions", h.CreateSession)

	session := r.Group("/chat")
	session.Use(h.SessionMiddleware())
	{
		session.GET("/session", h.GetSession)
		session.POST("/session/refresh", h.RefreshSession)
		session.POST("/messages", h.SendMessage)
		session.DELETE("/session", h.CloseSession)
	}
}
