package home

import "github.com/gin-gonic/gin"

func RegisterHomeRoutes(r gin.IRouter, h *Handler) {
	r.GET("/home", h.GetHome)
	r.GET("/profile", h.GetProfile)
	r.GET("/documents", h.GetDocuments)
	r.GET("/mentoring", h.GetMentoring)
	r.GET("/screens", h.GetScreens)
	r.GET("/screens/resolve", h.ResolveScreen)
}
