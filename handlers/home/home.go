package home

import (
	"net/http"

	"github.com/axelse03-gif/reybanpac/models"
	"github.com/axelse03-gif/reybanpac/navigation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

// GetHome returns the greeting, quick-access tiles and the news carousel.
func (h *Handler) GetHome(c *gin.Context) {
	var news []models.NewsItem
	if err := h.DB.Order("position").Find(&news).Error; err != nil {
		h.Logger.Error("failed to fetch news", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"greeting":         "Hola " + employee.FirstName,
		"quickAccess":      quickAccess,
		"news":             news,
		"emergencyContact": emergencyContact,
	})
}

func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profile": employee})
}

func (h *Handler) GetDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Documentos", "heading": "Mis Documentos", "back": "/home"})
}

func (h *Handler) GetMentoring(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Mentoría", "heading": "Programa de Mentoría"})
}

// GetScreens returns the route table and the bottom navigation tabs.
func (h *Handler) GetScreens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"screens":   navigation.Screens,
		"bottomNav": navigation.BottomNavItems,
	})
}

// ResolveScreen maps ?path= to a screen, with the bottom bar state for it.
func (h *Handler) ResolveScreen(c *gin.Context) {
	path := c.Query("path")

	match, ok := navigation.Resolve(path)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown screen", "path": path})
		return
	}

	active := make([]string, 0, 1)
	for _, item := range navigation.BottomNavItems {
		if navigation.IsActive(item.Path, path) {
			active = append(active, item.Path)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"match":               match,
		"showBottomNav":       navigation.ShowBottomNav(match.Screen.Path),
		"showEmergencyButton": navigation.ShowEmergencyButton(match.Screen.Path),
		"activeTabs":          active,
	})
}
