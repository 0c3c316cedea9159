package referrals

import (
	"errors"
	"net/http"

	"github.com/axelse03-gif/reybanpac/models"
	"github.com/axelse03-gif/reybanpac/navigation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const notFoundMessage = "Referido no encontrado."

type Handler struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

// ReferralCard is a referral as the list screen draws it.
type ReferralCard struct {
	models.Referral
	ActiveStep int `json:"activeStep"`
}

func toCards(referrals []models.Referral) []ReferralCard {
	cards := make([]ReferralCard, len(referrals))
	for i, r := range referrals {
		cards[i] = ReferralCard{Referral: r, ActiveStep: models.ActiveStep(r.Progress)}
	}
	return cards
}

// GetReferrals lists referrals filtered by the ?status= facet.
func (h *Handler) GetReferrals(c *gin.Context) {
	facet, err := models.ParseFacet(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "facets": models.Facets})
		return
	}

	var referrals []models.Referral
	if err := h.DB.Order("id").Find(&referrals).Error; err != nil {
		h.Logger.Error("failed to fetch referrals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"facet":     facet,
		"facets":    models.Facets,
		"steps":     models.ProgressSteps,
		"referrals": toCards(models.FilterReferrals(referrals, facet)),
	})
}

// GetReferral looks a referral up by its numeric id. Unknown and
// non-numeric ids both answer with the not-found state.
func (h *Handler) GetReferral(c *gin.Context) {
	notFound := gin.H{"error": notFoundMessage, "returnTo": "/referrals"}

	id, err := navigation.ParseReferralID(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, notFound)
		return
	}

	var referral models.Referral
	if err := h.DB.Where("id = ?", id).First(&referral).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, notFound)
			return
		}
		h.Logger.Error("failed to fetch referral", zap.Uint("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referral"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"referral":       ReferralCard{Referral: referral, ActiveStep: models.ActiveStep(referral.Progress)},
		"steps":          models.ProgressSteps,
		"goal":           reybancashGoal(referral.Progress),
		"recentActivity": recentActivity,
		"achievements":   achievements,
	})
}

// ValidateReferral runs the form rules on every keystroke.
func (h *Handler) ValidateReferral(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}

	errs := form.Validate()
	c.JSON(http.StatusOK, gin.H{
		"errors":        errs,
		"submitEnabled": len(errs) == 0,
	})
}

// SubmitReferral accepts a valid form and points the client at the
// confirmation screen. Nothing is stored and no message is sent; an attached
// CV is read for its name only.
func (h *Handler) SubmitReferral(c *gin.Context) {
	form, ok := bindForm(c)
	if !ok {
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":        errs,
			"submitEnabled": false,
		})
		return
	}

	h.Logger.Info("referral submitted",
		zap.String("position", form.Position),
		zap.String("relationship_type", form.RelationshipType),
		zap.Bool("cv_attached", form.AttachedFile != ""),
	)

	c.JSON(http.StatusOK, gin.H{
		"message":      "¡Referido enviado con éxito!",
		"next":         "/referrals/confirmation",
		"attachedFile": form.AttachedFile,
	})
}

// GetConfirmation returns the static confirmation screen.
func (h *Handler) GetConfirmation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "¡Referido enviado con éxito!",
		"actions": []gin.H{
			{"label": "Ir al Menú", "path": "/home"},
			{"label": "Volver a Referidos", "path": "/referrals"},
		},
	})
}

// GetFormOptions returns the select options and defaults of the form.
func (h *Handler) GetFormOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":              models.NewReferralForm(),
		"relationshipTypes": models.RelationshipTypes,
		"acquaintanceTimes": models.AcquaintanceTimes,
	})
}

// bindForm reads JSON or multipart input. For multipart requests the
// optional "cv" part is accepted and only its file name kept.
func bindForm(c *gin.Context) (models.ReferralForm, bool) {
	form := models.NewReferralForm()
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return form, false
	}
	if form.RelationshipType == "" {
		form.RelationshipType = models.DefaultRelationshipType
	}

	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if file, err := c.FormFile("cv"); err == nil {
			form.AttachedFile = file.Filename
		}
	}

	return form, true
}
