package referrals

import "github.com/gin-gonic/gin"

func RegisterReferralsRoutes(r gin.IRouter, h *Handler) {
	r.GET("/referrals", h.GetReferrals)
	r.GET("/referrals/new", h.GetFormOptions)
	r.GET("/referrals/confirmation", h.GetConfirmation)
	r.GET("/referrals/:id", h.GetReferral)
	r.POST("/referrals/validate", h.ValidateReferral)
	r.POST("/referrals", h.SubmitReferral)
}
