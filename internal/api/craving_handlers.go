package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Oussamaberchi/Quickkt/internal/quit"
	"github.com/Oussamaberchi/Quickkt/internal/service"
)

func PostCraving(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CravingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateCravingRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Craving validation failed")
			return
		}

		entry, err := service.LogCraving(c.Request.Context(), app.Store(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save craving")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func GetCravings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := app.Store().ListCravings(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch cravings")
			return
		}
		HandleSuccess(c, app.Logger(), logs, nil)
	}
}

func GetCravingAnalytics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := app.Store().ListCravings(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch cravings for analytics")
			return
		}
		HandleSuccess(c, app.Logger(), quit.Analyze(logs, app.Calendar()), nil)
	}
}
