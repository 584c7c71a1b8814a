package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Oussamaberchi/Quickkt/internal/service"
)

func PostProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateProfileRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Profile validation failed")
			return
		}

		profile, err := service.SaveProfile(c.Request.Context(), app.Store(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save profile")
			return
		}

		HandleSuccess(c, app.Logger(), profile, nil)
	}
}

func GetProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := app.Store().GetProfile(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load profile")
			return
		}
		if profile == nil {
			HandleError(c, app.Logger(), errors.New("no profile set up"), 404, "Profile not found")
			return
		}
		HandleSuccess(c, app.Logger(), profile, nil)
	}
}
