package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// PostReset wipes the profile, craving log and chat history. The confirm flag
// is this boundary's explicit-confirmation requirement; the UI surfaces the
// dialog, the API refuses unconfirmed resets.
func PostReset(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Confirm bool `json:"confirm"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
			HandleError(c, app.Logger(), errors.New("reset requires explicit confirmation"), 400, "Reset refused")
			return
		}
		if err := app.Store().Reset(c.Request.Context()); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to reset")
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"reset": true})
	}
}

// GetExport downloads the complete live snapshot as a JSON document.
func GetExport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := app.Store().Snapshot(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to export snapshot")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="quickkt-export.json"`)
		c.JSON(http.StatusOK, snap)
	}
}

func PutSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Theme    string `json:"theme" binding:"required,oneof=light dark"`
			Language string `json:"language" binding:"required,oneof=ar fr"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid settings")
			return
		}
		set := internal.Settings{Theme: req.Theme, Language: req.Language}
		if err := app.Store().SaveSettings(c.Request.Context(), set); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save settings")
			return
		}
		HandleSuccess(c, app.Logger(), set, nil)
	}
}

func GetSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		set, err := app.Store().GetSettings(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load settings")
			return
		}
		HandleSuccess(c, app.Logger(), set, nil)
	}
}
