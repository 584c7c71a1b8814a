package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Oussamaberchi/Quickkt/internal/quit"
)

// GetStats returns the full derived snapshot. The tick engine's latest value
// is served when available; an explicit ?at=RFC3339 instant forces a fresh
// evaluation at that instant.
func GetStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := app.Store().GetProfile(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load profile")
			return
		}
		if profile == nil {
			HandleError(c, app.Logger(), errors.New("no profile set up"), 404, "Stats unavailable")
			return
		}

		lang := language(c, app)

		if at := c.Query("at"); at != "" {
			instant, err := time.Parse(time.RFC3339, at)
			if err != nil {
				HandleError(c, app.Logger(), err, 400, "Invalid 'at' instant")
				return
			}
			HandleSuccess(c, app.Logger(), quit.ComputeStats(instant.UTC(), profile, lang), nil)
			return
		}

		if snap := app.Engine().Latest(); snap != nil {
			HandleSuccess(c, app.Logger(), snap, nil)
			return
		}
		// First request can land before the first tick.
		HandleSuccess(c, app.Logger(), quit.ComputeStats(time.Now().UTC(), profile, lang), nil)
	}
}
