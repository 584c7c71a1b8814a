package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Oussamaberchi/Quickkt/internal/quit"
)

func GetQuotes(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := language(c, app)
		meta := map[string]any{"quote_of_day": quit.QuoteOfDay(time.Now().UTC(), lang)}
		HandleSuccess(c, app.Logger(), quit.MotivationalQuotes(lang), meta)
	}
}

func GetTips(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), quit.CravingTips(language(c, app)), nil)
	}
}

func GetBrands(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), quit.BrandPresets, nil)
	}
}
