package api

import "github.com/gin-gonic/gin"

// RegisterRoutes wires every handler onto the router group. Auth and
// request-ID middleware are attached by the caller.
func RegisterRoutes(r gin.IRoutes, app App) {
	r.POST("/profile", PostProfile(app))
	r.GET("/profile", GetProfile(app))
	r.GET("/stats", GetStats(app))
	r.POST("/cravings", PostCraving(app))
	r.GET("/cravings", GetCravings(app))
	r.GET("/cravings/analytics", GetCravingAnalytics(app))
	r.POST("/chat", PostChatMessage(app))
	r.GET("/chat", GetChatHistory(app))
	r.POST("/reset", PostReset(app))
	r.GET("/export", GetExport(app))
	r.PUT("/settings", PutSettings(app))
	r.GET("/settings", GetSettings(app))
	r.GET("/support/quotes", GetQuotes(app))
	r.GET("/support/tips", GetTips(app))
	r.GET("/brands", GetBrands(app))
}
