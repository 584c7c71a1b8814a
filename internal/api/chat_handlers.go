package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Oussamaberchi/Quickkt/internal/service"
)

func PostChatMessage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateChatRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Chat validation failed")
			return
		}

		msgs, err := service.SendChatMessage(c.Request.Context(), app.Store(), app.Coach(), &req, language(c, app))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to send chat message")
			return
		}

		HandleSuccess(c, app.Logger(), msgs, nil)
	}
}

func GetChatHistory(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := app.Store().ListMessages(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch chat history")
			return
		}
		HandleSuccess(c, app.Logger(), msgs, nil)
	}
}
