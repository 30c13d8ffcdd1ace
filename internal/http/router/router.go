package router

import (
	"github.com/gin-gonic/gin"

	"mailroom.app/triage/internal/http/handler"
)

// SetupRoutes registers the public API surface.
func SetupRoutes(router *gin.Engine, triage *handler.TriageHandler, chat *handler.ChatHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Mailroom Triage API", "version": "1.0.0"})
	})

	router.POST("/process_text", triage.ProcessText)
	router.POST("/upload_file", triage.UploadFile)
	router.POST("/chat", chat.Chat)
}
