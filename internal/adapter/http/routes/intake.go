package routes

import (
	"lavanderia_rfid/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIntake = "/intake/:session_id"
	PathReader = "/reader"
)

func addIntakeRoutes(rg *gin.RouterGroup, intakeHandler *handlers.IntakeHandler, readerHandler *handlers.ReaderHandler) {
	intake := rg.Group(PathIntake)
	{
		intake.GET("", intakeHandler.GetState)
		intake.DELETE("", intakeHandler.Reset)
		intake.POST("/client", intakeHandler.SelectClient)
		intake.POST("/scan", intakeHandler.Scan)
		intake.POST("/finalize", intakeHandler.FinalizeBatch)
		intake.DELETE("/drafts", intakeHandler.ClearDrafts)
		intake.DELETE("/drafts/unresolved", intakeHandler.DiscardUnresolved)
		intake.PUT("/drafts/:index", intakeHandler.ResolveDraft)
		intake.DELETE("/drafts/:index", intakeHandler.RemoveDraft)
		intake.POST("/advance", intakeHandler.Advance)
		intake.POST("/back", intakeHandler.Back)
	}

	reader := rg.Group(PathReader)
	{
		reader.POST("/connect", readerHandler.Connect)
		reader.POST("/disconnect", readerHandler.Disconnect)
		reader.GET("/status", readerHandler.Status)
		reader.POST("/scan", readerHandler.Scan)
		reader.GET("/stream", readerHandler.Stream)
	}
}
