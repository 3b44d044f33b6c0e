package routes

import (
	"lavanderia_rfid/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGarments = "/garments"
	PathBoard    = "/board"
	PathBatches  = "/batches"
	PathAlerts   = "/alerts"
	PathActions  = "/actions"
)

func addLaundryRoutes(
	rg *gin.RouterGroup,
	garmentHandler *handlers.GarmentHandler,
	batchHandler *handlers.BatchHandler,
	alertHandler *handlers.AlertHandler,
	actionHandler *handlers.ActionHandler,
) {
	garments := rg.Group(PathGarments)
	{
		garments.GET("", garmentHandler.ListGarments)
		garments.POST("/status/bulk", garmentHandler.BulkChangeStatus)
		garments.GET("/:id", garmentHandler.GetGarment)
		garments.GET("/:id/history", garmentHandler.GetHistory)
		garments.PATCH("/:id/status", garmentHandler.ChangeStatus)
		garments.POST("/:id/notes", garmentHandler.AddNote)
	}

	board := rg.Group(PathBoard)
	{
		board.PATCH("/garments/:id", garmentHandler.MoveOnBoard)
	}

	batches := rg.Group(PathBatches)
	{
		batches.POST("", batchHandler.CreateBatch)
		batches.GET("", batchHandler.ListBatches)
		batches.GET("/:id", batchHandler.GetBatch)
		batches.POST("/:id/garments", batchHandler.AddGarment)
		batches.PATCH("/:id/status", batchHandler.SetStatus)
		batches.POST("/:id/complete", batchHandler.CompleteBatch)
		batches.DELETE("/:id", batchHandler.DeleteBatch)
	}

	rg.GET(PathAlerts+"/delayed", alertHandler.DelayedAlerts)

	actions := rg.Group(PathActions)
	{
		actions.POST("", actionHandler.Dispatch)
		actions.GET("", actionHandler.ListActions)
	}
}
