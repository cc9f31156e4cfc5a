package routes

import (
	"painel_entregas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDeliveries = "/deliveries"
)

func addDeliveryRoutes(rg *gin.RouterGroup, importHandler *handlers.DeliveryImportHandler, tableHandler *handlers.DeliveryTableHandler) {
	deliveries := rg.Group(PathDeliveries)
	{
		// Endpoints consumidos pelo painel de entregas.
		deliveries.POST("/import", importHandler.ImportSpreadsheet)
		deliveries.GET("/stats", tableHandler.GetStats)
		deliveries.GET("/table", tableHandler.CheckTable)
		deliveries.DELETE("", tableHandler.ClearAll)
	}
}
