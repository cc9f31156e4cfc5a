package routes

import (
	"log"
	_ "painel_entregas/docs" // This will be auto-generated
	"painel_entregas/internal/adapter/http/handlers"
	repository2 "painel_entregas/internal/adapter/persistence/repository"
	"painel_entregas/internal/infrastructure/database"
	"painel_entregas/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	deliveryRepo := repository2.NewDeliveryRecordDynamoRepository(ddb)

	importUseCase := usecase.NewDeliveryImportUseCase(deliveryRepo)
	tableUseCase := usecase.NewDeliveryTableUseCase(deliveryRepo)

	importHandler := handlers.NewDeliveryImportHandler(importUseCase)
	tableHandler := handlers.NewDeliveryTableHandler(tableUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDeliveryRoutes(v1, importHandler, tableHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
