package main

import (
	"formulaGrid/contracts"
	"net/http"

	"github.com/gin-gonic/gin"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"
const copyPath = "copy"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/:sheet_id/:cell_id/"+subscribePath, controller.SubscribeAction)
	apiRouterGroup.POST("/:sheet_id/:cell_id/"+copyPath, controller.CopyCellAction)

	apiRouterGroup.POST("/:sheet_id/:cell_id", controller.SetCellAction)
	apiRouterGroup.GET("/:sheet_id/:cell_id", controller.GetCellAction)
	apiRouterGroup.DELETE("/:sheet_id/:cell_id", controller.DeleteCellAction)
	apiRouterGroup.GET("/:sheet_id", controller.GetSheetAction)
	apiRouterGroup.DELETE("/:sheet_id", controller.ClearSheetAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
