package main

import (
	"formulaGrid/contracts"

	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database          *bbolt.DB
	ApiController     contracts.ApiController
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	Router            *gin.Engine
}

func BuildServiceContainer(config Config) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, nil)

	grid := config.Grid()
	engineFactory := func() contracts.SheetEngine {
		return NewSheetEngine(grid)
	}

	serializer := NewCellBinarySerializer()

	container.WebhookDispatcher = NewWebhookDispatcher()
	container.SheetRepository = NewSheetRepository(container.Database, engineFactory, serializer, container.WebhookDispatcher)
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
