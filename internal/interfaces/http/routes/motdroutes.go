package routes

import (
	"github.com/gin-gonic/gin"

	motdhandlers "leaguemotd/internal/interfaces/http/handlers/motd"
)

type MOTDRouteConfig struct {
	MOTDHandler *motdhandlers.Handler
}

func SetupMOTDRoutes(engine *gin.Engine, config *MOTDRouteConfig) {
	motds := engine.Group("/motds")
	{
		motds.GET("/:lang", config.MOTDHandler.ListMOTDs)
	}
}
