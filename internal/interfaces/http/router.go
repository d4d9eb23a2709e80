package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leaguemotd/internal/application/motd/usecases"
	motdhandlers "leaguemotd/internal/interfaces/http/handlers/motd"
	"leaguemotd/internal/interfaces/http/middleware"
	"leaguemotd/internal/interfaces/http/routes"
	"leaguemotd/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine      *gin.Engine
	motdHandler *motdhandlers.Handler
	logger      logger.Interface
}

// NewRouter builds the read-only router used by the game client.
func NewRouter(listUC usecases.ListMOTDsExecutor, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	return &Router{
		engine:      engine,
		motdHandler: motdhandlers.NewHandler(listUC, log),
		logger:      log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupMOTDRoutes(r.engine, &routes.MOTDRouteConfig{
		MOTDHandler: r.motdHandler,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
