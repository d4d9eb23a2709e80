package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"leaguemotd/internal/shared/errors"
	"leaguemotd/internal/shared/logger"
	"leaguemotd/internal/shared/utils"
)

func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponseWithError(c, errors.NewInternalError("Internal server error occurred"))
		c.Abort()
	})
}
