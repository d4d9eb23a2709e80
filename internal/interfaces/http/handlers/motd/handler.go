package motd

import (
	"github.com/gin-gonic/gin"

	"leaguemotd/internal/application/motd/usecases"
	"leaguemotd/internal/shared/logger"
	"leaguemotd/internal/shared/utils"
)

// Handler serves the MOTD list to the game client.
type Handler struct {
	listUC usecases.ListMOTDsExecutor
	logger logger.Interface
}

func NewHandler(listUC usecases.ListMOTDsExecutor, logger logger.Interface) *Handler {
	return &Handler{
		listUC: listUC,
		logger: logger,
	}
}

// ListMOTDs handles GET /motds/:lang
func (h *Handler) ListMOTDs(c *gin.Context) {
	lang := c.Param("lang")

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListMOTDsQuery{Language: lang})
	if err != nil {
		h.logger.Warnw("failed to list motds", "language", lang, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
