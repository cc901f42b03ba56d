package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mechgenz/backend/internal/database"
)

type healthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Environment string `json:"environment"`
}

func (h HandlerSet) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	if err := database.Ping(c.Request.Context(), h.db.Client()); err != nil {
		status = "degraded"
		dbStatus = "error"
		h.log.Error().Err(err).Msg("database ping failed")
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:      status,
		Database:    dbStatus,
		Environment: h.cfg.Environment,
	})
}
