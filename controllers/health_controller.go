package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/task-exchange-api/store"
)

// HealthController serves the service health endpoints
type HealthController struct {
	store *store.Store
}

func NewHealthController(st *store.Store) *HealthController {
	return &HealthController{store: st}
}

// Check handles the health check endpoint
func (ctl *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task Exchange API is running",
	})
}

// DatabaseStatus checks database connectivity and returns table information
func (ctl *HealthController) DatabaseStatus(c *gin.Context) {
	if err := ctl.store.Ping(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_CONNECTION_ERROR", "Database connection failed")
		return
	}

	tables, err := ctl.store.Tables()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_QUERY_ERROR", "Failed to query tables")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
