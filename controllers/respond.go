package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/macadoo18/growing-up-server/config"
)

func missingField(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": fmt.Sprintf("Missing '%s' in request body", field),
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// internalError hides detail in production, per the error contract.
func internalError(c *gin.Context, cfg *config.Config, err error) {
	if cfg.IsProduction() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "server error"}})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// parseID parses a numeric path parameter; non-numeric ids read as id 0,
// which never exists.
func parseID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
