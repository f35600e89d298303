package controllers

import (
	"errors"
	"net/http"

	"github.com/eatn-dev/eatn-menu-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps the service error taxonomy onto HTTP results. Unexpected
// failures are logged with their detail and answered with a bare 500.
func respondError(c *gin.Context, err error) {
	var conflict *services.ConflictError

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, services.ErrNameTaken):
		c.JSON(http.StatusConflict, gin.H{
			"data": gin.H{"message": "That name is already taken."},
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"data": gin.H{"message": conflict.Message},
		})
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Unexpected error")
		c.Status(http.StatusInternalServerError)
	}
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": message}})
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}
