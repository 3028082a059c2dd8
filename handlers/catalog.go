package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laundrybook/services/catalog"
)

// GetCatalog returns the full categorized price list.
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}
