package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/magda-arranger/internal/styles"
)

// ListStyles returns the built-in style table
func ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"styles": styles.List()})
}

// GetStyle returns one style record by id
func GetStyle(c *gin.Context) {
	style, ok := styles.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown style: " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, style)
}
