package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message responde 200 con un cuerpo {"message": ...}.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Success responde 200 con un cuerpo {"success": true}.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
