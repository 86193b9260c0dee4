package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "AtlasMind API",
	})
}

func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "🌌 Welcome to AtlasMind API",
		"version":     "1.0.0",
		"description": "AI-Powered Travel Planner",
	})
}
