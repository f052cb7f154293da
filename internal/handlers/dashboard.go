package handlers

import (
	"net/http"

	"taskmaster/internal/analytics"
	"taskmaster/internal/database"
	"taskmaster/internal/models"

	"github.com/gin-gonic/gin"
)

// Dashboard returns projects bucketed into status columns.
func Dashboard(c *gin.Context) {
	var projects []models.Project
	if err := database.DB.Preload("Department").Order("created_at desc").Find(&projects).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load projects")
		return
	}

	c.JSON(http.StatusOK, analytics.StatusColumns(projects))
}

// Analytics returns the chart aggregates for the whole project list.
func Analytics(c *gin.Context) {
	var projects []models.Project
	if err := database.DB.Preload("Department").Find(&projects).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load projects")
		return
	}

	c.JSON(http.StatusOK, analytics.Summarize(projects))
}
