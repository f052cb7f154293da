package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, notifications.List())
}

func ClearNotifications(c *gin.Context) {
	notifications.Clear()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
