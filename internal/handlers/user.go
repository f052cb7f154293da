package handlers

import (
	"net/http"
	"strconv"

	"taskmaster/internal/database"
	"taskmaster/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("email asc").Find(&users).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load users")
		return
	}
	c.JSON(http.StatusOK, users)
}

type roleForm struct {
	Role string `json:"role"`
}

func UpdateUserRole(c *gin.Context) {
	idStr := c.Param("id")
	uid, err := strconv.Atoi(idStr)
	if err != nil || uid <= 0 {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var form roleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	role := models.UserRole(form.Role)
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleViewer:
	default:
		respondError(c, http.StatusBadRequest, "invalid role")
		return
	}

	var user models.User
	if err := database.DB.First(&user, uid).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respondError(c, http.StatusNotFound, "user not found")
		} else {
			respondError(c, http.StatusInternalServerError, "failed to load user")
		}
		return
	}

	user.Role = role
	if err := database.DB.Save(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save user")
		return
	}

	c.JSON(http.StatusOK, user)
}
