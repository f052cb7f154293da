package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"taskmaster/internal/database"
	"taskmaster/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListDepartments(c *gin.Context) {
	var departments []models.Department
	if err := database.DB.Order("name asc").Find(&departments).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load departments")
		return
	}
	c.JSON(http.StatusOK, departments)
}

type departmentForm struct {
	Name        string `json:"name"`
	Lead        string `json:"lead"`
	Description string `json:"description"`
}

func CreateDepartment(c *gin.Context) {
	var form departmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	name := strings.TrimSpace(form.Name)
	if len(name) < 2 {
		respondError(c, http.StatusBadRequest, "name must be at least 2 characters")
		return
	}

	var existing models.Department
	if err := database.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		respondError(c, http.StatusBadRequest, "department already exists")
		return
	}

	dept := models.Department{
		Name:        name,
		Lead:        strings.TrimSpace(form.Lead),
		Description: strings.TrimSpace(form.Description),
	}
	if err := database.DB.Create(&dept).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save department")
		return
	}

	c.JSON(http.StatusCreated, dept)
}

func UpdateDepartment(c *gin.Context) {
	dept, ok := loadDepartment(c)
	if !ok {
		return
	}

	var form departmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	name := strings.TrimSpace(form.Name)
	if len(name) < 2 {
		respondError(c, http.StatusBadRequest, "name must be at least 2 characters")
		return
	}

	dept.Name = name
	dept.Lead = strings.TrimSpace(form.Lead)
	dept.Description = strings.TrimSpace(form.Description)

	if err := database.DB.Save(&dept).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save department")
		return
	}

	c.JSON(http.StatusOK, dept)
}

func DeleteDepartment(c *gin.Context) {
	dept, ok := loadDepartment(c)
	if !ok {
		return
	}

	var count int64
	if err := database.DB.Model(&models.Project{}).
		Where("department_id = ?", dept.ID).
		Count(&count).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to check department projects")
		return
	}
	if count > 0 {
		respondError(c, http.StatusBadRequest, "department still has projects")
		return
	}

	if err := database.DB.Delete(&dept).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete department")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func loadDepartment(c *gin.Context) (models.Department, bool) {
	idStr := c.Param("id")
	did, err := strconv.Atoi(idStr)
	if err != nil || did <= 0 {
		respondError(c, http.StatusBadRequest, "invalid department id")
		return models.Department{}, false
	}

	var dept models.Department
	if err := database.DB.First(&dept, did).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respondError(c, http.StatusNotFound, "department not found")
		} else {
			respondError(c, http.StatusInternalServerError, "failed to load department")
		}
		return models.Department{}, false
	}
	return dept, true
}
