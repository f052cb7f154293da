package handlers

import (
	"net/http"
	"strings"

	"taskmaster/internal/database"
	"taskmaster/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerForm struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	form.Email = strings.TrimSpace(strings.ToLower(form.Email))
	form.Name = strings.TrimSpace(form.Name)
	if len(form.Email) < 5 || !strings.Contains(form.Email, "@") {
		respondError(c, http.StatusBadRequest, "invalid email")
		return
	}
	if form.Name == "" {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}
	if len(form.Password) < 6 {
		respondError(c, http.StatusBadRequest, "password too short")
		return
	}

	role := models.UserRole(form.Role)

	// self-service registration covers manager / viewer only; admins are
	// seeded from env
	switch role {
	case models.RoleManager, models.RoleViewer:
	default:
		respondError(c, http.StatusBadRequest, "invalid role")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", form.Email).First(&existing).Error; err == nil {
		respondError(c, http.StatusBadRequest, "user already exists")
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	user := models.User{
		Email:        form.Email,
		Name:         form.Name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	var user models.User
	email := strings.TrimSpace(strings.ToLower(form.Email))
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.JSON(http.StatusOK, user)
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	c.JSON(http.StatusOK, user)
}
