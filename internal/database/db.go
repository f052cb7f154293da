package database

import (
	"os"
	"time"

	"taskmaster/internal/activity"
	"taskmaster/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var log = logrus.StandardLogger()

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Infof("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Info("connected to DB successfully")
			break
		}

		log.WithError(err).Warn("failed to connect to DB")
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Project{},
		&activity.Record{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin()
	seedDefaultUsers()
}

// admin comes from env/config only, never from the register endpoint
func createDefaultAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@taskmaster.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.WithError(err).Error("failed to check admin user")
		return
	}
	if count > 0 {
		// admin already exists, nothing to do
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("failed to hash default admin password")
		return
	}

	admin := models.User{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.WithError(err).Error("failed to create default admin")
		return
	}

	log.Infof("created default admin user: %s", email)
}

// a couple of demo accounts (manager and viewer)
func seedDefaultUsers() {
	type seedUser struct {
		Email    string
		Name     string
		Password string
		Role     models.UserRole
	}

	users := []seedUser{
		{
			Email:    "manager@taskmaster.local",
			Name:     "Demo Manager",
			Password: "Manager123!",
			Role:     models.RoleManager,
		},
		{
			Email:    "viewer@taskmaster.local",
			Name:     "Demo Viewer",
			Password: "Viewer123!",
			Role:     models.RoleViewer,
		},
	}

	for _, u := range users {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("email = ?", u.Email).
			Count(&count).Error; err != nil {
			log.WithError(err).Errorf("failed to check seed user %s", u.Email)
			continue
		}
		if count > 0 {
			// already there, skip
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.WithError(err).Errorf("failed to hash password for %s", u.Email)
			continue
		}

		user := models.User{
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: string(hash),
			Role:         u.Role,
		}

		if err := DB.Create(&user).Error; err != nil {
			log.WithError(err).Errorf("failed to create seed user %s", u.Email)
			continue
		}

		log.Infof("created seed user: %s (role=%s)", u.Email, u.Role)
	}
}
