package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleViewer  UserRole = "viewer"
)

type User struct {
	gorm.Model
	Email        string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string   `gorm:"size:255;not null" json:"name"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
}
