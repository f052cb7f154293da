package models

import "gorm.io/gorm"

type Department struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Lead        string `gorm:"size:255" json:"lead"`        // display name of the department lead
	Description string `gorm:"type:text" json:"description"`

	Projects []Project `json:"-"`
}
