package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	StatusPossible  ProjectStatus = "Possible"
	StatusScoping   ProjectStatus = "Scoping"
	StatusExecution ProjectStatus = "Execution"
	StatusOnHold    ProjectStatus = "On Hold"
	StatusFinished  ProjectStatus = "Finished"
	StatusCancelled ProjectStatus = "Cancelled"
)

// StatusOrder is the dashboard column order.
var StatusOrder = []ProjectStatus{
	StatusPossible,
	StatusScoping,
	StatusExecution,
	StatusOnHold,
	StatusFinished,
	StatusCancelled,
}

func ValidStatus(s ProjectStatus) bool {
	for _, st := range StatusOrder {
		if s == st {
			return true
		}
	}
	return false
}

type Project struct {
	gorm.Model
	Title string `gorm:"size:255;not null" json:"title"`

	DepartmentID uint       `json:"departmentId"`
	Department   Department `json:"department"`

	Status    ProjectStatus `gorm:"type:varchar(50);not null" json:"status"`
	SubStatus string        `gorm:"size:100" json:"subStatus"`

	FocalOwner string `gorm:"size:255" json:"focalOwner"` // person accountable day to day

	Budget      *float64   `json:"budget"`
	AwardAmount *float64   `json:"awardAmount"`
	AwardDate   *time.Time `json:"awardDate"`

	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`

	CompletionPercent *float64 `json:"completionPercent"`

	Notes string `gorm:"type:text" json:"notes"`
}
