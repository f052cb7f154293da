package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskmaster/internal/activity"
	"taskmaster/internal/database"
	"taskmaster/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//
// LISTING
//

// ListProjects supports department_id and status query filters.
func ListProjects(c *gin.Context) {
	departmentIDStr := c.Query("department_id")
	statusStr := c.Query("status")

	dbq := database.DB.Preload("Department").Order("created_at desc")

	if departmentIDStr != "" {
		if did, err := strconv.Atoi(departmentIDStr); err == nil && did > 0 {
			dbq = dbq.Where("department_id = ?", did)
		}
	}

	if statusStr != "" {
		dbq = dbq.Where("status = ?", statusStr)
	}

	var projects []models.Project
	if err := dbq.Find(&projects).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load projects")
		return
	}

	c.JSON(http.StatusOK, projects)
}

func GetProject(c *gin.Context) {
	project, ok := loadProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, project)
}

//
// CREATE / UPDATE
//

type projectForm struct {
	Title             string   `json:"title"`
	DepartmentID      uint     `json:"departmentId"`
	Status            string   `json:"status"`
	SubStatus         string   `json:"subStatus"`
	FocalOwner        string   `json:"focalOwner"`
	Budget            *float64 `json:"budget"`
	AwardAmount       *float64 `json:"awardAmount"`
	AwardDate         string   `json:"awardDate"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	CompletionPercent *float64 `json:"completionPercent"`
	Notes             string   `json:"notes"`

	// optional comment to attach to the resulting activity record
	Note string `json:"note"`
}

func (f *projectForm) apply(p *models.Project) string {
	title := strings.TrimSpace(f.Title)
	if len(title) < 3 {
		return "title must be at least 3 characters"
	}

	status := models.ProjectStatus(f.Status)
	if f.Status == "" {
		status = models.StatusPossible
	}
	if !models.ValidStatus(status) {
		return "invalid status"
	}

	if f.DepartmentID != 0 {
		var dept models.Department
		if err := database.DB.First(&dept, f.DepartmentID).Error; err != nil {
			return "department not found"
		}
	}

	awardDate, errMsg := parseDate(f.AwardDate, "awardDate")
	if errMsg != "" {
		return errMsg
	}
	startDate, errMsg := parseDate(f.StartDate, "startDate")
	if errMsg != "" {
		return errMsg
	}
	endDate, errMsg := parseDate(f.EndDate, "endDate")
	if errMsg != "" {
		return errMsg
	}

	if f.CompletionPercent != nil && (*f.CompletionPercent < 0 || *f.CompletionPercent > 100) {
		return "completionPercent must be between 0 and 100"
	}

	p.Title = title
	p.DepartmentID = f.DepartmentID
	p.Status = status
	p.SubStatus = strings.TrimSpace(f.SubStatus)
	p.FocalOwner = strings.TrimSpace(f.FocalOwner)
	p.Budget = f.Budget
	p.AwardAmount = f.AwardAmount
	p.AwardDate = awardDate
	p.StartDate = startDate
	p.EndDate = endDate
	p.CompletionPercent = f.CompletionPercent
	p.Notes = strings.TrimSpace(f.Notes)
	return ""
}

func parseDate(s, field string) (*time.Time, string) {
	if s == "" {
		return nil, ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, "invalid " + field
	}
	return &t, ""
}

func CreateProject(c *gin.Context) {
	var form projectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	var project models.Project
	if msg := form.apply(&project); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	if err := database.DB.Create(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save project")
		return
	}

	actor, _ := currentUser(c)
	record, err := recorder.EntityCreated(project.ID, project.Title, actor.ID, actor.Name)
	pushNotification(record)

	respondMutation(c, http.StatusCreated, reloadProject(project.ID), err)
}

func UpdateProject(c *gin.Context) {
	project, ok := loadProject(c)
	if !ok {
		return
	}

	var form projectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	prev := projectSnapshot(project)

	if msg := form.apply(&project); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	if err := database.DB.Save(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save project")
		return
	}

	updated := reloadProject(project.ID)
	next := projectSnapshot(updated)

	actor, _ := currentUser(c)
	record, err := recorder.EntityUpdated(project.ID, updated.Title, prev, next, actor.ID, actor.Name, strings.TrimSpace(form.Note))
	pushNotification(record)

	respondMutation(c, http.StatusOK, updated, err)
}

//
// STATUS CHANGE
//

type statusForm struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func ChangeProjectStatus(c *gin.Context) {
	project, ok := loadProject(c)
	if !ok {
		return
	}

	var form statusForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	newStatus := models.ProjectStatus(form.Status)
	if !models.ValidStatus(newStatus) {
		respondError(c, http.StatusBadRequest, "invalid status")
		return
	}

	prev := projectSnapshot(project)
	project.Status = newStatus

	if err := database.DB.Save(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update status")
		return
	}

	updated := reloadProject(project.ID)
	next := projectSnapshot(updated)

	actor, _ := currentUser(c)
	record, err := recorder.EntityUpdated(project.ID, updated.Title, prev, next, actor.ID, actor.Name, strings.TrimSpace(form.Note))
	pushNotification(record)

	respondMutation(c, http.StatusOK, updated, err)
}

//
// NOTES
//

type noteForm struct {
	Note string `json:"note"`
}

func AddProjectNote(c *gin.Context) {
	project, ok := loadProject(c)
	if !ok {
		return
	}

	var form noteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	note := strings.TrimSpace(form.Note)
	if note == "" {
		respondError(c, http.StatusBadRequest, "note must not be empty")
		return
	}

	actor, _ := currentUser(c)
	record, err := recorder.NoteAdded(project.ID, project.Title, note, actor.ID, actor.Name)
	if err != nil {
		respondActivityErr(c, err)
		return
	}
	pushNotification(record)

	c.JSON(http.StatusCreated, record)
}

//
// DELETE
//

// DeleteProject removes the project row. Its activity records stay: they
// carry the title snapshot, so the trail survives the deletion.
func DeleteProject(c *gin.Context) {
	project, ok := loadProject(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete project")
		return
	}

	actor, _ := currentUser(c)
	log.WithFields(logrus.Fields{
		"project_id": project.ID,
		"actor":      actor.Email,
	}).Info("project deleted")

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

//
// HELPERS
//

func loadProject(c *gin.Context) (models.Project, bool) {
	idStr := c.Param("id")
	pid, err := strconv.Atoi(idStr)
	if err != nil || pid <= 0 {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return models.Project{}, false
	}

	var project models.Project
	if err := database.DB.Preload("Department").First(&project, pid).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respondError(c, http.StatusNotFound, "project not found")
		} else {
			respondError(c, http.StatusInternalServerError, "failed to load project")
		}
		return models.Project{}, false
	}
	return project, true
}

func reloadProject(id uint) models.Project {
	var project models.Project
	_ = database.DB.Preload("Department").First(&project, id).Error
	return project
}

// projectSnapshot converts a project into the activity engine's trackable
// field view. Department is snapshotted by name so diffs read naturally.
func projectSnapshot(p models.Project) activity.Snapshot {
	snap := activity.Snapshot{
		activity.FieldTitle:      activity.String(p.Title),
		activity.FieldStatus:     activity.String(string(p.Status)),
		activity.FieldSubStatus:  activity.String(p.SubStatus),
		activity.FieldDepartment: activity.String(p.Department.Name),
		activity.FieldFocalOwner: activity.String(p.FocalOwner),
	}
	if p.Budget != nil {
		snap[activity.FieldBudget] = activity.Number(*p.Budget)
	}
	if p.AwardAmount != nil {
		snap[activity.FieldAwardAmount] = activity.Number(*p.AwardAmount)
	}
	if p.AwardDate != nil {
		snap[activity.FieldAwardDate] = activity.Date(*p.AwardDate)
	}
	if p.StartDate != nil {
		snap[activity.FieldStartDate] = activity.Date(*p.StartDate)
	}
	if p.EndDate != nil {
		snap[activity.FieldEndDate] = activity.Date(*p.EndDate)
	}
	if p.CompletionPercent != nil {
		snap[activity.FieldCompletion] = activity.Number(*p.CompletionPercent)
	}
	return snap
}

func pushNotification(record *activity.Record) {
	if record == nil || notifications == nil {
		return
	}
	notifications.Push(record.EntityTitle+": "+record.Description, record.ActorName)
}

// respondMutation confirms the entity mutation even when the activity
// append failed; the failure is reported in the body so it is never silent.
func respondMutation(c *gin.Context, status int, project models.Project, logErr error) {
	if logErr != nil {
		c.JSON(status, gin.H{
			"project":    project,
			"logWarning": "activity log write failed",
		})
		return
	}
	c.JSON(status, project)
}
