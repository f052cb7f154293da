// Package analytics derives the dashboard and chart numbers from an
// in-memory project list. Everything here is a pure reduction; the handlers
// load the projects once and pass them in.
package analytics

import "taskmaster/internal/models"

type StatusCount struct {
	Status models.ProjectStatus `json:"status"`
	Count  int                  `json:"count"`
}

type DepartmentStat struct {
	Department string  `json:"department"`
	Count      int     `json:"count"`
	Budget     float64 `json:"budget"`
}

type Summary struct {
	TotalProjects int              `json:"totalProjects"`
	ByStatus      []StatusCount    `json:"byStatus"`
	ByDepartment  []DepartmentStat `json:"byDepartment"`
	TotalBudget   float64          `json:"totalBudget"`
	TotalAwarded  float64          `json:"totalAwarded"`
	AvgCompletion float64          `json:"avgCompletion"`
}

// Summarize computes the chart aggregates. Status buckets follow
// models.StatusOrder; department buckets appear in first-seen order.
func Summarize(projects []models.Project) Summary {
	sum := Summary{TotalProjects: len(projects)}

	statusCounts := map[models.ProjectStatus]int{}
	deptIndex := map[string]int{}
	var completionSum float64
	var completionN int

	for _, p := range projects {
		statusCounts[p.Status]++

		dept := p.Department.Name
		if dept == "" {
			dept = "Unassigned"
		}
		i, ok := deptIndex[dept]
		if !ok {
			i = len(sum.ByDepartment)
			deptIndex[dept] = i
			sum.ByDepartment = append(sum.ByDepartment, DepartmentStat{Department: dept})
		}
		sum.ByDepartment[i].Count++

		if p.Budget != nil {
			sum.TotalBudget += *p.Budget
			sum.ByDepartment[i].Budget += *p.Budget
		}
		if p.AwardAmount != nil {
			sum.TotalAwarded += *p.AwardAmount
		}
		if p.CompletionPercent != nil {
			completionSum += *p.CompletionPercent
			completionN++
		}
	}

	for _, st := range models.StatusOrder {
		sum.ByStatus = append(sum.ByStatus, StatusCount{Status: st, Count: statusCounts[st]})
	}
	if completionN > 0 {
		sum.AvgCompletion = completionSum / float64(completionN)
	}
	return sum
}

type StatusColumn struct {
	Status   models.ProjectStatus `json:"status"`
	Projects []models.Project     `json:"projects"`
}

// StatusColumns buckets projects into dashboard columns, one per status in
// display order, preserving the input order inside each column.
func StatusColumns(projects []models.Project) []StatusColumn {
	columns := make([]StatusColumn, len(models.StatusOrder))
	index := map[models.ProjectStatus]int{}
	for i, st := range models.StatusOrder {
		columns[i] = StatusColumn{Status: st, Projects: []models.Project{}}
		index[st] = i
	}
	for _, p := range projects {
		if i, ok := index[p.Status]; ok {
			columns[i].Projects = append(columns[i].Projects, p)
		}
	}
	return columns
}
