package handlers

import (
	"net/http"
	"time"

	"taskmaster/internal/activity"

	"github.com/gin-gonic/gin"
)

//
// ACTIVITY FEED
//

// ListActivity returns the global feed, filtered by query params:
// search, action, actor, date (YYYY-MM-DD) and group (none|date|entity).
func ListActivity(c *gin.Context) {
	records, ok := loadFeed(c)
	if !ok {
		return
	}

	mode := activity.GroupMode(c.DefaultQuery("group", string(activity.GroupNone)))
	switch mode {
	case activity.GroupNone:
		c.JSON(http.StatusOK, records)
	case activity.GroupByDate, activity.GroupByEntity:
		c.JSON(http.StatusOK, activity.GroupBy(records, mode, time.Now()))
	default:
		respondError(c, http.StatusBadRequest, "invalid group mode")
	}
}

// ProjectHistory returns one project's records, newest first. An empty
// list means "no activity yet", which is distinct from the 503 a store
// failure produces.
func ProjectHistory(c *gin.Context) {
	project, ok := loadProject(c)
	if !ok {
		return
	}

	records, err := activityStore.ListByEntity(project.ID)
	if err != nil {
		respondActivityErr(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ExportActivity streams the filtered feed as a CSV attachment.
func ExportActivity(c *gin.Context) {
	records, ok := loadFeed(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", `attachment; filename="activity.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(activity.ExportCSV(records)))
}

func loadFeed(c *gin.Context) ([]activity.Record, bool) {
	records, err := activityStore.ListAll()
	if err != nil {
		respondActivityErr(c, err)
		return nil, false
	}

	opts := activity.FilterOptions{
		SearchTerm: c.Query("search"),
		Action:     activity.Action(c.Query("action")),
		ActorName:  c.Query("actor"),
	}
	if dateStr := c.Query("date"); dateStr != "" {
		t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date")
			return nil, false
		}
		opts.OnDate = &t
	}

	return activity.Filter(records, opts), true
}
