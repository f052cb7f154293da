package handlers

import (
	"errors"
	"net/http"

	"taskmaster/internal/activity"
	"taskmaster/internal/models"
	"taskmaster/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	activityStore *activity.Store
	recorder      *activity.Recorder
	notifications *notify.Store

	log = logrus.StandardLogger()
)

// Init wires the shared collaborators before the router starts serving.
func Init(store *activity.Store, rec *activity.Recorder, n *notify.Store) {
	activityStore = store
	recorder = rec
	notifications = n
}

// currentUser returns the user put in place by middleware.InjectUser.
func currentUser(c *gin.Context) (models.User, bool) {
	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			return u, true
		}
	}
	return models.User{}, false
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// respondActivityErr maps activity errors onto HTTP statuses: a rejected
// payload is the caller's fault, a store failure is a 503 so the UI can
// show "failed to load" instead of an empty trail.
func respondActivityErr(c *gin.Context, err error) {
	var verr *activity.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, activity.ErrStoreUnavailable):
		respondError(c, http.StatusServiceUnavailable, "activity log unavailable")
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
