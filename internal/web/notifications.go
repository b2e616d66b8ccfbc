package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andrisoa/malsci/internal/domain"
)

type notificationsResponse struct {
	Notifications []domain.NotificationView `json:"notifications"`
	FetchedAt     time.Time                 `json:"fetchedAt"`
}

func GetNotifications(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, at := handler.store.Notifications()
		if views == nil {
			views = []domain.NotificationView{}
		}
		respond(w, http.StatusOK, notificationsResponse{Notifications: views, FetchedAt: at})
	}
}

// OpenNotification resolves where a clicked notification leads and drops it
// from the unread set. The mark-read call is queued in the background; even
// when the queue is down the intent is still returned.
func OpenNotification(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			badRequest(w, err)
			return
		}

		views, _ := handler.store.Notifications()
		var view *domain.NotificationView
		for i := range views {
			if views[i].ID == id {
				view = &views[i]
				break
			}
		}
		if view == nil {
			respond(w, http.StatusNotFound, errorBody{"not found"})
			return
		}

		intent := handler.router.Open(*view)
		handler.store.DropNotification(id)
		respond(w, http.StatusOK, intent)
	}
}
