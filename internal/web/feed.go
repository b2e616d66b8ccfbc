package web

import (
	"net/http"
	"time"

	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/feed"
	"github.com/andrisoa/malsci/internal/sync"
	"github.com/andrisoa/malsci/internal/validate"
)

type feedResponse struct {
	Items     []domain.FeedItem `json:"items"`
	FetchedAt time.Time         `json:"fetchedAt"`
}

// GetFeed serves the cached snapshot, filtered client-side. It never talks
// to the remote API; the poller keeps the snapshot fresh.
func GetFeed(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("title")
		if err := validate.Query(query); err != nil {
			badRequest(w, err)
			return
		}

		filter := feed.Filter{
			Query:  query,
			Status: domain.Status(r.URL.Query().Get("status")),
		}

		items, at := handler.store.Feed()
		if filter != (feed.Filter{}) {
			filtered := make([]domain.FeedItem, 0, len(items))
			for _, item := range items {
				if filter.Match(item) {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}
		if items == nil {
			items = []domain.FeedItem{}
		}

		respond(w, http.StatusOK, feedResponse{Items: items, FetchedAt: at})
	}
}

type statusResponse struct {
	Feed          *domain.PassRecord `json:"feed,omitempty"`
	Notifications *domain.PassRecord `json:"notifications,omitempty"`
}

// FeedStatus reports the last recorded outcome of each poller.
func FeedStatus(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var res statusResponse

		if rec, err := handler.sync.Status(ctx, sync.FeedPass); err == nil {
			res.Feed = &rec
		}
		if rec, err := handler.sync.Status(ctx, sync.NotificationPass); err == nil {
			res.Notifications = &rec
		}

		respond(w, http.StatusOK, res)
	}
}
