package web

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/andrisoa/malsci/internal/domain"
)

// Statistics aggregates the three platform counters for the admin
// dashboard.
func Statistics(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cred := credential(ctx)

		var stats domain.Statistics
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			stats.UserCount, err = handler.api.UserCount(gctx, cred)
			return
		})
		g.Go(func() (err error) {
			stats.ArticleCount, err = handler.api.ArticleCount(gctx, cred)
			return
		})
		g.Go(func() (err error) {
			stats.MostLiked, err = handler.api.MostLiked(gctx, cred)
			return
		})
		if err := g.Wait(); err != nil {
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, stats)
	}
}

// AdminPublications lists every publication, optionally narrowed to one
// review status.
func AdminPublications(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pubs, err := handler.api.Publications(r.Context(), credential(r.Context()))
		if err != nil {
			respondError(w, err)
			return
		}

		if status := domain.Status(r.URL.Query().Get("status")); status != "" {
			filtered := pubs[:0]
			for _, pub := range pubs {
				if pub.Status == status {
					filtered = append(filtered, pub)
				}
			}
			pubs = filtered
		}
		if pubs == nil {
			pubs = []domain.Publication{}
		}
		respond(w, http.StatusOK, pubs)
	}
}

func ApproveArticle(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := articleIDParam(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		if err := handler.api.ApproveArticle(r.Context(), credential(r.Context()), id); err != nil {
			respondError(w, err)
			return
		}
		respond(w, http.StatusNoContent, nil)
	}
}

func RejectArticle(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := articleIDParam(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		if err := handler.api.RejectArticle(r.Context(), credential(r.Context()), id); err != nil {
			respondError(w, err)
			return
		}
		respond(w, http.StatusNoContent, nil)
	}
}
