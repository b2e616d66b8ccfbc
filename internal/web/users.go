package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/andrisoa/malsci/internal/domain"
)

// Profile serves the user page view. Profiles are assembled from up to six
// remote calls, so they go through the LRU cache; the per-key lock keeps
// concurrent requests for the same name from fetching twice.
func Profile(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		name := chi.URLParam(r, "name")

		if p, ok := handler.store.Profile(name); ok {
			respond(w, http.StatusOK, p)
			return
		}

		unlock := handler.store.LockProfile(name)
		defer unlock()

		// Another request may have populated the entry while we waited.
		if p, ok := handler.store.Profile(name); ok {
			respond(w, http.StatusOK, p)
			return
		}

		cred := credential(ctx)
		user, err := handler.api.UserByName(ctx, cred, name)
		if err != nil {
			respondError(w, err)
			return
		}

		p := domain.Profile{User: user}
		g, gctx := errgroup.WithContext(ctx)
		if viewer, ok := GetSession(ctx); ok && viewer.UserID != user.ID {
			g.Go(func() (err error) {
				p.IsFollowing, err = handler.api.IsFollowing(gctx, cred, user.ID)
				return
			})
		}
		g.Go(func() (err error) {
			p.Followers, err = handler.api.Followers(gctx, cred, user.ID)
			return
		})
		g.Go(func() (err error) {
			p.Following, err = handler.api.Following(gctx, cred, user.ID)
			return
		})
		g.Go(func() (err error) {
			p.FollowerCount, err = handler.api.FollowerCount(gctx, cred, user.ID)
			return
		})
		g.Go(func() (err error) {
			p.FollowingCount, err = handler.api.FollowingCount(gctx, cred, user.ID)
			return
		})
		g.Go(func() (err error) {
			p.Publications, err = handler.api.UserPublications(gctx, cred, user.ID)
			return
		})
		if err := g.Wait(); err != nil {
			respondError(w, err)
			return
		}

		p.FetchedAt = time.Now()
		handler.store.SetProfile(name, p)
		respond(w, http.StatusOK, p)
	}
}

// Me serves the logged-in user's own account record, fetched fresh from the
// platform rather than from the profile cache.
func Me(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess, _ := GetSession(ctx)

		user, err := handler.api.User(ctx, credential(ctx), sess.UserID)
		if err != nil {
			respondError(w, err)
			return
		}
		respond(w, http.StatusOK, user)
	}
}

// UpdateUser forwards an account edit to the platform and drops the stale
// cached profile under both the old and the new name.
func UpdateUser(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := userIDParam(r)
		if err != nil {
			badRequest(w, err)
			return
		}

		var u domain.User
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			badRequest(w, err)
			return
		}

		updated, err := handler.api.UpdateUser(ctx, credential(ctx), id, u)
		if err != nil {
			respondError(w, err)
			return
		}

		invalidateProfile(handler, r)
		handler.store.InvalidateProfile(updated.Name)
		respond(w, http.StatusOK, updated)
	}
}

// Follow and Unfollow mutate remote state directly, then drop the cached
// profile so the next view reflects the change. The optional username query
// parameter names the cache entry to invalidate.

func Follow(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		if err := handler.api.Follow(r.Context(), credential(r.Context()), id); err != nil {
			respondError(w, err)
			return
		}
		invalidateProfile(handler, r)
		respond(w, http.StatusNoContent, nil)
	}
}

func Unfollow(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		if err := handler.api.Unfollow(r.Context(), credential(r.Context()), id); err != nil {
			respondError(w, err)
			return
		}
		invalidateProfile(handler, r)
		respond(w, http.StatusNoContent, nil)
	}
}

func userIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func invalidateProfile(handler *Handler, r *http.Request) {
	if name := r.URL.Query().Get("username"); name != "" {
		handler.store.InvalidateProfile(name)
	}
}
