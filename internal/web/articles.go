package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/validate"
)

func CreateArticle(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			badRequest(w, err)
			return
		}
		if err := validate.Draft(draft.Title, draft.Content); err != nil {
			badRequest(w, err)
			return
		}

		pub, err := handler.api.CreateArticle(r.Context(), credential(r.Context()), draft)
		if err != nil {
			respondError(w, err)
			return
		}
		respond(w, http.StatusCreated, pub)
	}
}

func UpdateArticle(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := articleIDParam(r)
		if err != nil {
			badRequest(w, err)
			return
		}

		var draft domain.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			badRequest(w, err)
			return
		}
		if err := validate.Draft(draft.Title, draft.Content); err != nil {
			badRequest(w, err)
			return
		}

		pub, err := handler.api.UpdateArticle(r.Context(), credential(r.Context()), id, draft)
		if err != nil {
			respondError(w, err)
			return
		}
		respond(w, http.StatusOK, pub)
	}
}

type commentRequest struct {
	Content string `json:"content"`
}

func AddComment(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := articleIDParam(r)
		if err != nil {
			badRequest(w, err)
			return
		}

		var form commentRequest
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			badRequest(w, err)
			return
		}
		if err := validate.Comment(form.Content); err != nil {
			badRequest(w, err)
			return
		}

		comment, err := handler.api.AddComment(r.Context(), credential(r.Context()), id, form.Content)
		if err != nil {
			respondError(w, err)
			return
		}
		respond(w, http.StatusCreated, comment)
	}
}

// Like enqueues the toggle and answers immediately; the next feed pass
// reconciles the counters with the server.
func Like(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := articleIDParam(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		if err := handler.effects.Like(id); err != nil {
			respondError(w, err)
			return
		}
		respond(w, http.StatusAccepted, nil)
	}
}

func SearchArticles(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("title")
		if err := validate.Title(title); err != nil {
			badRequest(w, err)
			return
		}

		pubs, err := handler.api.SearchByTitle(r.Context(), credential(r.Context()), title)
		if err != nil {
			respondError(w, err)
			return
		}
		if pubs == nil {
			pubs = []domain.Publication{}
		}
		respond(w, http.StatusOK, pubs)
	}
}

func articleIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
