package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/andrisoa/malsci/internal/session"
	"github.com/andrisoa/malsci/internal/validate"
)

// Session is the request-scoped identity derived from the cookie.
type Session struct {
	UserID int64
	Token  string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

// credential returns the bearer token of the request's session, empty when
// anonymous.
func credential(ctx context.Context) session.Credential {
	s, _ := GetSession(ctx)
	return session.Credential(s.Token)
}

// SessionMiddleware recovers the identity from the cookie session. The user
// id is re-derived from the token, so the cookie never carries more than the
// credential itself.
func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := handler.SessionManager.Load(r)
			cred, err := session.FromCookie(sess)
			if err == nil {
				if id, err := cred.UserID(); err == nil {
					ctx := r.Context()
					ctx = context.WithValue(ctx, key{}, Session{UserID: id, Token: string(cred)})
					r = r.WithContext(ctx)
				}
			}

			h.ServeHTTP(w, r)
		})
	}
}

// AuthenticatedMiddleware rejects anonymous requests up front instead of
// letting them travel to the remote API and fail there.
func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetSession(r.Context()); ok {
				h.ServeHTTP(w, r)
				return
			}
			respond(w, http.StatusUnauthorized, errorBody{"unauthenticated"})
		})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	LoggedIn bool  `json:"loggedIn"`
	UserID   int64 `json:"userId"`
}

func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := handler.SessionManager.Load(r)

		var form loginRequest
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			badRequest(w, err)
			return
		}
		if err := validate.LoginForm(form.Email, form.Password); err != nil {
			badRequest(w, err)
			return
		}

		cred, err := handler.api.Login(ctx, form.Email, form.Password)
		if err != nil {
			respondError(w, err)
			return
		}

		id, err := cred.UserID()
		if err != nil {
			log.Error().Err(err).Msg("platform issued an undecodable token")
			respondError(w, err)
			return
		}

		err = sess.PutString(w, session.TokenKey, string(cred))
		if err != nil {
			respondError(w, err)
			return
		}

		// Hand the fresh token to the pollers and the queue processors.
		handler.creds.Set(cred)
		respond(w, http.StatusOK, loginResponse{LoggedIn: true, UserID: id})
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := handler.SessionManager.Load(r)
		if err := sess.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
		// Back to anonymous polling.
		handler.creds.Set("")
		respond(w, http.StatusNoContent, nil)
	}
}
