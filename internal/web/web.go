// Package web serves the derived view state as JSON on the local listen
// address. Handlers read the shared store where a poller keeps it fresh and
// only talk to the remote API for mutations and uncached lookups.
package web

import (
	"context"

	"github.com/alexedwards/scs"

	"github.com/andrisoa/malsci/internal/config"
	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/notification"
	"github.com/andrisoa/malsci/internal/queue"
	"github.com/andrisoa/malsci/internal/session"
	"github.com/andrisoa/malsci/internal/store"
)

const (
	LoginRoute  = "/login"
	LogoutRoute = "/logout"
)

// Remote is the slice of the API client the handlers consume.
type Remote interface {
	Login(ctx context.Context, email, password string) (session.Credential, error)
	User(ctx context.Context, cred session.Credential, id int64) (domain.User, error)
	UserByName(ctx context.Context, cred session.Credential, name string) (domain.User, error)
	UpdateUser(ctx context.Context, cred session.Credential, id int64, u domain.User) (domain.User, error)
	UserPublications(ctx context.Context, cred session.Credential, userID int64) ([]domain.Publication, error)
	Followers(ctx context.Context, cred session.Credential, userID int64) ([]domain.UserRef, error)
	Following(ctx context.Context, cred session.Credential, userID int64) ([]domain.UserRef, error)
	FollowerCount(ctx context.Context, cred session.Credential, userID int64) (int, error)
	FollowingCount(ctx context.Context, cred session.Credential, userID int64) (int, error)
	Follow(ctx context.Context, cred session.Credential, userID int64) error
	Unfollow(ctx context.Context, cred session.Credential, userID int64) error
	IsFollowing(ctx context.Context, cred session.Credential, userID int64) (bool, error)
	CreateArticle(ctx context.Context, cred session.Credential, draft domain.Draft) (domain.Publication, error)
	UpdateArticle(ctx context.Context, cred session.Credential, id int64, draft domain.Draft) (domain.Publication, error)
	AddComment(ctx context.Context, cred session.Credential, articleID int64, content string) (domain.Comment, error)
	SearchByTitle(ctx context.Context, cred session.Credential, title string) ([]domain.Publication, error)
	ApproveArticle(ctx context.Context, cred session.Credential, id int64) error
	RejectArticle(ctx context.Context, cred session.Credential, id int64) error
	Publications(ctx context.Context, cred session.Credential) ([]domain.Publication, error)
	UserCount(ctx context.Context, cred session.Credential) (int, error)
	ArticleCount(ctx context.Context, cred session.Credential) (int, error)
	MostLiked(ctx context.Context, cred session.Credential) ([]domain.Publication, error)
}

// Sync reports the outcome of the most recent polling passes.
type Sync interface {
	Status(ctx context.Context, name string) (domain.PassRecord, error)
}

type Handler struct {
	Config  *config.Configuration
	api     Remote
	store   *store.Store
	effects queue.SideEffects
	router  *notification.Router
	sync    Sync
	// creds is the shared credential the pollers and queue processors read;
	// Login replaces it so their next pass runs as the new user.
	creds          *session.Holder
	SessionManager *scs.Manager
}

func New(config *config.Configuration, api Remote, st *store.Store, effects queue.SideEffects, router *notification.Router, sync Sync, creds *session.Holder, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		api:            api,
		store:          st,
		effects:        effects,
		router:         router,
		sync:           sync,
		creds:          creds,
		SessionManager: manager,
	}
}
