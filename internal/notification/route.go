package notification

import (
	"net/url"

	"github.com/andrisoa/malsci/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	TargetArticle = "article"
	TargetUser    = "user"
	TargetNone    = "none"
)

// NavigationIntent tells the caller where a clicked notification leads.
type NavigationIntent struct {
	Target   string `json:"target"`
	Title    string `json:"title,omitempty"`
	Username string `json:"username,omitempty"`
	Path     string `json:"path,omitempty"`
}

// ReadMarker flags a record as read, typically by enqueueing the remote
// call rather than performing it inline.
type ReadMarker interface {
	MarkRead(id int64) error
}

// Route maps a view to its navigation intent: article notifications lead
// to the article by title, follows lead to the actor's page.
func Route(view domain.NotificationView) NavigationIntent {
	switch view.Kind {
	case domain.KindArticlePosted, domain.KindLiked, domain.KindCommented:
		if view.ArticleTitle == "" {
			return NavigationIntent{Target: TargetNone}
		}
		return NavigationIntent{
			Target: TargetArticle,
			Title:  view.ArticleTitle,
			Path:   "/notification?title=" + url.QueryEscape(view.ArticleTitle),
		}
	case domain.KindFollowed:
		if view.Actor == "" {
			return NavigationIntent{Target: TargetNone}
		}
		return NavigationIntent{
			Target:   TargetUser,
			Username: view.Actor,
			Path:     "/user?username=" + url.QueryEscape(view.Actor),
		}
	default:
		return NavigationIntent{Target: TargetNone}
	}
}

type Router struct {
	marker ReadMarker
}

func NewRouter(marker ReadMarker) *Router {
	return &Router{marker: marker}
}

// Open resolves the intent for a clicked notification and marks the record
// read. The mark-read side effect must never block navigation, so its
// failure is logged and dropped.
func (r *Router) Open(view domain.NotificationView) NavigationIntent {
	if err := r.marker.MarkRead(view.ID); err != nil {
		log.Error().Err(err).Int64("notification", view.ID).Msg("failed to enqueue mark-read")
	}
	return Route(view)
}
