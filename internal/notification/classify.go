// Package notification turns the platform's free-text notification records
// into typed, navigable views.
//
// Newer API versions attach a structured kind to each record and that kind
// always wins. The text matching below exists for records that predate the
// discriminant and follows the platform's historical message templates; it
// is deliberately kept behind Classify so it can disappear once the legacy
// records age out.
package notification

import (
	"regexp"
	"strings"

	"github.com/andrisoa/malsci/internal/domain"
)

var (
	postedRe    = regexp.MustCompile(`^(.*?) has posted a new article: (.+)$`)
	followedRe  = regexp.MustCompile(`^(.*?) started following you`)
	likedRe     = regexp.MustCompile(`^(.*?) liked your article: (.+)$`)
	commentedRe = regexp.MustCompile(`^(.*?) commented on your article about (.+)$`)
)

// Classify derives the typed view of a raw record. It never fails: a
// message that matches no template, or matches one but cannot be parsed,
// becomes an Unknown view carrying the raw text.
func Classify(rec domain.Notification) domain.NotificationView {
	view := domain.NotificationView{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
	}

	if kind, ok := knownKind(rec.Kind); ok {
		view.Kind = kind
		if !extract(&view, rec.Message) {
			view.RawMessage = rec.Message
		}
		return view
	}

	// Legacy records: the template predicates are checked in a fixed
	// priority order; the first match wins.
	switch {
	case strings.Contains(rec.Message, "has posted a new article:"):
		view.Kind = domain.KindArticlePosted
	case strings.Contains(rec.Message, "started following you"):
		view.Kind = domain.KindFollowed
	case strings.Contains(rec.Message, "liked your article"):
		view.Kind = domain.KindLiked
	case strings.Contains(rec.Message, "commented on your article about"):
		view.Kind = domain.KindCommented
	default:
		view.Kind = domain.KindUnknown
		view.RawMessage = rec.Message
		return view
	}

	if !extract(&view, rec.Message) {
		view.Kind = domain.KindUnknown
		view.Actor = ""
		view.ArticleTitle = ""
		view.RawMessage = rec.Message
	}
	return view
}

// ClassifyAll derives views for a whole refresh pass, skipping records
// already read.
func ClassifyAll(recs []domain.Notification) []domain.NotificationView {
	views := make([]domain.NotificationView, 0, len(recs))
	for _, rec := range recs {
		if rec.IsRead {
			continue
		}
		views = append(views, Classify(rec))
	}
	return views
}

func knownKind(kind string) (domain.NotificationKind, bool) {
	switch domain.NotificationKind(kind) {
	case domain.KindArticlePosted, domain.KindFollowed, domain.KindLiked, domain.KindCommented:
		return domain.NotificationKind(kind), true
	}
	return domain.KindUnknown, false
}

// extract pulls the actor and, where the template carries one, the article
// title out of the message. Reports whether the message fit the template.
func extract(view *domain.NotificationView, message string) bool {
	var re *regexp.Regexp
	switch view.Kind {
	case domain.KindArticlePosted:
		re = postedRe
	case domain.KindFollowed:
		re = followedRe
	case domain.KindLiked:
		re = likedRe
	case domain.KindCommented:
		re = commentedRe
	default:
		return false
	}

	m := re.FindStringSubmatch(message)
	if m == nil {
		return false
	}

	view.Actor = strings.TrimSpace(m[1])
	if len(m) > 2 {
		view.ArticleTitle = strings.TrimSpace(m[2])
	}
	return view.Actor != ""
}
