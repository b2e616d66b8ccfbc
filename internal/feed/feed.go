// Package feed builds the enriched activity feed: one listing call, three
// enrichment calls per publication, merged into feed items.
package feed

import (
	"context"
	"sort"
	"strings"

	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/session"
	"golang.org/x/sync/errgroup"
)

// EnrichmentLimit caps the number of enrichment requests in flight during
// one aggregation pass so a large feed does not open hundreds of
// connections at once.
const EnrichmentLimit = 8

// Source is the slice of the remote API the aggregator consumes.
//
//go:generate mockgen -destination=../mocks/feed.go -package=mocks github.com/andrisoa/malsci/internal/feed Source
type Source interface {
	Publications(ctx context.Context, cred session.Credential) ([]domain.Publication, error)
	FollowedPublications(ctx context.Context, cred session.Credential) ([]domain.Publication, error)
	UserPublications(ctx context.Context, cred session.Credential, userID int64) ([]domain.Publication, error)
	HasLiked(ctx context.Context, cred session.Credential, articleID int64) (bool, error)
	FollowerCount(ctx context.Context, cred session.Credential, userID int64) (int, error)
	IsActive(ctx context.Context, cred session.Credential, userID int64) (bool, error)
}

// Scope selects the primary listing of an aggregation pass.
type Scope struct {
	// Followed restricts the listing to authors the current user follows.
	Followed bool
	// UserID, if not zero, lists a single author instead.
	UserID int64
}

// Filter is the client-side predicate applied after merging. The zero
// value matches everything.
type Filter struct {
	// Query is matched against the title and the author name,
	// case-insensitively.
	Query string
	// Status, if set, must equal the item's review status.
	Status domain.Status
}

func (f Filter) Match(item domain.FeedItem) bool {
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(item.Title), q) ||
		strings.Contains(strings.ToLower(item.Author.Name), q)
}

type Aggregator struct {
	source Source
}

func New(source Source) *Aggregator {
	return &Aggregator{source: source}
}

// Fetch lists the publications in scope, enriches every record and returns
// the merged items, newest first. A failing enrichment call fails the whole
// pass; the caller keeps its previous state in that case.
func (a *Aggregator) Fetch(ctx context.Context, cred session.Credential, scope Scope, filter Filter) ([]domain.FeedItem, error) {
	pubs, err := a.list(ctx, cred, scope)
	if err != nil {
		return nil, err
	}

	items := make([]domain.FeedItem, len(pubs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(EnrichmentLimit)

	// Each record's enrichment results land at the record's own index, so
	// the merge is deterministic regardless of arrival order.
	for i, pub := range pubs {
		items[i].Publication = pub

		g.Go(func() error {
			liked, err := a.source.HasLiked(gctx, cred, pub.ID)
			if err != nil {
				return err
			}
			items[i].HasLiked = liked
			return nil
		})
		g.Go(func() error {
			count, err := a.source.FollowerCount(gctx, cred, pub.Author.ID)
			if err != nil {
				return err
			}
			items[i].AuthorFollowerCount = count
			return nil
		})
		g.Go(func() error {
			online, err := a.source.IsActive(gctx, cred, pub.Author.ID)
			if err != nil {
				return err
			}
			items[i].AuthorOnline = online
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if filter == (Filter{}) {
		return items, nil
	}

	filtered := items[:0]
	for _, item := range items {
		if filter.Match(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (a *Aggregator) list(ctx context.Context, cred session.Credential, scope Scope) ([]domain.Publication, error) {
	switch {
	case scope.UserID != 0:
		return a.source.UserPublications(ctx, cred, scope.UserID)
	case scope.Followed:
		return a.source.FollowedPublications(ctx, cred)
	default:
		return a.source.Publications(ctx, cred)
	}
}
