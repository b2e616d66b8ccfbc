// Package sync owns the pollers. One instance refreshes the feed and one
// refreshes notifications; results land in the shared store under the
// generation rule and every good pass is persisted so a restart comes back
// with the last known state.
package sync

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andrisoa/malsci/internal/db"
	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/feed"
	"github.com/andrisoa/malsci/internal/notification"
	"github.com/andrisoa/malsci/internal/poll"
	"github.com/andrisoa/malsci/internal/session"
	"github.com/andrisoa/malsci/internal/store"
)

const (
	FeedPass         = "feed"
	NotificationPass = "notifications"
)

//go:generate mockgen -source=sync.go -destination=../mocks/sync.go -package=mocks

type FeedFetcher interface {
	Fetch(ctx context.Context, cred session.Credential, scope feed.Scope, filter feed.Filter) ([]domain.FeedItem, error)
}

type NotificationSource interface {
	Notifications(ctx context.Context, cred session.Credential, userID int64) ([]domain.Notification, error)
}

// Presence enqueues the heartbeat that keeps the user listed as online.
type Presence interface {
	Presence(userID int64) error
}

type Syncer struct {
	feed     FeedFetcher
	source   NotificationSource
	store    *store.Store
	db       db.DB
	presence Presence
	// creds is consulted on every pass, so a login that replaces the
	// credential takes effect on the next tick.
	creds func() session.Credential

	feedPoll     *poll.Handle
	notifPoll    *poll.Handle
	presencePoll *poll.Handle
}

func New(f FeedFetcher, source NotificationSource, st *store.Store, d db.DB, presence Presence, creds func() session.Credential) *Syncer {
	return &Syncer{
		feed:     f,
		source:   source,
		store:    st,
		db:       d,
		presence: presence,
		creds:    creds,
	}
}

// Start warms the store from the persisted snapshots and launches the
// pollers.
func (s *Syncer) Start(ctx context.Context, pollInterval, presenceInterval time.Duration) {
	s.restore(ctx)

	s.feedPoll = poll.New(pollInterval, s.feedPass)
	s.notifPoll = poll.New(pollInterval, s.notificationPass)
	s.presencePoll = poll.New(presenceInterval, s.presencePass)

	s.feedPoll.Run(ctx)
	s.notifPoll.Run(ctx)
	s.presencePoll.Run(ctx)
	log.Info().
		Dur("interval", pollInterval).
		Msg("started pollers")
}

// Stop cancels all pollers. When it returns, no pass will mutate the store
// anymore.
func (s *Syncer) Stop() {
	s.feedPoll.Cancel()
	s.notifPoll.Cancel()
	s.presencePoll.Cancel()
}

func (s *Syncer) restore(ctx context.Context) {
	items, at, err := s.db.LoadFeed(ctx)
	switch {
	case err == nil:
		s.store.SetFeed(items, at)
		log.Info().Time("fetched at", at).Msg("restored feed snapshot")
	case !errors.Is(err, db.ErrNotFound):
		log.Error().Err(err).Msg("failed to restore feed snapshot")
	}

	views, at, err := s.db.LoadNotifications(ctx)
	switch {
	case err == nil:
		s.store.SetNotifications(views, at)
	case !errors.Is(err, db.ErrNotFound):
		log.Error().Err(err).Msg("failed to restore notification snapshot")
	}
}

func (s *Syncer) feedPass(ctx context.Context, gen uint64) {
	started := time.Now()
	// The feed view follows the dashboard: articles from followed authors,
	// not the global listing.
	items, err := s.feed.Fetch(ctx, s.creds(), feed.Scope{Followed: true}, feed.Filter{})
	s.record(ctx, FeedPass, started, err)
	if err != nil {
		// The previous snapshot stays in place.
		log.Error().Err(err).Msg("feed pass failed")
		return
	}

	at := time.Now()
	if !s.feedPoll.Apply(gen, func() { s.store.SetFeed(items, at) }) {
		log.Debug().Uint64("generation", gen).Msg("discarded stale feed pass")
		return
	}
	if err := s.db.SaveFeed(ctx, items, at); err != nil {
		log.Error().Err(err).Msg("failed to persist feed snapshot")
	}
}

func (s *Syncer) notificationPass(ctx context.Context, gen uint64) {
	started := time.Now()
	cred := s.creds()
	userID, err := cred.UserID()
	if err != nil {
		// Anonymous: there is nobody to fetch notifications for yet.
		s.record(ctx, NotificationPass, started, err)
		return
	}

	recs, err := s.source.Notifications(ctx, cred, userID)
	s.record(ctx, NotificationPass, started, err)
	if err != nil {
		log.Error().Err(err).Msg("notification pass failed")
		return
	}

	views := notification.ClassifyAll(recs)
	at := time.Now()
	if !s.notifPoll.Apply(gen, func() { s.store.SetNotifications(views, at) }) {
		log.Debug().Uint64("generation", gen).Msg("discarded stale notification pass")
		return
	}
	if err := s.db.SaveNotifications(ctx, views, at); err != nil {
		log.Error().Err(err).Msg("failed to persist notification snapshot")
	}
}

func (s *Syncer) presencePass(ctx context.Context, gen uint64) {
	userID, err := s.creds().UserID()
	if err != nil {
		return
	}
	if err := s.presence.Presence(userID); err != nil {
		log.Error().Err(err).Msg("failed to enqueue presence ping")
	}
}

func (s *Syncer) record(ctx context.Context, name string, started time.Time, passErr error) {
	rec := domain.PassRecord{
		Name:       name,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if passErr != nil {
		rec.Error = passErr.Error()
	}
	if err := s.db.RecordPass(ctx, rec); err != nil {
		log.Error().Err(err).Str("pass", name).Msg("failed to record pass")
	}
}

// Status reports the outcome of the most recent pass with the given name.
func (s *Syncer) Status(ctx context.Context, name string) (domain.PassRecord, error) {
	return s.db.LastPass(ctx, name)
}
