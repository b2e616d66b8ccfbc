// Package store is the shared view cache. Every screen reads the same
// entries instead of refetching on its own; polling passes replace the
// snapshots wholesale and mutations invalidate what they touched.
package store

import (
	"sync"
	"time"

	"codeberg.org/gruf/go-mutexes"
	"github.com/andrisoa/malsci/internal/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultProfileCap = 128

type Store struct {
	mu      sync.RWMutex
	feed    []domain.FeedItem
	feedAt  time.Time
	views   []domain.NotificationView
	viewsAt time.Time

	profiles *lru.Cache[string, domain.Profile]
	// locks serializes population of a single profile so two handlers
	// asking for the same user do not both hit the remote API.
	locks *mutexes.MutexMap
}

func New(profileCap int) (*Store, error) {
	if profileCap <= 0 {
		profileCap = DefaultProfileCap
	}
	profiles, err := lru.New[string, domain.Profile](profileCap)
	if err != nil {
		return nil, err
	}

	locks := mutexes.MutexMap{}
	return &Store{
		profiles: profiles,
		locks:    &locks,
	}, nil
}

// SetFeed replaces the feed snapshot. Items are never patched in place.
func (s *Store) SetFeed(items []domain.FeedItem, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = items
	s.feedAt = at
}

func (s *Store) Feed() ([]domain.FeedItem, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feed, s.feedAt
}

func (s *Store) SetNotifications(views []domain.NotificationView, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = views
	s.viewsAt = at
}

func (s *Store) Notifications() ([]domain.NotificationView, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.views, s.viewsAt
}

// DropNotification removes one view, as when the user opens it; the next
// polling pass reconciles with the server state.
func (s *Store) DropNotification(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy instead of filtering in place; earlier readers still hold the
	// old slice.
	views := make([]domain.NotificationView, 0, len(s.views))
	for _, v := range s.views {
		if v.ID != id {
			views = append(views, v)
		}
	}
	s.views = views
}

func (s *Store) Profile(name string) (domain.Profile, bool) {
	return s.profiles.Get(name)
}

func (s *Store) SetProfile(name string, p domain.Profile) {
	s.profiles.Add(name, p)
}

func (s *Store) InvalidateProfile(name string) {
	s.profiles.Remove(name)
}

// LockProfile acquires the population lock for a profile key.
func (s *Store) LockProfile(name string) (unlock func()) {
	return s.locks.Lock(name)
}
