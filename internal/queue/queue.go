// Package queue runs remote side effects as background tasks. Mark-read,
// like toggles and presence pings go through here so a slow or flaky remote
// API never blocks the caller; backlite persists the tasks and retries them.
package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"

	"github.com/andrisoa/malsci/internal/session"
)

//go:generate mockgen -source=queue.go -destination=../mocks/queue.go -package=mocks

// Remote is the slice of the API client the processors need.
type Remote interface {
	MarkRead(ctx context.Context, cred session.Credential, id int64) error
	ToggleLike(ctx context.Context, cred session.Credential, articleID int64) error
	Presence(ctx context.Context, cred session.Credential, userID int64) error
}

// SideEffects enqueues remote mutations. All methods return as soon as the
// task is persisted; delivery happens in the background.
type SideEffects interface {
	MarkRead(id int64) error
	Like(articleID int64) error
	Presence(userID int64) error
}

type sideEffectsImpl struct {
	queues *backlite.Client
	api    Remote
	// creds is read at processing time, not enqueue time, so a task that
	// survives a restart uses the current token.
	creds func() session.Credential
}

func New(ctx context.Context, api Remote, creds func() session.Credential, blClient *backlite.Client) SideEffects {
	q := &sideEffectsImpl{
		queues: blClient,
		api:    api,
		creds:  creds,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *sideEffectsImpl) MarkRead(id int64) error {
	log.Debug().Int64("notification", id).Msg("enqueing mark-read task")
	task := MarkReadJob{
		NotificationID: id,
	}
	_, err := q.queues.Add(task).Save()
	return err
}

func (q *sideEffectsImpl) Like(articleID int64) error {
	log.Debug().Int64("article", articleID).Msg("enqueing like task")
	task := LikeJob{
		ArticleID: articleID,
	}
	_, err := q.queues.Add(task).Save()
	return err
}

func (q *sideEffectsImpl) Presence(userID int64) error {
	task := PresenceJob{
		UserID: userID,
	}
	_, err := q.queues.Add(task).Save()
	return err
}
