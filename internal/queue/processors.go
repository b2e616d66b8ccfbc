package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

func (q *sideEffectsImpl) register() {
	markReadQueue := backlite.NewQueue[MarkReadJob](q.markRead())
	likeQueue := backlite.NewQueue[LikeJob](q.like())
	presenceQueue := backlite.NewQueue[PresenceJob](q.presence())

	q.queues.Register(markReadQueue)
	q.queues.Register(likeQueue)
	q.queues.Register(presenceQueue)
}

func (q *sideEffectsImpl) markRead() func(context.Context, MarkReadJob) error {
	return func(ctx context.Context, task MarkReadJob) error {
		err := q.api.MarkRead(ctx, q.creds(), task.NotificationID)
		if err != nil {
			log.Error().Err(err).Int64("notification", task.NotificationID).Msg("mark-read failed")
		}
		return err
	}
}

func (q *sideEffectsImpl) like() func(context.Context, LikeJob) error {
	return func(ctx context.Context, task LikeJob) error {
		err := q.api.ToggleLike(ctx, q.creds(), task.ArticleID)
		if err != nil {
			log.Error().Err(err).Int64("article", task.ArticleID).Msg("like toggle failed")
		}
		return err
	}
}

func (q *sideEffectsImpl) presence() func(context.Context, PresenceJob) error {
	return func(ctx context.Context, task PresenceJob) error {
		return q.api.Presence(ctx, q.creds(), task.UserID)
	}
}
