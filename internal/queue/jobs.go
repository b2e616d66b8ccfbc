package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	MarkReadQueue = "MarkRead"
	LikeQueue     = "Like"
	PresenceQueue = "Presence"
)

type MarkReadJob struct {
	NotificationID int64
}

func (j MarkReadJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        MarkReadQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}

type LikeJob struct {
	ArticleID int64
}

func (j LikeJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        LikeQueue,
		MaxAttempts: 3,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: true,
		},
	}
}

type PresenceJob struct {
	UserID int64
}

// Presence pings are worthless once stale, so they get a single attempt.
func (j PresenceJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        PresenceQueue,
		MaxAttempts: 1,
		Timeout:     5 * time.Second,
	}
}
