package domain

import "time"

// Notification is the raw record served by the platform. The message is
// free text; Kind is only present on newer API versions, older records
// must be classified from the message itself.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	Kind      string    `json:"kind,omitempty"`
}

type NotificationKind string

const (
	KindArticlePosted NotificationKind = "article_posted"
	KindFollowed      NotificationKind = "followed"
	KindLiked         NotificationKind = "liked"
	KindCommented     NotificationKind = "commented"
	KindUnknown       NotificationKind = "unknown"
)

// NotificationView is the typed, navigable form of a notification, derived
// on every refresh pass. The latest set is also persisted as a snapshot so
// a restart comes back with the unread list intact.
type NotificationView struct {
	ID           int64            `json:"id"`
	Kind         NotificationKind `json:"kind"`
	Actor        string           `json:"actor,omitempty"`
	ArticleTitle string           `json:"articleTitle,omitempty"`
	RawMessage   string           `json:"rawMessage,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}
