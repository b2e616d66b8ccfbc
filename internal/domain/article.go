package domain

import "time"

type Status string

const (
	StatusUnderReview Status = "under_review"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
)

// Publication is an article as returned by the platform, before enrichment.
type Publication struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    UserRef   `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	// LikeCount uses the platform's historical field name on the wire.
	LikeCount int       `json:"likeCounts"`
	Status    Status    `json:"status"`
	Comments  []Comment `json:"comments,omitempty"`
}

// FeedItem is a publication merged with the three enrichment values fetched
// per record. Items are replaced wholesale on every refresh; nothing patches
// an existing item in place.
type FeedItem struct {
	Publication
	HasLiked            bool `json:"hasLiked"`
	AuthorFollowerCount int  `json:"followerCount"`
	AuthorOnline        bool `json:"userStatus"`
}

// Draft is a new or updated article submitted by the current user.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
