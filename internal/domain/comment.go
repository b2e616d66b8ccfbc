package domain

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	Author    UserRef   `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	LikeCount int       `json:"likeCounts"`
}
