package domain

import "time"

// UserRef identifies a user as embedded in publications and comments.
// Immutable once fetched within a refresh pass.
type UserRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type User struct {
	UserRef
	Email string `json:"email,omitempty"`
	Bio   string `json:"bio,omitempty"`
	Admin bool   `json:"admin,omitempty"`
}

// Profile is the view assembled for a user page: the user plus their
// follower/following lists, counts and publications.
type Profile struct {
	User           User          `json:"user"`
	Followers      []UserRef     `json:"followers"`
	Following      []UserRef     `json:"following"`
	FollowerCount  int           `json:"followerCount"`
	FollowingCount int           `json:"followingCount"`
	IsFollowing    bool          `json:"isFollowing"`
	Publications   []Publication `json:"publications"`
	FetchedAt      time.Time     `json:"fetchedAt"`
}
