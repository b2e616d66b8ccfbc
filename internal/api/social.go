package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/session"
)

// ToggleLike flips the current user's like on an article.
func (c *Client) ToggleLike(ctx context.Context, cred session.Credential, articleID int64) error {
	return c.do(ctx, cred, http.MethodPost, "/likes/"+strconv.FormatInt(articleID, 10), nil, nil)
}

func (c *Client) HasLiked(ctx context.Context, cred session.Credential, articleID int64) (bool, error) {
	var liked bool
	err := c.get(ctx, cred, "/likes/check/"+strconv.FormatInt(articleID, 10), &liked)
	return liked, err
}

func (c *Client) MostLiked(ctx context.Context, cred session.Credential) ([]domain.Publication, error) {
	var pubs []domain.Publication
	err := c.get(ctx, cred, "/likes/statistics/most-liked", &pubs)
	return pubs, err
}

func (c *Client) Followers(ctx context.Context, cred session.Credential, userID int64) ([]domain.UserRef, error) {
	var users []domain.UserRef
	err := c.get(ctx, cred, "/follow/"+strconv.FormatInt(userID, 10)+"/followers", &users)
	return users, err
}

func (c *Client) Following(ctx context.Context, cred session.Credential, userID int64) ([]domain.UserRef, error) {
	var users []domain.UserRef
	err := c.get(ctx, cred, "/follow/"+strconv.FormatInt(userID, 10)+"/following", &users)
	return users, err
}

func (c *Client) FollowerCount(ctx context.Context, cred session.Credential, userID int64) (int, error) {
	var count int
	err := c.get(ctx, cred, "/follow/"+strconv.FormatInt(userID, 10)+"/followers/count", &count)
	return count, err
}

func (c *Client) FollowingCount(ctx context.Context, cred session.Credential, userID int64) (int, error) {
	var count int
	err := c.get(ctx, cred, "/follow/"+strconv.FormatInt(userID, 10)+"/following/count", &count)
	return count, err
}

func (c *Client) Follow(ctx context.Context, cred session.Credential, userID int64) error {
	return c.do(ctx, cred, http.MethodPost, "/follow/"+strconv.FormatInt(userID, 10), nil, nil)
}

func (c *Client) Unfollow(ctx context.Context, cred session.Credential, userID int64) error {
	return c.do(ctx, cred, http.MethodDelete, "/follow/"+strconv.FormatInt(userID, 10), nil, nil)
}

func (c *Client) IsFollowing(ctx context.Context, cred session.Credential, userID int64) (bool, error) {
	var following bool
	err := c.get(ctx, cred, "/follow/check/"+strconv.FormatInt(userID, 10), &following)
	return following, err
}
