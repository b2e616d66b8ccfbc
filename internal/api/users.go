package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/session"
)

// Login exchanges the user's credentials for a bearer token. This is the
// only call made without a credential.
func (c *Client) Login(ctx context.Context, email, password string) (session.Credential, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var res struct {
		LoggedIn    bool   `json:"loggedIn"`
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, "", http.MethodPost, "/users/login", body, &res); err != nil {
		return "", err
	}
	if !res.LoggedIn || res.AccessToken == "" {
		return "", ErrUnauthenticated
	}
	return session.Credential(res.AccessToken), nil
}

func (c *Client) User(ctx context.Context, cred session.Credential, id int64) (domain.User, error) {
	var u domain.User
	err := c.get(ctx, cred, "/users/"+strconv.FormatInt(id, 10), &u)
	return u, err
}

func (c *Client) UserByName(ctx context.Context, cred session.Credential, name string) (domain.User, error) {
	var u domain.User
	err := c.get(ctx, cred, "/users/username/"+url.PathEscape(name), &u)
	return u, err
}

func (c *Client) UpdateUser(ctx context.Context, cred session.Credential, id int64, u domain.User) (domain.User, error) {
	var updated domain.User
	err := c.do(ctx, cred, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), u, &updated)
	return updated, err
}

func (c *Client) UserCount(ctx context.Context, cred session.Credential) (int, error) {
	var count int
	err := c.get(ctx, cred, "/users/statistics/count", &count)
	return count, err
}

// IsActive reports whether the given user currently has an open session on
// the platform.
func (c *Client) IsActive(ctx context.Context, cred session.Credential, userID int64) (bool, error) {
	var res struct {
		IsActive bool `json:"isActive"`
	}
	err := c.get(ctx, cred, "/active/"+strconv.FormatInt(userID, 10)+"/check", &res)
	return res.IsActive, err
}

// Presence tells the platform the given user is online. Sent periodically
// while the daemon runs.
func (c *Client) Presence(ctx context.Context, cred session.Credential, userID int64) error {
	body := struct {
		UserID int64 `json:"userId"`
	}{userID}
	return c.do(ctx, cred, http.MethodPost, "/active", body, nil)
}
