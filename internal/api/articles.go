package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/session"
)

func (c *Client) Publications(ctx context.Context, cred session.Credential) ([]domain.Publication, error) {
	var pubs []domain.Publication
	err := c.get(ctx, cred, "/articles", &pubs)
	return pubs, err
}

// FollowedPublications lists the articles written by the users the current
// user follows. The credential identifies the follower; the platform does
// not take an id here.
func (c *Client) FollowedPublications(ctx context.Context, cred session.Credential) ([]domain.Publication, error) {
	var pubs []domain.Publication
	err := c.get(ctx, cred, "/articles/followed", &pubs)
	return pubs, err
}

func (c *Client) UserPublications(ctx context.Context, cred session.Credential, userID int64) ([]domain.Publication, error) {
	var pubs []domain.Publication
	err := c.get(ctx, cred, "/articles/"+strconv.FormatInt(userID, 10)+"/user", &pubs)
	return pubs, err
}

func (c *Client) SearchByTitle(ctx context.Context, cred session.Credential, title string) ([]domain.Publication, error) {
	var pubs []domain.Publication
	err := c.get(ctx, cred, "/articles/search/title/"+url.PathEscape(title), &pubs)
	return pubs, err
}

func (c *Client) CreateArticle(ctx context.Context, cred session.Credential, draft domain.Draft) (domain.Publication, error) {
	var pub domain.Publication
	err := c.do(ctx, cred, http.MethodPost, "/articles", draft, &pub)
	return pub, err
}

func (c *Client) UpdateArticle(ctx context.Context, cred session.Credential, id int64, draft domain.Draft) (domain.Publication, error) {
	var pub domain.Publication
	err := c.do(ctx, cred, http.MethodPut, "/articles/"+strconv.FormatInt(id, 10), draft, &pub)
	return pub, err
}

// ApproveArticle accepts a submission under review. Administrators only.
func (c *Client) ApproveArticle(ctx context.Context, cred session.Credential, id int64) error {
	return c.do(ctx, cred, http.MethodPatch, "/articles/"+strconv.FormatInt(id, 10)+"/approve", nil, nil)
}

func (c *Client) RejectArticle(ctx context.Context, cred session.Credential, id int64) error {
	return c.do(ctx, cred, http.MethodPatch, "/articles/"+strconv.FormatInt(id, 10)+"/reject", nil, nil)
}

func (c *Client) ArticleCount(ctx context.Context, cred session.Credential) (int, error) {
	var count int
	err := c.get(ctx, cred, "/articles/statistics/count", &count)
	return count, err
}

func (c *Client) AddComment(ctx context.Context, cred session.Credential, articleID int64, content string) (domain.Comment, error) {
	var comment domain.Comment
	body := struct {
		Content string `json:"content"`
	}{content}
	err := c.do(ctx, cred, http.MethodPost, "/articles/"+strconv.FormatInt(articleID, 10)+"/comments", body, &comment)
	return comment, err
}
