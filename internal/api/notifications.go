package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/session"
)

func (c *Client) Notifications(ctx context.Context, cred session.Credential, userID int64) ([]domain.Notification, error) {
	var list []domain.Notification
	err := c.get(ctx, cred, "/notifications/"+strconv.FormatInt(userID, 10), &list)
	return list, err
}

// MarkRead flags a notification as read. Callers on the navigation path
// treat a failure here as non-fatal.
func (c *Client) MarkRead(ctx context.Context, cred session.Credential, id int64) error {
	return c.do(ctx, cred, http.MethodPatch, "/notifications/"+strconv.FormatInt(id, 10)+"/read", nil, nil)
}
