// Package api is the typed client for the remote Malagasy Science REST
// service. Every call carries the caller's bearer credential; the client
// itself holds no session state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/andrisoa/malsci/internal/session"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Error is a non-2xx response from the platform.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Body)
}

type Client struct {
	base   *url.URL
	client *http.Client
	debug  bool
}

func New(base *url.URL, client *http.Client, debug bool) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		base:   base,
		client: client,
		debug:  debug,
	}
}

// do issues one request and decodes the JSON response into out, if out is
// not nil. Connection failures and gateway errors are retried with capped
// exponential backoff; every other non-2xx status is returned as *Error
// without retrying.
func (c *Client) do(ctx context.Context, cred session.Credential, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	operation := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if cred != "" {
			req.Header.Set("Authorization", cred.Header())
		}
		req.Header.Set("X-Request-Id", uuid.NewString())

		if c.debug {
			log.Debug().Str("method", method).Str("path", path).Msg("remote request")
		}

		res, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode >= 400 {
			content, _ := io.ReadAll(res.Body)
			err = &Error{Status: res.StatusCode, Body: string(content)}
			switch res.StatusCode {
			case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
				return err
			case http.StatusUnauthorized, http.StatusForbidden:
				return backoff.Permanent(fmt.Errorf("%w: %w", ErrUnauthenticated, err))
			default:
				return backoff.Permanent(err)
			}
		}

		if out == nil {
			return nil
		}
		if err = json.NewDecoder(res.Body).Decode(out); err != nil {
			log.Error().Err(err).Str("path", path).Msg("response body unmarshaling error")
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	return backoff.Retry(operation, policy)
}

func (c *Client) get(ctx context.Context, cred session.Credential, path string, out any) error {
	return c.do(ctx, cred, http.MethodGet, path, nil, out)
}
