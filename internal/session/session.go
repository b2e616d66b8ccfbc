// Package session reads the bearer credential the platform issued at login
// and recovers the current user's identity from it. The token payload is
// decoded without verifying the signature: verification belongs to the
// remote API, this side only needs the embedded id.
package session

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/alexedwards/scs"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKey is the cookie session key the credential is stored under.
const TokenKey = "access_token"

var (
	ErrNoCredential   = errors.New("no credential")
	ErrMalformedToken = errors.New("malformed token")
)

// Credential is the opaque bearer token. Callers that tolerate anonymous
// state check for ErrNoCredential themselves; nothing here panics on a
// missing or broken token.
type Credential string

// Load reads a credential from the token file. An empty path or a missing
// file yields ErrNoCredential.
func Load(path string) (Credential, error) {
	if path == "" {
		return "", ErrNoCredential
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoCredential
		}
		return "", err
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", ErrNoCredential
	}
	return Credential(token), nil
}

// FromCookie pulls the credential out of the cookie session.
func FromCookie(s *scs.Session) (Credential, error) {
	token, err := s.GetString(TokenKey)
	if err != nil || token == "" {
		return "", ErrNoCredential
	}
	return Credential(token), nil
}

// UserID decodes the token payload and extracts the id claim. The platform
// has issued both numeric and string ids over time, so both are accepted.
func (c Credential) UserID() (int64, error) {
	if c == "" {
		return 0, ErrNoCredential
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(string(c), claims); err != nil {
		return 0, ErrMalformedToken
	}

	switch id := claims["id"].(type) {
	case float64:
		return int64(id), nil
	case string:
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return 0, ErrMalformedToken
		}
		return n, nil
	default:
		return 0, ErrMalformedToken
	}
}

// Header returns the value of the Authorization header for this credential.
func (c Credential) Header() string {
	return "Bearer " + string(c)
}
