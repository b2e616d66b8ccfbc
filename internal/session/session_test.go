package session

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// token builds an unsigned JWT whose payload is the given JSON document.
func token(payload string) Credential {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return Credential(header + "." + body + ".")
}

func TestUserID(t *testing.T) {
	cases := []struct {
		name string
		cred Credential
		id   int64
		err  error
	}{
		{"numeric id", token(`{"id":42}`), 42, nil},
		{"string id", token(`{"id":"7"}`), 7, nil},
		{"missing id", token(`{"sub":"someone"}`), 0, ErrMalformedToken},
		{"invalid base64", Credential("x.!!!.y"), 0, ErrMalformedToken},
		{"not json", token(`not json at all`), 0, ErrMalformedToken},
		{"not a jwt", Credential("garbage"), 0, ErrMalformedToken},
		{"empty", Credential(""), 0, ErrNoCredential},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, err := c.cred.UserID()
			if !errors.Is(err, c.err) {
				t.Fatalf("expected error %v, got %v", c.err, err)
			}
			if id != c.id {
				t.Errorf("expected id %d, got %d", c.id, id)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	c := Credential("abc")
	if h := c.Header(); h != "Bearer abc" {
		t.Errorf("unexpected header %q", h)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "token")
	if err := os.WriteFile(path, []byte("  sometoken\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cred, err := Load(path)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if cred != "sometoken" {
		t.Errorf("expected trimmed token, got %q", cred)
	}

	if _, err = Load(""); !errors.Is(err, ErrNoCredential) {
		t.Errorf("empty path: expected ErrNoCredential, got %v", err)
	}

	if _, err = Load(filepath.Join(dir, "missing")); !errors.Is(err, ErrNoCredential) {
		t.Errorf("missing file: expected ErrNoCredential, got %v", err)
	}

	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte("   \n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err = Load(empty); !errors.Is(err, ErrNoCredential) {
		t.Errorf("empty file: expected ErrNoCredential, got %v", err)
	}
}
