package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"

	"github.com/andrisoa/malsci/internal/config"
	"github.com/andrisoa/malsci/internal/domain"
	"github.com/andrisoa/malsci/internal/notification"
	"github.com/andrisoa/malsci/internal/session"
	"github.com/andrisoa/malsci/internal/store"
)

// stubRemote answers with the configured functions and zero values
// otherwise.
type stubRemote struct {
	login       func(email, password string) (session.Credential, error)
	userByName  func(name string) (domain.User, error)
	user        func(id int64) (domain.User, error)
	updateUser  func(id int64, u domain.User) (domain.User, error)
	isFollowing func(userID int64) (bool, error)
	byNameHits  atomic.Int32
}

func (s *stubRemote) Login(ctx context.Context, email, password string) (session.Credential, error) {
	if s.login != nil {
		return s.login(email, password)
	}
	return "", nil
}

func (s *stubRemote) UserByName(ctx context.Context, cred session.Credential, name string) (domain.User, error) {
	s.byNameHits.Add(1)
	if s.userByName != nil {
		return s.userByName(name)
	}
	return domain.User{}, nil
}

func (s *stubRemote) User(ctx context.Context, cred session.Credential, id int64) (domain.User, error) {
	if s.user != nil {
		return s.user(id)
	}
	return domain.User{UserRef: domain.UserRef{ID: id}}, nil
}

func (s *stubRemote) UpdateUser(ctx context.Context, cred session.Credential, id int64, u domain.User) (domain.User, error) {
	if s.updateUser != nil {
		return s.updateUser(id, u)
	}
	u.ID = id
	return u, nil
}

func (s *stubRemote) IsFollowing(ctx context.Context, cred session.Credential, userID int64) (bool, error) {
	if s.isFollowing != nil {
		return s.isFollowing(userID)
	}
	return false, nil
}

func (s *stubRemote) UserPublications(ctx context.Context, cred session.Credential, userID int64) ([]domain.Publication, error) {
	return nil, nil
}
func (s *stubRemote) Followers(ctx context.Context, cred session.Credential, userID int64) ([]domain.UserRef, error) {
	return nil, nil
}
func (s *stubRemote) Following(ctx context.Context, cred session.Credential, userID int64) ([]domain.UserRef, error) {
	return nil, nil
}
func (s *stubRemote) FollowerCount(ctx context.Context, cred session.Credential, userID int64) (int, error) {
	return 0, nil
}
func (s *stubRemote) FollowingCount(ctx context.Context, cred session.Credential, userID int64) (int, error) {
	return 0, nil
}
func (s *stubRemote) Follow(ctx context.Context, cred session.Credential, userID int64) error {
	return nil
}
func (s *stubRemote) Unfollow(ctx context.Context, cred session.Credential, userID int64) error {
	return nil
}
func (s *stubRemote) CreateArticle(ctx context.Context, cred session.Credential, draft domain.Draft) (domain.Publication, error) {
	return domain.Publication{ID: 1, Title: draft.Title, Content: draft.Content}, nil
}
func (s *stubRemote) UpdateArticle(ctx context.Context, cred session.Credential, id int64, draft domain.Draft) (domain.Publication, error) {
	return domain.Publication{ID: id, Title: draft.Title}, nil
}
func (s *stubRemote) AddComment(ctx context.Context, cred session.Credential, articleID int64, content string) (domain.Comment, error) {
	return domain.Comment{ID: 1, Content: content}, nil
}
func (s *stubRemote) SearchByTitle(ctx context.Context, cred session.Credential, title string) ([]domain.Publication, error) {
	return nil, nil
}
func (s *stubRemote) ApproveArticle(ctx context.Context, cred session.Credential, id int64) error {
	return nil
}
func (s *stubRemote) RejectArticle(ctx context.Context, cred session.Credential, id int64) error {
	return nil
}
func (s *stubRemote) Publications(ctx context.Context, cred session.Credential) ([]domain.Publication, error) {
	return nil, nil
}
func (s *stubRemote) UserCount(ctx context.Context, cred session.Credential) (int, error) {
	return 0, nil
}
func (s *stubRemote) ArticleCount(ctx context.Context, cred session.Credential) (int, error) {
	return 0, nil
}
func (s *stubRemote) MostLiked(ctx context.Context, cred session.Credential) ([]domain.Publication, error) {
	return nil, nil
}

type stubEffects struct {
	liked      []int64
	markedRead []int64
	pinged     []int64
}

func (s *stubEffects) Like(articleID int64) error  { s.liked = append(s.liked, articleID); return nil }
func (s *stubEffects) MarkRead(id int64) error     { s.markedRead = append(s.markedRead, id); return nil }
func (s *stubEffects) Presence(userID int64) error { s.pinged = append(s.pinged, userID); return nil }

type stubSync struct{}

func (stubSync) Status(ctx context.Context, name string) (domain.PassRecord, error) {
	return domain.PassRecord{Name: name}, nil
}

func token(id int64) session.Credential {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"id":%d}`, id)))
	return session.Credential(header + "." + payload + ".sig")
}

type harness struct {
	server  *httptest.Server
	remote  *stubRemote
	effects *stubEffects
	store   *store.Store
	creds   *session.Holder
	cookies []*http.Cookie
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := store.New(8)
	if err != nil {
		t.Fatal(err)
	}

	remote := &stubRemote{
		login: func(email, password string) (session.Credential, error) {
			return token(9), nil
		},
	}
	effects := &stubEffects{}

	cfg := config.Configuration{}
	creds := session.NewHolder("")
	h := New(&cfg, remote, st, effects, notification.NewRouter(effects), stubSync{}, creds, scs.NewCookieManager("u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4"))

	router := chi.NewRouter()
	h.Mount(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &harness{server: server, remote: remote, effects: effects, store: st, creds: creds}
}

func (h *harness) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, h.server.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range h.cookies {
		req.AddCookie(c)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	if cookies := res.Cookies(); len(cookies) > 0 {
		h.cookies = cookies
	}
	return res
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	res := h.do(t, http.MethodPost, "/login", `{"email":"hery@example.mg","password":"secret"}`)
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", res.StatusCode)
	}
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	defer res.Body.Close()
	var out T
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestGetFeedFiltersSnapshot(t *testing.T) {
	h := newHarness(t)
	h.store.SetFeed([]domain.FeedItem{
		{Publication: domain.Publication{ID: 1, Title: "Lemur Calls", Status: domain.StatusAccepted}},
		{Publication: domain.Publication{ID: 2, Title: "Baobab Genetics", Status: domain.StatusUnderReview}},
	}, time.Now())

	res := h.do(t, http.MethodGet, "/feed?status=accepted", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", res.StatusCode)
	}
	body := decode[feedResponse](t, res)
	if len(body.Items) != 1 || body.Items[0].ID != 1 {
		t.Errorf("unexpected items %+v", body.Items)
	}

	res = h.do(t, http.MethodGet, "/feed", "")
	body = decode[feedResponse](t, res)
	if len(body.Items) != 2 {
		t.Errorf("expected the unfiltered snapshot, got %d items", len(body.Items))
	}
}

func TestAnonymousMutationRejected(t *testing.T) {
	h := newHarness(t)

	res := h.do(t, http.MethodPost, "/likes/5", "")
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
	body := decode[errorBody](t, res)
	if body.Error != "unauthenticated" {
		t.Errorf("unexpected body %q", body.Error)
	}
	if len(h.effects.liked) != 0 {
		t.Error("anonymous request must not enqueue anything")
	}
}

func TestLikeEnqueued(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	res := h.do(t, http.MethodPost, "/likes/5", "")
	defer res.Body.Close()
	if res.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", res.StatusCode)
	}
	if len(h.effects.liked) != 1 || h.effects.liked[0] != 5 {
		t.Errorf("unexpected likes %v", h.effects.liked)
	}
}

func TestOpenNotification(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.store.SetNotifications([]domain.NotificationView{
		{ID: 3, Kind: domain.KindFollowed, Actor: "Bob"},
	}, time.Now())

	res := h.do(t, http.MethodPost, "/notifications/3/open", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", res.StatusCode)
	}
	intent := decode[notification.NavigationIntent](t, res)
	if intent.Target != notification.TargetUser || intent.Username != "Bob" {
		t.Errorf("unexpected intent %+v", intent)
	}
	if len(h.effects.markedRead) != 1 || h.effects.markedRead[0] != 3 {
		t.Errorf("unexpected mark-read calls %v", h.effects.markedRead)
	}

	views, _ := h.store.Notifications()
	if len(views) != 0 {
		t.Error("opened notification must leave the unread set")
	}

	res = h.do(t, http.MethodPost, "/notifications/3/open", "")
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for a missing notification, got %d", res.StatusCode)
	}
}

func TestProfileCached(t *testing.T) {
	h := newHarness(t)
	h.remote.userByName = func(name string) (domain.User, error) {
		return domain.User{UserRef: domain.UserRef{ID: 2, Name: name}}, nil
	}

	res := h.do(t, http.MethodGet, "/users/alice", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", res.StatusCode)
	}
	first := decode[domain.Profile](t, res)
	if first.User.Name != "alice" {
		t.Errorf("unexpected profile %+v", first)
	}

	res = h.do(t, http.MethodGet, "/users/alice", "")
	decode[domain.Profile](t, res)

	if hits := h.remote.byNameHits.Load(); hits != 1 {
		t.Errorf("expected one remote lookup, got %d", hits)
	}
}

func TestCreateArticleValidates(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	res := h.do(t, http.MethodPost, "/articles", `{"title":"","content":"x"}`)
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for an empty title, got %d", res.StatusCode)
	}

	res = h.do(t, http.MethodPost, "/articles", `{"title":"Lemur Calls","content":"body"}`)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	pub := decode[domain.Publication](t, res)
	if pub.Title != "Lemur Calls" {
		t.Errorf("unexpected publication %+v", pub)
	}
}

func TestLoginPublishesCredential(t *testing.T) {
	h := newHarness(t)

	if got := h.creds.Get(); got != "" {
		t.Fatalf("expected no credential before login, got %q", got)
	}

	h.login(t)
	if got := h.creds.Get(); got != token(9) {
		t.Errorf("login must publish the fresh token, got %q", got)
	}

	res := h.do(t, http.MethodGet, "/logout", "")
	res.Body.Close()
	if got := h.creds.Get(); got != "" {
		t.Errorf("logout must clear the shared credential, got %q", got)
	}
}

func TestProfileReportsFollowState(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.remote.userByName = func(name string) (domain.User, error) {
		return domain.User{UserRef: domain.UserRef{ID: 2, Name: name}}, nil
	}
	h.remote.isFollowing = func(userID int64) (bool, error) {
		return userID == 2, nil
	}

	res := h.do(t, http.MethodGet, "/users/alice", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", res.StatusCode)
	}
	p := decode[domain.Profile](t, res)
	if !p.IsFollowing {
		t.Error("expected the viewer's follow state on the profile")
	}
}

func TestMe(t *testing.T) {
	h := newHarness(t)

	res := h.do(t, http.MethodGet, "/me", "")
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for an anonymous request, got %d", res.StatusCode)
	}

	h.login(t)
	h.remote.user = func(id int64) (domain.User, error) {
		return domain.User{UserRef: domain.UserRef{ID: id, Name: "hery"}}, nil
	}

	res = h.do(t, http.MethodGet, "/me", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", res.StatusCode)
	}
	u := decode[domain.User](t, res)
	if u.ID != 9 || u.Name != "hery" {
		t.Errorf("unexpected account %+v", u)
	}
}

func TestUpdateUserDropsCachedProfile(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.remote.userByName = func(name string) (domain.User, error) {
		return domain.User{UserRef: domain.UserRef{ID: 2, Name: name}}, nil
	}

	res := h.do(t, http.MethodGet, "/users/alice", "")
	decode[domain.Profile](t, res)

	res = h.do(t, http.MethodPut, "/users/2", `{"name":"alice","bio":"botanist"}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", res.StatusCode)
	}
	updated := decode[domain.User](t, res)
	if updated.Bio != "botanist" {
		t.Errorf("unexpected user %+v", updated)
	}

	res = h.do(t, http.MethodGet, "/users/alice", "")
	decode[domain.Profile](t, res)
	if hits := h.remote.byNameHits.Load(); hits != 2 {
		t.Errorf("expected the edit to drop the cached profile, got %d lookups", hits)
	}
}
