package placeholder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/observability/metrics"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, metrics.New(prometheus.NewRegistry()), logging.Discard())
}

func TestClient_ListPosts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("_limit"); got != "2" {
			t.Errorf("expected _limit=2, got %q", got)
		}
		json.NewEncoder(w).Encode([]domain.RemotePost{
			{UserID: 1, ID: 1, Title: "a", Body: "b"},
			{UserID: 1, ID: 0, Title: "invalid"},
			{UserID: 2, ID: 2, Title: "c", Body: "d"},
		})
	})
	c := newTestClient(t, mux)

	posts, err := c.ListPosts(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 2 || posts[1].ID != 2 {
		t.Errorf("unexpected posts %+v", posts)
	}
}

func TestClient_GetPostNotFound(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	if _, err := c.GetPost(context.Background(), 999); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
	if _, err := c.GetUser(context.Background(), 999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestClient_ServerErrorIsRemoteError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.ListUsers(context.Background(), 30)
	if !errors.Is(err, domain.ErrRemote) {
		t.Errorf("expected ErrRemote, got %v", err)
	}
}

func TestClient_MalformedBodyIsRemoteError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "not-a-number"}`))
	}))

	if _, err := c.GetPost(context.Background(), 1); !errors.Is(err, domain.ErrRemote) {
		t.Errorf("expected ErrRemote, got %v", err)
	}
}

func TestClient_CreateComment(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/comments" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var in ports.NewRemoteComment
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.RemoteComment{ID: 501, Name: in.Name, Email: in.Email, Body: in.Body})
	}))

	created, err := c.CreateComment(context.Background(), ports.NewRemoteComment{PostID: 3, Name: "Alex", Email: "a@b.co", Body: "hi"})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if created.ID != 501 || created.PostID != 3 || created.Body != "hi" {
		t.Errorf("unexpected comment %+v", created)
	}
}

func TestClient_CreatePost(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in ports.NewRemotePost
		json.NewDecoder(r.Body).Decode(&in)
		if in.Title != "Contact from Alex" || in.UserID != 1 {
			t.Errorf("unexpected body %+v", in)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.RemotePost{ID: 101, UserID: in.UserID, Title: in.Title, Body: in.Body})
	}))

	created, err := c.CreatePost(context.Background(), ports.NewRemotePost{Title: "Contact from Alex", Body: "hello", UserID: 1})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if created.ID != 101 {
		t.Errorf("expected id 101, got %d", created.ID)
	}
}
