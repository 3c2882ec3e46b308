package placeholder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AchilleasB/mindease/wellness-service/internal/config"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/internal/observability/metrics"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

var tracer = otel.Tracer("mindease.internal.adapters.placeholder")

// errNotFound marks a 404 so callers can map it to their own sentinel.
var errNotFound = errors.New("remote resource not found")

// Client talks to the JSONPlaceholder-style REST API. It does not retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	metrics    *metrics.Metrics
	logger     *logging.Logger
}

var _ ports.PlaceholderClient = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cb:         config.NewCircuitBreaker(config.BreakerPlaceholder, logger),
		metrics:    m,
		logger:     logger,
	}
}

func (c *Client) ListPosts(ctx context.Context, limit int) ([]domain.RemotePost, error) {
	var posts []domain.RemotePost
	if err := c.do(ctx, "posts", http.MethodGet, "/posts"+limitQuery(limit), nil, &posts); err != nil {
		return nil, err
	}
	return validPosts(posts), nil
}

func (c *Client) GetPost(ctx context.Context, id int) (*domain.RemotePost, error) {
	var post domain.RemotePost
	err := c.do(ctx, "posts", http.MethodGet, "/posts/"+strconv.Itoa(id), nil, &post)
	if errors.Is(err, errNotFound) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if post.ID <= 0 {
		return nil, domain.ErrPostNotFound
	}
	return &post, nil
}

func (c *Client) ListUsers(ctx context.Context, limit int) ([]domain.RemoteUser, error) {
	var users []domain.RemoteUser
	if err := c.do(ctx, "users", http.MethodGet, "/users"+limitQuery(limit), nil, &users); err != nil {
		return nil, err
	}
	valid := users[:0]
	for _, u := range users {
		if u.ID > 0 {
			valid = append(valid, u)
		}
	}
	return valid, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*domain.RemoteUser, error) {
	var user domain.RemoteUser
	err := c.do(ctx, "users", http.MethodGet, "/users/"+strconv.Itoa(id), nil, &user)
	if errors.Is(err, errNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.ID <= 0 {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (c *Client) ListComments(ctx context.Context, postID, limit int) ([]domain.RemoteComment, error) {
	var comments []domain.RemoteComment
	path := "/posts/" + strconv.Itoa(postID) + "/comments" + limitQuery(limit)
	err := c.do(ctx, "comments", http.MethodGet, path, nil, &comments)
	if errors.Is(err, errNotFound) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, comment ports.NewRemoteComment) (*domain.RemoteComment, error) {
	var created domain.RemoteComment
	if err := c.do(ctx, "comments", http.MethodPost, "/comments", comment, &created); err != nil {
		return nil, err
	}
	// the remote echoes the body and assigns an id
	if created.PostID == 0 {
		created.PostID = comment.PostID
	}
	return &created, nil
}

func (c *Client) CreatePost(ctx context.Context, post ports.NewRemotePost) (*domain.RemotePost, error) {
	var created domain.RemotePost
	if err := c.do(ctx, "posts", http.MethodPost, "/posts", post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) do(ctx context.Context, resource, method, path string, in, out any) error {
	ctx, span := tracer.Start(ctx, "placeholder."+resource, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	var missing bool
	_, err := c.cb.Execute(func() (interface{}, error) {
		err := c.send(ctx, method, path, in, out)
		if errors.Is(err, errNotFound) {
			// a missing record is an answer, not an outage
			missing = true
			return nil, nil
		}
		return nil, err
	})
	c.metrics.ObserveRemoteRequest(resource, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("placeholder request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %s %s: %v", domain.ErrRemote, method, path, err)
	}
	if missing {
		span.SetAttributes(attribute.Int("http.status_code", http.StatusNotFound))
		return errNotFound
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func limitQuery(limit int) string {
	if limit <= 0 {
		return ""
	}
	q := url.Values{}
	q.Set("_limit", strconv.Itoa(limit))
	return "?" + q.Encode()
}

func validPosts(posts []domain.RemotePost) []domain.RemotePost {
	valid := make([]domain.RemotePost, 0, len(posts))
	for _, p := range posts {
		if p.ID > 0 {
			valid = append(valid, p)
		}
	}
	return valid
}
