package mocks

import (
	"context"
	"sync"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
)

// MockPlaceholderClient serves fixture posts, users and comments from memory.
type MockPlaceholderClient struct {
	mu sync.Mutex

	Posts    []domain.RemotePost
	Users    []domain.RemoteUser
	Comments []domain.RemoteComment

	CreatedPosts    []ports.NewRemotePost
	CreatedComments []ports.NewRemoteComment
	ListPostsCalls  int

	ListPostsError     error
	GetPostError       error
	ListUsersError     error
	GetUserError       error
	ListCommentsError  error
	CreateCommentError error
	CreatePostError    error
}

var _ ports.PlaceholderClient = (*MockPlaceholderClient)(nil)

// NewMockPlaceholderClient returns a client seeded with posts, users and comments.
func NewMockPlaceholderClient() *MockPlaceholderClient {
	return &MockPlaceholderClient{
		Posts:    SampleRemotePosts(20),
		Users:    SampleRemoteUsers(30),
		Comments: SampleRemoteComments(20, 5),
	}
}

func (m *MockPlaceholderClient) ListPosts(ctx context.Context, limit int) ([]domain.RemotePost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListPostsCalls++
	if m.ListPostsError != nil {
		return nil, m.ListPostsError
	}
	return clip(m.Posts, limit), nil
}

func (m *MockPlaceholderClient) GetPost(ctx context.Context, id int) (*domain.RemotePost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPostError != nil {
		return nil, m.GetPostError
	}
	for _, p := range m.Posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (m *MockPlaceholderClient) ListUsers(ctx context.Context, limit int) ([]domain.RemoteUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListUsersError != nil {
		return nil, m.ListUsersError
	}
	return clip(m.Users, limit), nil
}

func (m *MockPlaceholderClient) GetUser(ctx context.Context, id int) (*domain.RemoteUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetUserError != nil {
		return nil, m.GetUserError
	}
	for _, u := range m.Users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockPlaceholderClient) ListComments(ctx context.Context, postID, limit int) ([]domain.RemoteComment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListCommentsError != nil {
		return nil, m.ListCommentsError
	}
	var out []domain.RemoteComment
	for _, c := range m.Comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return clip(out, limit), nil
}

func (m *MockPlaceholderClient) CreateComment(ctx context.Context, comment ports.NewRemoteComment) (*domain.RemoteComment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateCommentError != nil {
		return nil, m.CreateCommentError
	}
	m.CreatedComments = append(m.CreatedComments, comment)
	return &domain.RemoteComment{
		ID:     500 + len(m.CreatedComments),
		PostID: comment.PostID,
		Name:   comment.Name,
		Email:  comment.Email,
		Body:   comment.Body,
	}, nil
}

func (m *MockPlaceholderClient) CreatePost(ctx context.Context, post ports.NewRemotePost) (*domain.RemotePost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreatePostError != nil {
		return nil, m.CreatePostError
	}
	m.CreatedPosts = append(m.CreatedPosts, post)
	return &domain.RemotePost{ID: 100 + len(m.CreatedPosts), UserID: post.UserID, Title: post.Title, Body: post.Body}, nil
}

func clip[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
