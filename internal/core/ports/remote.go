package ports

import (
	"context"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
)

// NewRemotePost is the body sent to the placeholder service's /posts endpoint.
type NewRemotePost struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
	Email  string `json:"email,omitempty"`
}

// NewRemoteComment is the body sent to the placeholder service's /comments endpoint.
type NewRemoteComment struct {
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
	Avatar string `json:"avatar,omitempty"`
}

// PlaceholderClient reads generic list/detail resources from the public
// placeholder API. Writes are accepted by the remote side but never persisted.
type PlaceholderClient interface {
	ListPosts(ctx context.Context, limit int) ([]domain.RemotePost, error)
	GetPost(ctx context.Context, id int) (*domain.RemotePost, error)
	ListUsers(ctx context.Context, limit int) ([]domain.RemoteUser, error)
	GetUser(ctx context.Context, id int) (*domain.RemoteUser, error)
	ListComments(ctx context.Context, postID, limit int) ([]domain.RemoteComment, error)
	CreateComment(ctx context.Context, comment NewRemoteComment) (*domain.RemoteComment, error)
	CreatePost(ctx context.Context, post NewRemotePost) (*domain.RemotePost, error)
}
