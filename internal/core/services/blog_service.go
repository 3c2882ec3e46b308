package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const DefaultBlogLimit = 12

// BlogService serves placeholder posts relabeled as wellness articles.
type BlogService struct {
	remote ports.PlaceholderClient
	logger *logging.Logger
	intn   func(n int) int
}

var _ ports.BlogService = (*BlogService)(nil)

func NewBlogService(remote ports.PlaceholderClient, logger *logging.Logger) *BlogService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BlogService{remote: remote, logger: logger, intn: rand.IntN}
}

// Posts lists articles, optionally narrowed by a text query and a category.
func (s *BlogService) Posts(ctx context.Context, limit int, query, category string) ([]domain.BlogPost, error) {
	if limit <= 0 {
		limit = DefaultBlogLimit
	}
	remote, err := s.remote.ListPosts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}

	posts := make([]domain.BlogPost, 0, len(remote))
	for i, p := range remote {
		t := themeAt(i)
		posts = append(posts, domain.BlogPost{
			ID:          p.ID,
			UserID:      p.UserID,
			Title:       t.title,
			Body:        t.body,
			Category:    categoryFor(p.ID),
			ReadingTime: readingTime(t.body),
			Author:      placeholderAuthor(p.UserID),
		})
	}
	return Search(posts, query, category), nil
}

// Search filters posts by case-insensitive title/body match and exact category.
// Empty arguments match everything; category "all" matches every category.
func Search(posts []domain.BlogPost, query, category string) []domain.BlogPost {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "all" {
		category = ""
	}

	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Body), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *BlogService) Post(ctx context.Context, id int) (*domain.BlogPost, error) {
	p, err := s.remote.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.remote.GetUser(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("load author of post %d: %w", id, err)
	}

	t := themeAt(id)
	return &domain.BlogPost{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       t.title,
		Body:        t.body,
		Category:    categoryFor(p.ID),
		ReadingTime: readingTime(t.body),
		Author: domain.Author{
			ID:     strconv.Itoa(user.ID),
			Name:   user.Name,
			Email:  user.Email,
			Avatar: domain.AvatarURL(user.Name),
		},
	}, nil
}

func (s *BlogService) Comments(ctx context.Context, postID int) ([]domain.Comment, error) {
	remote, err := s.remote.ListComments(ctx, postID, 0)
	if err != nil {
		return nil, err
	}
	comments := make([]domain.Comment, 0, len(remote))
	for i, c := range remote {
		comments = append(comments, relabelComment(c, i, i))
	}
	return comments, nil
}

// AddComment sends a comment to the remote service. Blank fields get canned values.
func (s *BlogService) AddComment(ctx context.Context, postID int, name, email, body string) (*domain.Comment, error) {
	fallback := cannedUsers[s.intn(len(cannedUsers))]
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback.name
	}
	email = strings.TrimSpace(email)
	if email == "" {
		email = fallback.email
	}
	if strings.TrimSpace(body) == "" {
		body = cannedComments[s.intn(len(cannedComments))]
	}

	created, err := s.remote.CreateComment(ctx, ports.NewRemoteComment{
		PostID: postID,
		Name:   name,
		Email:  email,
		Body:   body,
		Avatar: domain.AvatarURL(name),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &domain.Comment{
		ID:     strconv.Itoa(created.ID),
		PostID: strconv.Itoa(postID),
		Name:   name,
		Email:  email,
		Body:   body,
		Avatar: domain.AvatarURL(name),
	}, nil
}

func placeholderAuthor(userID int) domain.Author {
	name := "User " + strconv.Itoa(userID)
	return domain.Author{
		ID:     strconv.Itoa(userID),
		Name:   name,
		Avatar: domain.AvatarURL(name),
	}
}
