package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

const (
	DefaultFeedLimit    = 10
	MaxFeedLimit        = 20
	commentsPerPost     = 2
	maxSeedLikes        = 50
	seedDateSpread      = 30 * 24 * time.Hour
	postTitleLength     = 30
	anonymousName       = "Anonymous User"
	anonymousEmail      = "anon@example.com"
	anonymousAvatarSeed = "anon"
)

// CommunityService keeps the feed in process memory. It is seeded once from
// the remote service; posts, likes and comments are lost on restart.
type CommunityService struct {
	remote ports.PlaceholderClient
	logger *logging.Logger
	intn   func(n int) int
	now    func() time.Time

	mu     sync.Mutex
	loaded bool
	posts  []domain.CommunityPost
}

var _ ports.CommunityService = (*CommunityService)(nil)

func NewCommunityService(remote ports.PlaceholderClient, logger *logging.Logger) *CommunityService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CommunityService{remote: remote, logger: logger, intn: rand.IntN, now: time.Now}
}

func (s *CommunityService) Feed(ctx context.Context, limit int) ([]domain.CommunityPost, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	limit = min(limit, MaxFeedLimit)
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	n := min(limit, len(s.posts))
	out := make([]domain.CommunityPost, n)
	for i := range out {
		out[i] = clonePost(s.posts[i])
	}
	return out, nil
}

func (s *CommunityService) CreatePost(ctx context.Context, author domain.Identity, content string) (*domain.CommunityPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.NewValidationError("content", "Please enter post content")
	}

	post := domain.CommunityPost{
		ID:       uuid.NewString(),
		Title:    truncateRunes(content, postTitleLength),
		Body:     content,
		UserID:   author.ID,
		Author:   authorOf(author),
		Comments: []domain.Comment{},
		Likes:    0,
		Date:     s.now().UTC(),
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]domain.CommunityPost{post}, s.posts...)
	return &post, nil
}

func (s *CommunityService) Like(ctx context.Context, postID string) (*domain.CommunityPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(postID)
	if i < 0 {
		return nil, domain.ErrPostNotFound
	}
	s.posts[i].Likes++
	p := clonePost(s.posts[i])
	return &p, nil
}

func (s *CommunityService) AddComment(ctx context.Context, postID string, author domain.Identity, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.NewValidationError("content", "Please enter a comment")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(postID)
	if i < 0 {
		return nil, domain.ErrPostNotFound
	}
	a := authorOf(author)
	email := a.Email
	if email == "" {
		email = anonymousEmail
	}
	comment := domain.Comment{
		ID:     uuid.NewString(),
		PostID: postID,
		Name:   a.Name,
		Email:  email,
		Body:   content,
		Avatar: a.Avatar,
	}
	s.posts[i].Comments = append([]domain.Comment{comment}, s.posts[i].Comments...)
	return &comment, nil
}

// Report only acknowledges; there is no moderation queue.
func (s *CommunityService) Report(ctx context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(postID) < 0 {
		return domain.ErrPostNotFound
	}
	s.logger.Info("community post reported", "post_id", postID)
	return nil
}

// ensureLoaded seeds the feed with MaxFeedLimit posts on first use.
// The remote calls run without s.mu held; the first completed seed wins.
func (s *CommunityService) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}

	posts, err := s.fetchSeed(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.posts = posts
		s.loaded = true
	}
	return nil
}

func (s *CommunityService) fetchSeed(ctx context.Context) ([]domain.CommunityPost, error) {
	remote, err := s.remote.ListPosts(ctx, MaxFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("load community posts: %w", err)
	}

	posts := make([]domain.CommunityPost, 0, len(remote))
	for index, p := range remote {
		user, err := s.remote.GetUser(ctx, p.UserID)
		if err != nil {
			return nil, fmt.Errorf("load author of post %d: %w", p.ID, err)
		}
		remoteComments, err := s.remote.ListComments(ctx, p.ID, commentsPerPost)
		if err != nil {
			return nil, fmt.Errorf("load comments of post %d: %w", p.ID, err)
		}
		comments := make([]domain.Comment, 0, len(remoteComments))
		for ci, c := range remoteComments {
			comments = append(comments, relabelComment(c, ci+index, ci))
		}

		u := cannedUsers[mod(index, len(cannedUsers))]
		t := themeAt(p.ID)
		posts = append(posts, domain.CommunityPost{
			ID:     strconv.Itoa(p.ID),
			Title:  t.title,
			Body:   t.body,
			UserID: strconv.Itoa(user.ID),
			Author: domain.Author{
				ID:     strconv.Itoa(user.ID),
				Name:   u.name,
				Email:  u.email,
				Avatar: domain.AvatarURL(u.name),
			},
			Comments: comments,
			Likes:    s.intn(maxSeedLikes),
			Date:     s.now().Add(-time.Duration(s.intn(int(seedDateSpread / time.Second))) * time.Second).UTC(),
		})
	}
	return posts, nil
}

func (s *CommunityService) indexOf(postID string) int {
	for i, p := range s.posts {
		if p.ID == postID {
			return i
		}
	}
	return -1
}

func authorOf(user domain.Identity) domain.Author {
	a := domain.Author{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}
	if a.Name == "" {
		a.Name = anonymousName
	}
	if a.Avatar == "" {
		seed := user.Name
		if seed == "" {
			seed = anonymousAvatarSeed
		}
		a.Avatar = domain.AvatarURL(seed)
	}
	return a
}

func clonePost(p domain.CommunityPost) domain.CommunityPost {
	p.Comments = append([]domain.Comment(nil), p.Comments...)
	if p.Comments == nil {
		p.Comments = []domain.Comment{}
	}
	return p
}
