package services

import (
	"context"
	"errors"
	"testing"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
	"github.com/AchilleasB/mindease/wellness-service/test/mocks"
)

func TestBlogService_Posts(t *testing.T) {
	remote := mocks.NewMockPlaceholderClient()
	svc := NewBlogService(remote, logging.Discard())

	posts, err := svc.Posts(context.Background(), 0, "", "")
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != DefaultBlogLimit {
		t.Fatalf("expected %d posts, got %d", DefaultBlogLimit, len(posts))
	}

	first := posts[0]
	if first.Title != "Coping with Anxiety in Daily Life" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if first.Category != "depression" {
		t.Errorf("post 1 should be categorized depression, got %s", first.Category)
	}
	if first.ReadingTime != 1 {
		t.Errorf("expected 1 minute reading time, got %d", first.ReadingTime)
	}
	if first.Author.Name != "User 1" {
		t.Errorf("unexpected author %+v", first.Author)
	}
	if posts[10].Title != posts[0].Title {
		t.Error("themes should cycle every ten posts")
	}
}

func TestBlogService_Search(t *testing.T) {
	remote := mocks.NewMockPlaceholderClient()
	svc := NewBlogService(remote, logging.Discard())
	ctx := context.Background()

	tests := []struct {
		query, category string
		want            int
	}{
		{"", "all", 12},
		{"ANXIETY", "", 2},
		{"", "mindfulness", 3},
		{"burnout", "self-care", 0},
		{"nothing matches this", "", 0},
	}
	for _, tt := range tests {
		got, err := svc.Posts(ctx, 12, tt.query, tt.category)
		if err != nil {
			t.Fatalf("Posts: %v", err)
		}
		if len(got) != tt.want {
			t.Errorf("query %q category %q: expected %d posts, got %d", tt.query, tt.category, tt.want, len(got))
		}
	}
}

func TestBlogService_RemoteFailure(t *testing.T) {
	remote := mocks.NewMockPlaceholderClient()
	remote.ListPostsError = domain.ErrRemote
	svc := NewBlogService(remote, logging.Discard())

	if _, err := svc.Posts(context.Background(), 5, "", ""); !errors.Is(err, domain.ErrRemote) {
		t.Errorf("expected ErrRemote, got %v", err)
	}
}

func TestBlogService_Post(t *testing.T) {
	svc := NewBlogService(mocks.NewMockPlaceholderClient(), logging.Discard())
	ctx := context.Background()

	post, err := svc.Post(ctx, 13)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if post.Title != "Understanding Emotional Burnout" {
		t.Errorf("post 13 should use theme 3, got %q", post.Title)
	}
	if post.Author.Name != "Remote User 2" || post.Author.Email != "user2@placeholder.dev" {
		t.Errorf("unexpected author %+v", post.Author)
	}

	if _, err := svc.Post(ctx, 999); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestBlogService_Comments(t *testing.T) {
	svc := NewBlogService(mocks.NewMockPlaceholderClient(), logging.Discard())

	comments, err := svc.Comments(context.Background(), 1)
	if err != nil {
		t.Fatalf("Comments: %v", err)
	}
	if len(comments) != 5 {
		t.Fatalf("expected 5 comments, got %d", len(comments))
	}
	if comments[0].Name != "Alex Johnson" || comments[1].Name != "Sam Taylor" {
		t.Errorf("comments should be relabeled with canned users: %+v", comments[:2])
	}
	if comments[2].Body != "This was so uplifting to read. Keep going!" {
		t.Errorf("unexpected body %q", comments[2].Body)
	}
}

func TestBlogService_AddComment(t *testing.T) {
	remote := mocks.NewMockPlaceholderClient()
	svc := NewBlogService(remote, logging.Discard())
	svc.intn = sequence(3, 4)
	ctx := context.Background()

	c, err := svc.AddComment(ctx, 1, "", "", "")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if c.Name != "Casey Williams" || c.Email != "casey.w@example.com" {
		t.Errorf("blank author should use a canned user, got %+v", c)
	}
	if c.Body != "Mental health is so important. Thanks for highlighting this." {
		t.Errorf("blank body should use a canned comment, got %q", c.Body)
	}

	c, err = svc.AddComment(ctx, 1, "Pat", "pat@example.com", "Lovely read")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if c.Name != "Pat" || c.Body != "Lovely read" || c.PostID != "1" {
		t.Errorf("unexpected comment %+v", c)
	}
	if len(remote.CreatedComments) != 2 || remote.CreatedComments[1].Avatar != domain.AvatarURL("Pat") {
		t.Errorf("unexpected remote calls %+v", remote.CreatedComments)
	}
}
