package mocks

import (
	"fmt"

	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
)

// UserIdentity is the seeded regular user.
func UserIdentity() domain.Identity {
	return domain.Identity{
		ID: "1", Name: "John Doe", Email: "user@example.com",
		Role: domain.RoleUser, Avatar: domain.AvatarURL("John"),
	}
}

// AdminIdentity is the seeded administrator.
func AdminIdentity() domain.Identity {
	return domain.Identity{
		ID: "2", Name: "Admin User", Email: "admin@example.com",
		Role: domain.RoleAdmin, Avatar: domain.AvatarURL("Admin"),
	}
}

// SampleRemotePosts returns n posts with ids 1..n, ten per user.
func SampleRemotePosts(n int) []domain.RemotePost {
	posts := make([]domain.RemotePost, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, domain.RemotePost{
			UserID: (i-1)/10 + 1,
			ID:     i,
			Title:  fmt.Sprintf("sunt aut facere %d", i),
			Body:   "quia et suscipit suscipit recusandae",
		})
	}
	return posts
}

// SampleRemoteUsers returns n users with ids 1..n.
func SampleRemoteUsers(n int) []domain.RemoteUser {
	users := make([]domain.RemoteUser, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, domain.RemoteUser{
			ID:       i,
			Name:     fmt.Sprintf("Remote User %d", i),
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@placeholder.dev", i),
		})
	}
	return users
}

// SampleRemoteComments returns perPost comments for each of posts 1..posts.
func SampleRemoteComments(posts, perPost int) []domain.RemoteComment {
	comments := make([]domain.RemoteComment, 0, posts*perPost)
	id := 1
	for p := 1; p <= posts; p++ {
		for c := 0; c < perPost; c++ {
			comments = append(comments, domain.RemoteComment{
				PostID: p,
				ID:     id,
				Name:   "id labore ex et quam laborum",
				Email:  fmt.Sprintf("c%d@placeholder.dev", id),
				Body:   "laudantium enim quasi est quidem magnam",
			})
			id++
		}
	}
	return comments
}
