package social

import (
	"context"

	"avatar-trivia/internal/domain"
)

// MockSource permite tests sin pegarle a la API real.
type MockSource struct {
	Posts []domain.Post
	Err   error

	Usernames []string
}

func (m *MockSource) RecentPosts(ctx context.Context, username string) ([]domain.Post, error) {
	m.Usernames = append(m.Usernames, username)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Posts, nil
}
