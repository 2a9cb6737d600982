package service

import (
	"errors"
	"testing"

	"avatar-trivia/internal/domain"
)

func TestNormalizePostsStripsNoise(t *testing.T) {
	posts := []domain.Post{
		{Text: "Excited to ship #web3 stuff with @alice at https://example.com today!"},
	}

	cleaned, err := NormalizePosts(posts)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cleaned) != 1 {
		t.Fatalf("expected 1 cleaned text, got %d", len(cleaned))
	}

	want := "excited ship stuff today"
	if cleaned[0] != want {
		t.Fatalf("expected %q, got %q", want, cleaned[0])
	}
}

func TestNormalizePostsDropsStopwordsAndNonAlpha(t *testing.T) {
	posts := []domain.Post{
		{Text: "The AI is here and it has 100 uses, really!"},
	}

	cleaned, err := NormalizePosts(posts)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := "ai uses really"
	if cleaned[0] != want {
		t.Fatalf("expected %q, got %q", want, cleaned[0])
	}
}

func TestNormalizePostsKeepsLengthAndEmptyStrings(t *testing.T) {
	posts := []domain.Post{
		{Text: "#tag @mention http://x.y"},
		{Text: "coding"},
	}

	cleaned, err := NormalizePosts(posts)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cleaned) != 2 {
		t.Fatalf("expected same length as input, got %d", len(cleaned))
	}
	if cleaned[0] != "" {
		t.Fatalf("expected empty string for noise-only post, got %q", cleaned[0])
	}
	if cleaned[1] != "coding" {
		t.Fatalf("expected %q, got %q", "coding", cleaned[1])
	}
}

func TestNormalizePostsRejectsPostWithoutText(t *testing.T) {
	posts := []domain.Post{
		{Text: "valid"},
		{Text: ""},
	}

	_, err := NormalizePosts(posts)
	if !errors.Is(err, ErrInvalidPost) {
		t.Fatalf("expected ErrInvalidPost, got %v", err)
	}
}
