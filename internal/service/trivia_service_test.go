package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"avatar-trivia/internal/domain"
)

type mockQuizRepo struct {
	saved []domain.QuizSet
	err   error
}

func (m *mockQuizRepo) Upsert(ctx context.Context, quiz domain.QuizSet) error {
	m.saved = append(m.saved, quiz)
	return m.err
}

func (m *mockQuizRepo) GetByUsername(ctx context.Context, username string) (domain.QuizSet, error) {
	return domain.QuizSet{}, errors.New("not implemented")
}

func TestTriviaServicePersistsQuizWithHash(t *testing.T) {
	repo := &mockQuizRepo{}
	pinner := &mockPinner{hash: "QmQuiz456"}
	svc := NewTriviaService(NewStaticQuizStrategy(rand.New(rand.NewSource(2)), zap.NewNop()), repo, pinner, zap.NewNop())

	quiz, err := svc.Generate(context.Background(), testAvatar())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if quiz.IPFSHash != "QmQuiz456" {
		t.Fatalf("expected ipfs hash set, got %q", quiz.IPFSHash)
	}
	if len(repo.saved) != 1 || repo.saved[0].IPFSHash != "QmQuiz456" {
		t.Fatalf("expected quiz persisted with hash, got %+v", repo.saved)
	}
	if pinner.calls != 1 {
		t.Fatalf("expected one pin call, got %d", pinner.calls)
	}
}

func TestTriviaServicePinFailureDegrades(t *testing.T) {
	repo := &mockQuizRepo{}
	pinner := &mockPinner{err: errors.New("ipfs down")}
	svc := NewTriviaService(NewStaticQuizStrategy(rand.New(rand.NewSource(2)), zap.NewNop()), repo, pinner, zap.NewNop())

	quiz, err := svc.Generate(context.Background(), testAvatar())
	if err != nil {
		t.Fatalf("expected pin failure to be non-fatal, got %v", err)
	}
	if quiz.IPFSHash != "" {
		t.Fatalf("expected empty hash, got %q", quiz.IPFSHash)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected quiz still persisted, got %d saves", len(repo.saved))
	}
}

func TestTriviaServiceStrategyFailureAborts(t *testing.T) {
	repo := &mockQuizRepo{}
	strategy := NewStaticQuizStrategyWithPool(staticTemplates[:3], rand.New(rand.NewSource(2)), zap.NewNop())
	svc := NewTriviaService(strategy, repo, nil, zap.NewNop())

	_, err := svc.Generate(context.Background(), testAvatar())
	if !errors.Is(err, ErrTemplatePoolExhausted) {
		t.Fatalf("expected ErrTemplatePoolExhausted, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("expected nothing persisted, got %d saves", len(repo.saved))
	}
}

func TestTriviaServicePersistFailureAborts(t *testing.T) {
	repo := &mockQuizRepo{err: errors.New("db down")}
	svc := NewTriviaService(NewStaticQuizStrategy(rand.New(rand.NewSource(2)), zap.NewNop()), repo, nil, zap.NewNop())

	if _, err := svc.Generate(context.Background(), testAvatar()); err == nil {
		t.Fatal("expected error when persistence fails")
	}
}
