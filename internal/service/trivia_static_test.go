package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"go.uber.org/zap"

	"avatar-trivia/internal/domain"
)

func testAvatar() domain.Avatar {
	return domain.Avatar{
		Username: "alex.base",
		Big5: domain.Big5Traits{
			Openness:          0.82,
			Conscientiousness: 0.71,
			Extraversion:      0.63,
			Agreeableness:     0.5,
			Neuroticism:       0.31,
		},
		Attributes: domain.AttributeSet{
			Interests:          []string{"Artificial Intelligence", "Blockchain"},
			Values:             []string{"Innovation"},
			Goals:              []string{"Build decentralized solutions"},
			CommunicationStyle: "Enthusiastic and technical",
		},
	}
}

func TestStaticQuizInvariants(t *testing.T) {
	strategy := NewStaticQuizStrategy(rand.New(rand.NewSource(1)), zap.NewNop())

	quiz, err := strategy.Generate(context.Background(), testAvatar())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(quiz.Questions) != domain.QuizSize {
		t.Fatalf("expected %d questions, got %d", domain.QuizSize, len(quiz.Questions))
	}

	seenIDs := make(map[int]bool)
	total := 0
	for _, q := range quiz.Questions {
		if seenIDs[q.QuestionID] {
			t.Fatalf("duplicate question id %d", q.QuestionID)
		}
		seenIDs[q.QuestionID] = true

		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			t.Fatalf("correct answer %d out of range", q.CorrectAnswer)
		}
		if len(q.Options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(q.Options))
		}
		if q.StakeAmount != domain.QuestionStake || q.Reward != domain.QuestionReward {
			t.Fatalf("unexpected stake/reward: %f/%f", q.StakeAmount, q.Reward)
		}
	}
	for _, count := range quiz.Categories {
		total += count
	}
	if total != domain.QuizSize {
		t.Fatalf("category counts sum to %d, expected %d", total, domain.QuizSize)
	}
}

func TestStaticQuizCoversAllCategories(t *testing.T) {
	strategy := NewStaticQuizStrategy(rand.New(rand.NewSource(3)), zap.NewNop())

	quiz, err := strategy.Generate(context.Background(), testAvatar())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, cat := range domain.Categories {
		if quiz.Categories[cat] == 0 {
			t.Fatalf("expected category %s represented, got %v", cat, quiz.Categories)
		}
	}
}

func TestStaticQuizInterpolatesUsername(t *testing.T) {
	strategy := NewStaticQuizStrategy(rand.New(rand.NewSource(5)), zap.NewNop())

	quiz, err := strategy.Generate(context.Background(), testAvatar())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, q := range quiz.Questions {
		if strings.Contains(q.Text, "{username}") {
			t.Fatalf("unresolved placeholder in %q", q.Text)
		}
		if !strings.Contains(q.Text, "alex.base") {
			t.Fatalf("expected username interpolated in %q", q.Text)
		}
	}
}

func TestStaticQuizShortPoolFails(t *testing.T) {
	strategy := NewStaticQuizStrategyWithPool(staticTemplates[:5], rand.New(rand.NewSource(1)), zap.NewNop())

	_, err := strategy.Generate(context.Background(), testAvatar())
	if !errors.Is(err, ErrTemplatePoolExhausted) {
		t.Fatalf("expected ErrTemplatePoolExhausted, got %v", err)
	}
}
