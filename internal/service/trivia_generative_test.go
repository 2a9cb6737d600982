package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"avatar-trivia/internal/domain"
	"avatar-trivia/internal/llm"
)

// seqLLM devuelve una frase distinta por llamada para no chocar con el dedup.
type seqLLM struct {
	calls int
}

func (m *seqLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	return fmt.Sprintf("Question number %d about our user?", m.calls), nil
}

func TestGenerativeQuizExcludesTemplatesWithoutAnswer(t *testing.T) {
	strategy := NewGenerativeQuizStrategy(&seqLLM{}, rand.New(rand.NewSource(1)), 0, zap.NewNop())

	if len(strategy.pool) != len(generativeTemplates)-4 {
		t.Fatalf("expected 4 null-answer templates excluded, pool has %d of %d", len(strategy.pool), len(generativeTemplates))
	}
	for _, tpl := range strategy.pool {
		if tpl.Answer.Derive == "" && (tpl.Answer.Index < 0 || tpl.Answer.Index > 3) {
			t.Fatalf("template without declared answer kept in pool: %q", tpl.Text)
		}
	}
}

func TestGenerativeQuizReachesTwenty(t *testing.T) {
	mock := &seqLLM{}
	strategy := NewGenerativeQuizStrategy(mock, rand.New(rand.NewSource(2)), 0, zap.NewNop())

	quiz, err := strategy.Generate(context.Background(), testAvatar())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(quiz.Questions) != domain.QuizSize {
		t.Fatalf("expected %d questions, got %d", domain.QuizSize, len(quiz.Questions))
	}

	seenText := make(map[string]bool)
	for _, q := range quiz.Questions {
		key := normalizeQuestionText(q.Text)
		if seenText[key] {
			t.Fatalf("duplicate question text %q", q.Text)
		}
		seenText[key] = true

		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			t.Fatalf("correct answer %d out of range", q.CorrectAnswer)
		}
	}

	total := 0
	for _, count := range quiz.Categories {
		total += count
	}
	if total != domain.QuizSize {
		t.Fatalf("category counts sum to %d, expected %d", total, domain.QuizSize)
	}
}

func TestGenerativeQuizResolvesDerivedAnswers(t *testing.T) {
	avatar := testAvatar()

	// Openness 0.82 → escala 0-100 es 82, por encima del umbral 70.
	idx, err := resolveAnswer(domain.DerivedAnswer(domain.DeriveOpennessInnovation), avatar)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected index 0 for high openness, got %d", idx)
	}

	avatar.Big5.Openness = 0.4
	idx, err = resolveAnswer(domain.DerivedAnswer(domain.DeriveOpennessCreative), avatar)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if idx != 2 {
		t.Fatalf("expected index 2 for low openness, got %d", idx)
	}
}

func TestGenerativeQuizSkipsTemplatesNeedingMissingFields(t *testing.T) {
	_, err := resolveAnswer(domain.DerivedAnswer(domain.DeriveNightOwl), testAvatar())
	if !errors.Is(err, ErrMissingAvatarField) {
		t.Fatalf("expected ErrMissingAvatarField, got %v", err)
	}

	_, err = resolveText("What's {username}'s hidden quirk? {quirk}", testAvatar())
	if !errors.Is(err, ErrMissingAvatarField) {
		t.Fatalf("expected ErrMissingAvatarField for {quirk}, got %v", err)
	}
}

// dupLLM repite el texto anterior cada tercera llamada; el dedup rechaza esas
// respuestas sin que cuenten contra el tope de reuso de la plantilla.
type dupLLM struct {
	calls int
	last  string
}

func (m *dupLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	if m.calls%3 == 0 && m.last != "" {
		return m.last, nil
	}
	m.last = fmt.Sprintf("Question number %d about our user?", m.calls)
	return m.last, nil
}

func TestGenerativeReuseCapCountsAcceptedQuestions(t *testing.T) {
	// 10 plantillas con tope 2 dan capacidad exacta para 20 preguntas; si los
	// duplicados gastaran cupo, alguna plantilla quedaría sobre-usada vía la
	// pasada de respaldo.
	pool := make([]domain.QuestionTemplate, 10)
	for i := range pool {
		pool[i] = domain.QuestionTemplate{
			Category: domain.Categories[i%len(domain.Categories)],
			Text:     fmt.Sprintf("Base question %d about {username}?", i),
			Options:  []string{fmt.Sprintf("opt-%d-a", i), "b", "c", "d"},
			Answer:   domain.StaticAnswer(0),
		}
	}
	strategy := NewGenerativeQuizStrategyWithPool(pool, &dupLLM{}, rand.New(rand.NewSource(7)), 0, zap.NewNop())

	quiz, err := strategy.Generate(context.Background(), testAvatar())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(quiz.Questions) != domain.QuizSize {
		t.Fatalf("expected %d questions, got %d", domain.QuizSize, len(quiz.Questions))
	}

	perTemplate := make(map[string]int)
	for _, q := range quiz.Questions {
		perTemplate[q.Options[0]]++
	}
	for marker, count := range perTemplate {
		if count != 2 {
			t.Fatalf("expected each template used exactly twice, %s used %d times", marker, count)
		}
	}
}

func TestGenerativeQuizExhaustionIsHardFailure(t *testing.T) {
	// Una sola plantilla y un modelo que repite siempre el mismo texto: el
	// dedup rechaza todo después de la primera y el presupuesto se agota.
	pool := []domain.QuestionTemplate{
		{Category: domain.CategoryMindset, Text: "What drives {username}?", Options: []string{"A", "B", "C", "D"}, Answer: domain.StaticAnswer(0)},
	}
	mock := &llm.MockClient{Response: "Always the same question?"}
	strategy := NewGenerativeQuizStrategyWithPool(pool, mock, rand.New(rand.NewSource(1)), 0, zap.NewNop())

	_, err := strategy.Generate(context.Background(), testAvatar())
	if !errors.Is(err, ErrQuizIncomplete) {
		t.Fatalf("expected ErrQuizIncomplete, got %v", err)
	}
}

func TestGenerativeQuizModelFailureAborts(t *testing.T) {
	mock := &llm.MockClient{Err: errors.New("model unavailable")}
	strategy := NewGenerativeQuizStrategy(mock, rand.New(rand.NewSource(1)), 0, zap.NewNop())

	_, err := strategy.Generate(context.Background(), testAvatar())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected upstream error from model failure, got %v", err)
	}
}
