package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"avatar-trivia/internal/domain"
)

// StaticQuizStrategy selecciona 20 plantillas pre-ligadas de un pool fijo
// barajado. El balance por categoría es incidental al shuffle; no se
// rebalancea (comportamiento heredado, mantenido a propósito).
type StaticQuizStrategy struct {
	pool   []domain.QuestionTemplate
	rng    *rand.Rand
	logger *zap.Logger
}

// NewStaticQuizStrategy usa el pool autorado de 20 plantillas. Con rng nil
// se auto-siembra.
func NewStaticQuizStrategy(rng *rand.Rand, logger *zap.Logger) *StaticQuizStrategy {
	return NewStaticQuizStrategyWithPool(staticTemplates, rng, logger)
}

// NewStaticQuizStrategyWithPool permite inyectar un pool propio (tests).
func NewStaticQuizStrategyWithPool(pool []domain.QuestionTemplate, rng *rand.Rand, logger *zap.Logger) *StaticQuizStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaticQuizStrategy{pool: pool, rng: rng, logger: logger}
}

// Generate baraja el pool y emite las primeras 20 plantillas materializadas
// con IDs 1..20. Un pool que no alcanza para 20 preguntas es un error duro:
// no se repiten plantillas.
func (g *StaticQuizStrategy) Generate(ctx context.Context, avatar domain.Avatar) (domain.QuizSet, error) {
	order := g.rng.Perm(len(g.pool))

	questions := make([]domain.Question, 0, domain.QuizSize)
	for _, idx := range order {
		if len(questions) == domain.QuizSize {
			break
		}
		tpl := g.pool[idx]

		q, err := materializeStatic(tpl, avatar)
		if err != nil {
			if errors.Is(err, ErrMissingAvatarField) {
				g.logger.Warn("template skipped", zap.String("template", tpl.Text), zap.Error(err))
				continue
			}
			return domain.QuizSet{}, err
		}
		questions = append(questions, q)
	}

	if len(questions) < domain.QuizSize {
		return domain.QuizSet{}, fmt.Errorf("have %d of %d questions: %w", len(questions), domain.QuizSize, ErrTemplatePoolExhausted)
	}

	return buildQuizSet(avatar.Username, questions), nil
}

func materializeStatic(tpl domain.QuestionTemplate, avatar domain.Avatar) (domain.Question, error) {
	text, err := resolveText(tpl.Text, avatar)
	if err != nil {
		return domain.Question{}, err
	}

	options := make([]string, len(tpl.Options))
	for i, opt := range tpl.Options {
		resolved, err := resolveText(opt, avatar)
		if err != nil {
			return domain.Question{}, err
		}
		options[i] = resolved
	}

	correct, err := resolveAnswer(tpl.Answer, avatar)
	if err != nil {
		return domain.Question{}, err
	}

	return newQuestion(tpl, text, options, correct), nil
}
