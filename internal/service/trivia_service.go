package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"avatar-trivia/internal/domain"
	"avatar-trivia/internal/ipfs"
	"avatar-trivia/internal/repository"
)

// TriviaService genera el cuestionario de un avatar con la estrategia
// configurada y lo persiste, con el mismo esquema de degradación que el
// avatar: pin de IPFS opcional, escritura en base fatal.
type TriviaService struct {
	strategy QuizStrategy
	quizzes  repository.QuizRepository
	pinner   ipfs.Pinner
	logger   *zap.Logger
}

func NewTriviaService(
	strategy QuizStrategy,
	quizzes repository.QuizRepository,
	pinner ipfs.Pinner,
	logger *zap.Logger,
) *TriviaService {
	if pinner == nil {
		pinner = ipfs.Disabled{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TriviaService{
		strategy: strategy,
		quizzes:  quizzes,
		pinner:   pinner,
		logger:   logger,
	}
}

// Generate produce y persiste el QuizSet del avatar dado.
func (s *TriviaService) Generate(ctx context.Context, avatar domain.Avatar) (domain.QuizSet, error) {
	quiz, err := s.strategy.Generate(ctx, avatar)
	if err != nil {
		return domain.QuizSet{}, fmt.Errorf("generate quiz: %w", err)
	}

	if s.pinner.Enabled() {
		payload, err := json.Marshal(quiz)
		if err != nil {
			return domain.QuizSet{}, fmt.Errorf("marshal quiz: %w", err)
		}
		hash, err := s.pinner.Add(ctx, avatar.Username+"_trivia.json", payload)
		if err != nil {
			s.logger.Warn("quiz pin failed", zap.String("username", avatar.Username), zap.Error(err))
		} else {
			quiz.IPFSHash = hash
		}
	}

	if s.quizzes != nil {
		if err := s.quizzes.Upsert(ctx, quiz); err != nil {
			return domain.QuizSet{}, fmt.Errorf("persist quiz: %w", err)
		}
	}

	return quiz, nil
}
