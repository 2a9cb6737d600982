package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"avatar-trivia/internal/domain"
)

type QuizRepository interface {
	Upsert(ctx context.Context, quiz domain.QuizSet) error
	GetByUsername(ctx context.Context, username string) (domain.QuizSet, error)
}

// PgQuizRepository persiste el cuestionario de cada usuario: una fila por
// username, preguntas y conteos como jsonb.
type PgQuizRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuizRepository(pool *pgxpool.Pool) *PgQuizRepository {
	return &PgQuizRepository{pool: pool}
}

func (r *PgQuizRepository) Upsert(ctx context.Context, quiz domain.QuizSet) error {
	const query = `
		INSERT INTO quizzes (username, questions, categories, ipfs_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (username) DO UPDATE SET
			questions = EXCLUDED.questions,
			categories = EXCLUDED.categories,
			ipfs_hash = EXCLUDED.ipfs_hash,
			updated_at = EXCLUDED.updated_at
	`

	questionsJSON, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	categoriesJSON, err := json.Marshal(quiz.Categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		quiz.Username,
		questionsJSON,
		categoriesJSON,
		quiz.IPFSHash,
		time.Now().UTC(),
	)
	return err
}

func (r *PgQuizRepository) GetByUsername(ctx context.Context, username string) (domain.QuizSet, error) {
	const query = `
		SELECT username, questions, categories, ipfs_hash
		FROM quizzes
		WHERE username = $1
	`

	var (
		quiz          domain.QuizSet
		questionsRaw  []byte
		categoriesRaw []byte
	)
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&quiz.Username,
		&questionsRaw,
		&categoriesRaw,
		&quiz.IPFSHash,
	)
	if err != nil {
		// pgx.ErrNoRows pasa sin envolver; el handler lo traduce a 404.
		return domain.QuizSet{}, err
	}

	if err := json.Unmarshal(questionsRaw, &quiz.Questions); err != nil {
		return domain.QuizSet{}, fmt.Errorf("unmarshal questions: %w", err)
	}
	if err := json.Unmarshal(categoriesRaw, &quiz.Categories); err != nil {
		return domain.QuizSet{}, fmt.Errorf("unmarshal categories: %w", err)
	}
	return quiz, nil
}
