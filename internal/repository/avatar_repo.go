package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"avatar-trivia/internal/domain"
)

type AvatarRepository interface {
	Upsert(ctx context.Context, avatar domain.Avatar) error
	GetByUsername(ctx context.Context, username string) (domain.Avatar, error)
}

// PgAvatarRepository persiste avatares en Postgres: una fila por username,
// traits y attributes como jsonb y el embedding como columna pgvector.
type PgAvatarRepository struct {
	pool *pgxpool.Pool
}

func NewPgAvatarRepository(pool *pgxpool.Pool) *PgAvatarRepository {
	return &PgAvatarRepository{pool: pool}
}

// Upsert escribe el avatar del usuario pisando cualquier versión anterior
// (last-writer-wins; la serialización por username la da el lock de usuario).
func (r *PgAvatarRepository) Upsert(ctx context.Context, avatar domain.Avatar) error {
	const query = `
		INSERT INTO avatars (id, username, traits, attributes, description, embedding, ipfs_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (username) DO UPDATE SET
			traits = EXCLUDED.traits,
			attributes = EXCLUDED.attributes,
			description = EXCLUDED.description,
			embedding = EXCLUDED.embedding,
			ipfs_hash = EXCLUDED.ipfs_hash,
			updated_at = EXCLUDED.updated_at
	`

	traitsJSON, err := json.Marshal(avatar.Big5)
	if err != nil {
		return fmt.Errorf("marshal traits: %w", err)
	}
	attrsJSON, err := json.Marshal(avatar.Attributes)
	if err != nil {
		return fmt.Errorf("marshal attributes: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		avatar.ID,
		avatar.Username,
		traitsJSON,
		attrsJSON,
		avatar.Description,
		avatar.Embedding,
		avatar.IPFSHash,
		avatar.CreatedAt,
	)
	return err
}

func (r *PgAvatarRepository) GetByUsername(ctx context.Context, username string) (domain.Avatar, error) {
	const query = `
		SELECT id, username, traits, attributes, description, embedding, ipfs_hash, created_at
		FROM avatars
		WHERE username = $1
	`

	var (
		avatar    domain.Avatar
		traitsRaw []byte
		attrsRaw  []byte
	)
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&avatar.ID,
		&avatar.Username,
		&traitsRaw,
		&attrsRaw,
		&avatar.Description,
		&avatar.Embedding,
		&avatar.IPFSHash,
		&avatar.CreatedAt,
	)
	if err != nil {
		// pgx.ErrNoRows pasa sin envolver; el handler lo traduce a 404.
		return domain.Avatar{}, err
	}

	if err := json.Unmarshal(traitsRaw, &avatar.Big5); err != nil {
		return domain.Avatar{}, fmt.Errorf("unmarshal traits: %w", err)
	}
	if err := json.Unmarshal(attrsRaw, &avatar.Attributes); err != nil {
		return domain.Avatar{}, fmt.Errorf("unmarshal attributes: %w", err)
	}
	return avatar, nil
}
