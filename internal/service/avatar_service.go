package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"avatar-trivia/internal/domain"
	"avatar-trivia/internal/ipfs"
	"avatar-trivia/internal/repository"
)

// Embedder es el extractor de embeddings visto desde el servicio.
type Embedder interface {
	Extract(ctx context.Context, texts []string) ([]float32, error)
}

// AvatarService corre el pipeline completo de un usuario: normalizar →
// extraer embedding → puntuar rasgos → inferir atributos → ensamblar →
// persistir. Flujo secuencial único por request; requests de usuarios
// distintos corren en paralelo sin estado compartido.
type AvatarService struct {
	embedder Embedder
	scorer   *TraitScorer
	avatars  repository.AvatarRepository
	pinner   ipfs.Pinner
	logger   *zap.Logger
}

func NewAvatarService(
	embedder Embedder,
	scorer *TraitScorer,
	avatars repository.AvatarRepository,
	pinner ipfs.Pinner,
	logger *zap.Logger,
) *AvatarService {
	if pinner == nil {
		pinner = ipfs.Disabled{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvatarService{
		embedder: embedder,
		scorer:   scorer,
		avatars:  avatars,
		pinner:   pinner,
		logger:   logger,
	}
}

// Generate produce y persiste el avatar del usuario. La subida a IPFS degrada
// con gracia: si falla, se loguea y el avatar sale sin hash; la persistencia
// en base sí es fatal.
func (s *AvatarService) Generate(ctx context.Context, username string, posts []domain.Post) (domain.Avatar, error) {
	cleaned, err := NormalizePosts(posts)
	if err != nil {
		return domain.Avatar{}, err
	}

	vec, err := s.embedder.Extract(ctx, cleaned)
	if err != nil {
		return domain.Avatar{}, fmt.Errorf("extract embedding: %w: %w", ErrUpstream, err)
	}

	traits := s.scorer.Score(vec)
	attrs := InferAttributes(posts)
	avatar := AssembleAvatar(username, traits, attrs, vec)

	if s.pinner.Enabled() {
		payload, err := json.Marshal(avatar)
		if err != nil {
			return domain.Avatar{}, fmt.Errorf("marshal avatar: %w", err)
		}
		hash, err := s.pinner.Add(ctx, username+"_avatar.json", payload)
		if err != nil {
			s.logger.Warn("avatar pin failed", zap.String("username", username), zap.Error(err))
		} else {
			avatar.IPFSHash = hash
		}
	}

	if s.avatars != nil {
		if err := s.avatars.Upsert(ctx, avatar); err != nil {
			return domain.Avatar{}, fmt.Errorf("persist avatar: %w", err)
		}
	}

	return avatar, nil
}

// AssembleAvatar compone el registro final con su descripción templada.
// Determinista dado rasgos y atributos idénticos.
func AssembleAvatar(username string, traits domain.Big5Traits, attrs domain.AttributeSet, vec []float32) domain.Avatar {
	return domain.Avatar{
		ID:          uuid.New(),
		Username:    username,
		Big5:        traits,
		Attributes:  attrs,
		Description: buildDescription(username, attrs),
		Embedding:   pgvector.NewVector(vec),
		CreatedAt:   time.Now().UTC(),
	}
}

// buildDescription interpola usuario y atributos seleccionados en la prosa
// fija del avatar; es ilustrativa, no una serialización completa.
func buildDescription(username string, attrs domain.AttributeSet) string {
	engages := "technology"
	if len(attrs.Interests) > 0 {
		engages = humanJoin(attrs.Interests)
	}
	goal := "advance technology"
	if len(attrs.Goals) > 0 {
		goal = strings.ToLower(attrs.Goals[0])
	}
	value := "innovation"
	if len(attrs.Values) > 0 {
		value = strings.ToLower(attrs.Values[0])
	}
	style := "informative"
	if attrs.CommunicationStyle != "" {
		style = strings.ToLower(attrs.CommunicationStyle)
	}

	return fmt.Sprintf(
		"%s is a highly open and conscientious individual, driven by a passion for innovation in technology. "+
			"They thrive in dynamic environments where they engage with %s. "+
			"Their communication is %s, often sharing insights with excitement. "+
			"With a goal to %s, %s values %s and collaboration, reflecting a forward-thinking mindset.",
		username, engages, style, goal, username, value,
	)
}

func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
