package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"avatar-trivia/internal/domain"
	"avatar-trivia/internal/repository"
	"avatar-trivia/internal/service"
	"avatar-trivia/internal/social"
)

// AvatarGenerator corre el pipeline de avatar para un usuario.
type AvatarGenerator interface {
	Generate(ctx context.Context, username string, posts []domain.Post) (domain.Avatar, error)
}

// QuizGenerator produce el cuestionario de un avatar.
type QuizGenerator interface {
	Generate(ctx context.Context, avatar domain.Avatar) (domain.QuizSet, error)
}

// AvatarHandler mantiene dependencias para los endpoints de avatar y trivia.
type AvatarHandler struct {
	logger    *zap.Logger
	avatarSvc AvatarGenerator
	triviaSvc QuizGenerator
	source    social.PostSource
	locks     service.UserLocker
	avatars   repository.AvatarRepository
	quizzes   repository.QuizRepository
}

func NewAvatarHandler(
	logger *zap.Logger,
	avatarSvc AvatarGenerator,
	triviaSvc QuizGenerator,
	source social.PostSource,
	locks service.UserLocker,
	avatars repository.AvatarRepository,
	quizzes repository.QuizRepository,
) *AvatarHandler {
	if locks == nil {
		locks = service.NewMemoryUserLocker()
	}
	return &AvatarHandler{
		logger:    logger,
		avatarSvc: avatarSvc,
		triviaSvc: triviaSvc,
		source:    source,
		locks:     locks,
		avatars:   avatars,
		quizzes:   quizzes,
	}
}

// upstreamStatus separa fallas de dependencias externas (encoder, modelo,
// fuente de posts) de las internas: 502 para las primeras, 500 para el resto.
func upstreamStatus(err error) int {
	if errors.Is(err, service.ErrUpstream) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

type postPayload struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateAvatarAndQuiz maneja POST /avatar/generate: con posts en el payload
// o trayéndolos de la fuente, devuelve {avatar, quiz}. La generación del
// mismo username se serializa con el lock por usuario.
func (h *AvatarHandler) GenerateAvatarAndQuiz(c *gin.Context) {
	var req struct {
		Username string        `json:"username" binding:"required"`
		Posts    []postPayload `json:"posts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()

	posts := make([]domain.Post, 0, len(req.Posts))
	for _, p := range req.Posts {
		posts = append(posts, domain.Post{Text: p.Text, CreatedAt: p.CreatedAt})
	}

	if len(posts) == 0 {
		if h.source == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "posts are required: no post source configured"})
			return
		}
		fetched, err := h.source.RecentPosts(ctx, req.Username)
		if err != nil {
			h.logger.Error("fetch posts failed", zap.String("username", req.Username), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch posts"})
			return
		}
		posts = fetched
	}

	release, err := h.locks.Acquire(ctx, req.Username)
	if err != nil {
		h.logger.Error("acquire user lock failed", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not serialize request"})
		return
	}
	defer release()

	avatar, err := h.avatarSvc.Generate(ctx, req.Username, posts)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPost) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("generate avatar failed", zap.String("username", req.Username), zap.Error(err))
		c.JSON(upstreamStatus(err), gin.H{"error": "could not generate avatar"})
		return
	}

	quiz, err := h.triviaSvc.Generate(ctx, avatar)
	if err != nil {
		h.logger.Error("generate quiz failed", zap.String("username", req.Username), zap.Error(err))
		c.JSON(upstreamStatus(err), gin.H{"error": "could not generate quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"avatar": avatar,
		"quiz":   quiz,
	})
}

// GetAvatar maneja GET /avatar/:username.
func (h *AvatarHandler) GetAvatar(c *gin.Context) {
	username := c.Param("username")

	avatar, err := h.avatars.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "avatar not found"})
			return
		}
		h.logger.Error("get avatar failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": avatar})
}

// GetQuiz maneja GET /quiz/:username.
func (h *AvatarHandler) GetQuiz(c *gin.Context) {
	username := c.Param("username")

	quiz, err := h.quizzes.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		h.logger.Error("get quiz failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

// GetTimeline maneja GET /timeline/:username: passthrough de verificación
// contra la fuente de posts.
func (h *AvatarHandler) GetTimeline(c *gin.Context) {
	if h.source == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "post source not configured"})
		return
	}

	username := c.Param("username")
	posts, err := h.source.RecentPosts(c.Request.Context(), username)
	if err != nil {
		h.logger.Error("fetch timeline failed", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch timeline"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
