package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"avatar-trivia/internal/config"
	"avatar-trivia/internal/domain"
	"avatar-trivia/internal/embedding"
	"avatar-trivia/internal/llm"
	"avatar-trivia/internal/service"
)

// avatargen corre el pipeline fuera de línea: lee <username>_tweets.json y
// escribe <username>_avatar.json y <username>_trivia.json en el directorio
// actual, sin base de datos ni servidor.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: avatargen <username>")
		os.Exit(1)
	}
	username := os.Args[1]

	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	posts, err := loadPosts(username)
	if err != nil {
		logger.Fatal("load posts", zap.Error(err))
	}
	logger.Info("posts loaded", zap.String("username", username), zap.Int("count", len(posts)))

	modelTimeout := time.Duration(cfg.ModelTimeoutSeconds) * time.Second
	encoder := embedding.NewHTTPEncoder(cfg.EmbedBaseURL, cfg.EmbedAPIKey, cfg.EmbedModel, logger)
	extractor := embedding.NewExtractor(encoder, cfg.EmbedDim, modelTimeout)

	cleaned, err := service.NormalizePosts(posts)
	if err != nil {
		logger.Fatal("normalize posts", zap.Error(err))
	}

	vec, err := extractor.Extract(ctx, cleaned)
	if err != nil {
		logger.Fatal("extract embedding", zap.Error(err))
	}

	scorer := service.NewTraitScorer(nil)
	traits := scorer.Score(vec)
	attrs := service.InferAttributes(posts)
	avatar := service.AssembleAvatar(username, traits, attrs, vec)

	if err := writeJSON(username+"_avatar.json", avatar); err != nil {
		logger.Fatal("write avatar", zap.Error(err))
	}
	logger.Info("avatar written", zap.String("file", username+"_avatar.json"))

	var strategy service.QuizStrategy
	switch cfg.TriviaStrategy {
	case "generative":
		llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
		strategy = service.NewGenerativeQuizStrategy(llmClient, nil, modelTimeout, logger)
	default:
		strategy = service.NewStaticQuizStrategy(nil, logger)
	}

	quiz, err := strategy.Generate(ctx, avatar)
	if err != nil {
		logger.Fatal("generate quiz", zap.Error(err))
	}

	if err := writeJSON(username+"_trivia.json", quiz); err != nil {
		logger.Fatal("write quiz", zap.Error(err))
	}
	logger.Info("quiz written",
		zap.String("file", username+"_trivia.json"),
		zap.Int("questions", len(quiz.Questions)),
	)
}

func loadPosts(username string) ([]domain.Post, error) {
	raw, err := os.ReadFile(username + "_tweets.json")
	if err != nil {
		return nil, err
	}
	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
