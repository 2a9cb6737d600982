package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"avatar-trivia/internal/config"
	"avatar-trivia/internal/db"
	"avatar-trivia/internal/embedding"
	apihttp "avatar-trivia/internal/http"
	"avatar-trivia/internal/ipfs"
	"avatar-trivia/internal/llm"
	"avatar-trivia/internal/repository"
	"avatar-trivia/internal/service"
	"avatar-trivia/internal/social"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	avatarRepo := repository.NewPgAvatarRepository(pool)
	quizRepo := repository.NewPgQuizRepository(pool)

	modelTimeout := time.Duration(cfg.ModelTimeoutSeconds) * time.Second

	// Modelos construidos una sola vez al arranque y compartidos por handle;
	// nunca se re-instancian por request.
	encoder := embedding.NewHTTPEncoder(cfg.EmbedBaseURL, cfg.EmbedAPIKey, cfg.EmbedModel, logger)
	extractor := embedding.NewExtractor(encoder, cfg.EmbedDim, modelTimeout)
	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)

	var pinner ipfs.Pinner = ipfs.Disabled{}
	if cfg.IPFSAPIURL != "" {
		pinner = ipfs.NewHTTPClient(cfg.IPFSAPIURL, logger)
	} else {
		logger.Info("ipfs not configured, artifacts stored without content hash")
	}

	var strategy service.QuizStrategy
	switch cfg.TriviaStrategy {
	case "generative":
		strategy = service.NewGenerativeQuizStrategy(llmClient, nil, modelTimeout, logger)
	default:
		strategy = service.NewStaticQuizStrategy(nil, logger)
	}

	var locks service.UserLocker
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-process user lock", zap.Error(err))
		} else {
			locks = service.NewRedisUserLocker(redisClient, 2*time.Minute)
		}
		cancel()
	}
	if locks == nil {
		locks = service.NewMemoryUserLocker()
	}

	var source social.PostSource
	if cfg.XBearerToken != "" {
		source = social.NewXClient(cfg.XAPIBaseURL, cfg.XBearerToken, logger)
	} else {
		logger.Info("post source not configured, only payload posts accepted")
	}

	scorer := service.NewTraitScorer(nil)
	avatarSvc := service.NewAvatarService(extractor, scorer, avatarRepo, pinner, logger)
	triviaSvc := service.NewTriviaService(strategy, quizRepo, pinner, logger)

	avatarHandler := apihttp.NewAvatarHandler(logger, avatarSvc, triviaSvc, source, locks, avatarRepo, quizRepo)
	router := apihttp.NewRouter(logger, avatarHandler, cfg.JWTSecret)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("trivia_strategy", cfg.TriviaStrategy),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
