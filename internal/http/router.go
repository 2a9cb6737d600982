package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(logger *zap.Logger, avatarH *AvatarHandler, jwtSecret string) *gin.Engine {
	r := gin.New()

	// Middlewares básicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	generate := r.Group("/")
	if jwtSecret != "" {
		generate.Use(JWTAuthMiddleware(jwtSecret))
	}
	generate.POST("/avatar/generate", avatarH.GenerateAvatarAndQuiz)

	r.GET("/avatar/:username", avatarH.GetAvatar)
	r.GET("/quiz/:username", avatarH.GetQuiz)
	r.GET("/timeline/:username", avatarH.GetTimeline)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
