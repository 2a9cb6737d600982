package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"avatar-trivia/internal/domain"
)

// maxTimelinePosts acota el fetch a los posts más recientes.
const maxTimelinePosts = 50

// PostSource entrega los posts recientes de un usuario. Cualquier falla de
// fetch aborta la operación completa de generación: nunca un avatar parcial
// desde un timeline parcial.
type PostSource interface {
	RecentPosts(ctx context.Context, username string) ([]domain.Post, error)
}

// XClient implementa PostSource contra la API v2 de X con bearer token.
type XClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

func NewXClient(baseURL, token string, logger *zap.Logger) *XClient {
	if baseURL == "" {
		baseURL = "https://api.x.com"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &XClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// RecentPosts resuelve el ID del usuario y trae hasta 50 posts con fecha.
func (c *XClient) RecentPosts(ctx context.Context, username string) ([]domain.Post, error) {
	userID, err := c.lookupUserID(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user %s: %w", username, err)
	}

	endpoint := fmt.Sprintf("%s/2/users/%s/tweets?max_results=%d&tweet.fields=created_at",
		c.baseURL, url.PathEscape(userID), maxTimelinePosts)

	var body timelineResponse
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, fmt.Errorf("fetch timeline for %s: %w", username, err)
	}

	posts := make([]domain.Post, 0, len(body.Data))
	for _, item := range body.Data {
		createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
		if err != nil {
			createdAt = time.Time{}
		}
		posts = append(posts, domain.Post{Text: item.Text, CreatedAt: createdAt})
	}
	return posts, nil
}

func (c *XClient) lookupUserID(ctx context.Context, username string) (string, error) {
	endpoint := c.baseURL + "/2/users/by/username/" + url.PathEscape(username)

	var body userLookupResponse
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return "", err
	}
	if body.Data.ID == "" {
		return "", fmt.Errorf("user %s not found", username)
	}
	return body.Data.ID, nil
}

func (c *XClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("x api error response",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return fmt.Errorf("x api error: status=%d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

type userLookupResponse struct {
	Data struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"data"`
}

type timelineResponse struct {
	Data []struct {
		Text      string `json:"text"`
		CreatedAt string `json:"created_at"`
	} `json:"data"`
}
