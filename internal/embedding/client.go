package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Encoder define la interfaz hacia el encoder de texto preentrenado: un
// vector semántico por texto. El pooling por token ocurre del lado del
// encoder; este cliente solo ve el vector final.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// HTTPEncoder implementa Encoder contra una API de embeddings OpenAI-compatible.
type HTTPEncoder struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPEncoder construye un cliente apuntando al endpoint /embeddings.
func NewHTTPEncoder(baseURL, apiKey, model string, logger *zap.Logger) *HTTPEncoder {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPEncoder{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (c *HTTPEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	reqBody := embedRequest{Model: c.model, Input: text}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embeddings", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("encoder error response",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return nil, fmt.Errorf("encoder http error: status=%d", resp.StatusCode)
	}

	var er embedResponse
	if err := json.Unmarshal(respBody, &er); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if er.Error != nil {
		return nil, fmt.Errorf("encoder api error: %s", er.Error.Message)
	}

	if len(er.Data) == 0 || len(er.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("encoder empty response")
	}

	return er.Data[0].Embedding, nil
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
