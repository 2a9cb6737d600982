package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Pinner es el colaborador de almacenamiento direccionado por contenido:
// recibe un artefacto serializado y devuelve su hash. Fallar acá nunca es
// fatal para la operación que lo llama.
type Pinner interface {
	Add(ctx context.Context, name string, payload []byte) (string, error)
	Enabled() bool
}

// HTTPClient implementa Pinner contra la API HTTP de un nodo IPFS.
type HTTPClient struct {
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewHTTPClient construye un cliente apuntando a la API del nodo
// (ej: http://127.0.0.1:5001).
func NewHTTPClient(apiURL string, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		apiURL: strings.TrimRight(apiURL, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

func (c *HTTPClient) Enabled() bool { return true }

// Add sube el payload vía /api/v0/add y devuelve el hash de contenido.
func (c *HTTPClient) Add(ctx context.Context, name string, payload []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return "", fmt.Errorf("write payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/api/v0/add", &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("ipfs error response",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return "", fmt.Errorf("ipfs http error: status=%d", resp.StatusCode)
	}

	var ar addResponse
	if err := json.Unmarshal(respBody, &ar); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if ar.Hash == "" {
		return "", errors.New("ipfs response without hash")
	}
	return ar.Hash, nil
}

type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// Disabled es el Pinner nulo para despliegues sin nodo IPFS configurado.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) Add(ctx context.Context, name string, payload []byte) (string, error) {
	return "", errors.New("ipfs not configured")
}
