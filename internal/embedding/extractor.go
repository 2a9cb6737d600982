package embedding

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

const defaultMaxTokens = 512

// Extractor convierte textos limpios en un único vector semántico:
// un embedding por texto no vacío, media aritmética entre textos y
// normalización L2 del resultado. La reducción es conmutativa, así que el
// orden de los textos no afecta el vector final.
type Extractor struct {
	encoder   Encoder
	dim       int
	maxTokens int
	timeout   time.Duration
}

// NewExtractor construye un Extractor. dim es la dimensión del encoder
// (768 para el encoder de referencia); timeout acota cada invocación.
func NewExtractor(encoder Encoder, dim int, timeout time.Duration) *Extractor {
	if dim <= 0 {
		dim = 768
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Extractor{
		encoder:   encoder,
		dim:       dim,
		maxTokens: defaultMaxTokens,
		timeout:   timeout,
	}
}

// Dim devuelve la dimensión del vector de salida.
func (e *Extractor) Dim() int {
	return e.dim
}

// Extract devuelve el embedding agregado de los textos no vacíos.
// Invariante: norma L2 == 1 si hubo al menos un texto no vacío; vector
// cero de dimensión dim en caso contrario (política explícita, no error).
func (e *Extractor) Extract(ctx context.Context, texts []string) ([]float32, error) {
	sum := make([]float64, e.dim)
	count := 0

	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}

		vec, err := e.encodeOne(ctx, truncateTokens(text, e.maxTokens))
		if err != nil {
			return nil, fmt.Errorf("encode text: %w", err)
		}
		if len(vec) != e.dim {
			return nil, fmt.Errorf("encoder returned %d dimensions, expected %d", len(vec), e.dim)
		}

		for i, v := range vec {
			sum[i] += float64(v)
		}
		count++
	}

	out := make([]float32, e.dim)
	if count == 0 {
		return out, nil
	}

	var norm float64
	for i := range sum {
		sum[i] /= float64(count)
		norm += sum[i] * sum[i]
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return out, nil
	}

	for i := range sum {
		out[i] = float32(sum[i] / norm)
	}
	return out, nil
}

func (e *Extractor) encodeOne(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.encoder.Encode(ctx, text)
}

// truncateTokens recorta al máximo de entrada del encoder, contando tokens
// separados por espacios.
func truncateTokens(text string, max int) string {
	fields := strings.Fields(text)
	if len(fields) <= max {
		return text
	}
	return strings.Join(fields[:max], " ")
}
