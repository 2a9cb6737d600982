package embedding

import "context"

// MockEncoder permite tests sin encoder real. Vector devuelve el mismo
// vector para todo texto; Fn, si está definida, tiene prioridad.
type MockEncoder struct {
	Vector []float32
	Err    error
	Fn     func(text string) ([]float32, error)

	Inputs []string
}

func (m *MockEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	m.Inputs = append(m.Inputs, text)
	if m.Fn != nil {
		return m.Fn(text)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Vector, nil
}
