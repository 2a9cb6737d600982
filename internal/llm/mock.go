package llm

import "context"

// MockClient permite tests sin llamar a un LLM real. Si Responses tiene
// elementos, se devuelven en orden; agotados, se repite Response.
type MockClient struct {
	Response  string
	Responses []string
	Err       error

	Prompts []string
	next    int
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if m.next < len(m.Responses) {
		resp := m.Responses[m.next]
		m.next++
		return resp, nil
	}
	return m.Response, nil
}
