package llm

import "context"

// MockClient permite tests sin llamar a un LLM real. Calls cuenta las
// invocaciones para poder afirmar que el generador NO fue llamado en los
// caminos que lo prohiben (ids inexistentes, equipo vacio).
type MockClient struct {
	Response   string
	Err        error
	Calls      int
	LastPrompt string
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.Response, nil
}
