package llm

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a test double for Client. Replies are returned in order for
// GenerateContent and GenerateJSON alike; when the reply list runs out the
// last reply repeats. Set Err to make every call fail.
type MockClient struct {
	mu      sync.Mutex
	Replies []string
	Err     error
	Calls   []string
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) next(prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Replies) == 0 {
		return "", fmt.Errorf("mock has no replies configured")
	}
	idx := len(m.Calls) - 1
	if idx >= len(m.Replies) {
		idx = len(m.Replies) - 1
	}
	return m.Replies[idx], nil
}

// GenerateContent returns the next canned reply.
func (m *MockClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	return m.next(prompt)
}

// GenerateJSON returns the next canned reply.
func (m *MockClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	return m.next(prompt)
}

// Close is a no-op.
func (m *MockClient) Close() error { return nil }

// CallCount returns how many generation calls the mock has served.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
