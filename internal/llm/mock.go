package llm

import (
	"context"
	"errors"
	"sync"
)

// MockResponse is one canned completion for the MockClient.
type MockResponse struct {
	Content string
	Err     error
}

// MockClient is a deterministic Client for tests.  It returns canned
// responses in FIFO order and records the user message of every call.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []string
}

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// Complete returns the next canned response, or an UpstreamError when
// the queue is empty.
func (m *MockClient) Complete(_ context.Context, _ string, user string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, user)

	if len(m.responses) == 0 {
		return "", &UpstreamError{Err: errors.New("no canned responses left")}
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Content, nil
}

// CallCount returns the number of Complete calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
