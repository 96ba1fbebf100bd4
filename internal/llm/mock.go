package llm

import (
	"context"
	"errors"
	"sync"
)

// ErrMockExhausted is returned once a MockClient has no scripted responses left.
var ErrMockExhausted = errors.New("mock client has no scripted responses left")

// MockResponse is one scripted reply. A non-nil Err is returned instead of Text.
type MockResponse struct {
	Text string
	Err  error
}

// MockCall records one Complete invocation.
type MockCall struct {
	Models      []string
	Messages    []Message
	Temperature float32
}

// MockClient replays scripted responses in order. Models listed in
// Unavailable are reported as missing so the fallback loop moves past them.
type MockClient struct {
	Unavailable map[string]bool

	mu        sync.Mutex
	responses []MockResponse
	calls     []MockCall
}

// NewMockClient creates a MockClient that returns responses in order.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// Available always returns true
func (m *MockClient) Available() bool { return true }

// Complete records the call and returns the next scripted response for the
// first model not marked unavailable.
func (m *MockClient) Complete(ctx context.Context, models []string, messages []Message, temperature float32) (*Completion, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{
		Models:      append([]string(nil), models...),
		Messages:    append([]Message(nil), messages...),
		Temperature: temperature,
	})
	m.mu.Unlock()

	return CompleteWithFallback(ctx, models, func(_ context.Context, model string) (*Completion, error) {
		if m.Unavailable[model] {
			return nil, &ModelUnavailableError{Model: model}
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if len(m.responses) == 0 {
			return nil, ErrMockExhausted
		}
		next := m.responses[0]
		m.responses = m.responses[1:]
		if next.Err != nil {
			return nil, next.Err
		}
		return &Completion{Text: next.Text, Model: model}, nil
	})
}

// Calls returns a copy of the recorded calls.
func (m *MockClient) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

// Close is a no-op
func (m *MockClient) Close() error { return nil }
