package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient_ReplaysInOrder(t *testing.T) {
	boom := errors.New("boom")
	client := NewMockClient(MockResponse{Text: "first"}, MockResponse{Err: boom})
	client.Unavailable = map[string]bool{"gone": true}

	completion, err := client.Complete(context.Background(), []string{"gone", "mock-model"}, []Message{{Role: RoleUser, Content: "hi"}}, 0.2)
	require.NoError(t, err)
	assert.Equal(t, &Completion{Text: "first", Model: "mock-model"}, completion)

	_, err = client.Complete(context.Background(), []string{"mock-model"}, nil, 0.2)
	assert.ErrorIs(t, err, boom)

	_, err = client.Complete(context.Background(), []string{"mock-model"}, nil, 0.2)
	assert.ErrorIs(t, err, ErrMockExhausted)

	calls := client.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "hi", calls[0].Messages[0].Content)
	assert.True(t, client.Available())
}
