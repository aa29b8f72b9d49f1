package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreBeginAndRelease(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	fresh, err := s.Begin(ctx, "pay_1")
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = s.Begin(ctx, "pay_1")
	require.NoError(t, err)
	assert.False(t, fresh)

	// A different key is independent.
	fresh, err = s.Begin(ctx, "pay_2")
	require.NoError(t, err)
	assert.True(t, fresh)

	require.NoError(t, s.Release(ctx, "pay_1"))
	fresh, err = s.Begin(ctx, "pay_1")
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10 * time.Millisecond)

	fresh, err := s.Begin(ctx, "pay_1")
	require.NoError(t, err)
	assert.True(t, fresh)

	time.Sleep(20 * time.Millisecond)

	fresh, err = s.Begin(ctx, "pay_1")
	require.NoError(t, err)
	assert.True(t, fresh, "expired mark should not block a retry")
}
