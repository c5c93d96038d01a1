package store

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStorage()

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, s.Save(ctx, "abc123"))
	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, s.Save(ctx, "def456"))
	token, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "def456", token, "last write wins")

	require.NoError(t, s.Delete(ctx))
	require.NoError(t, s.Delete(ctx), "deleting a missing token is a no-op")

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestMemoryTokenStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStorage()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Save(ctx, strconv.Itoa(i))
			_, _ = s.Load(ctx)
			if i%7 == 0 {
				_ = s.Delete(ctx)
			}
		}()
	}
	wg.Wait()
}
