package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	token, err := s.Create(ctx, "user-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := s.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "admin", sess.Username)

	require.NoError(t, s.Delete(ctx, token))
	sess, err = s.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	sess, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStoreTokensUnique(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := s.Create(ctx, "user-1", "admin")
		require.NoError(t, err)
		require.False(t, seen[token])
		seen[token] = true
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(-time.Second) // already expired on creation

	token, err := s.Create(ctx, "user-1", "admin")
	require.NoError(t, err)

	sess, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := s.Create(ctx, "user-1", "admin")
			assert.NoError(t, err)
			_, err = s.Get(ctx, token)
			assert.NoError(t, err)
			assert.NoError(t, s.Delete(ctx, token))
		}()
	}
	wg.Wait()
}
