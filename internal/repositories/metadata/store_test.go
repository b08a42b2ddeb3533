package metadata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewSQLiteRepository(setupDB(t)))
}

func TestTokenLifecycle(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.SetToken(ctx, "tok-1"))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	// Overwriting keeps a single token slot.
	require.NoError(t, s.SetToken(ctx, "tok-2"))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)

	require.NoError(t, s.ClearToken(ctx))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestSelectedProfileRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	id, err := s.SelectedProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, s.SetSelectedProfile(ctx, "p-42"))
	id, err = s.SelectedProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p-42", id)

	require.NoError(t, s.ClearSelectedProfile(ctx))
	id, err = s.SelectedProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestLegacySessionRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	ls, err := s.LegacySession(ctx)
	require.NoError(t, err)
	assert.Nil(t, ls)

	ts := time.Now().Truncate(time.Millisecond)
	require.NoError(t, s.SaveLegacySession(ctx, LegacySession{
		Email:     "user@example.com",
		Method:    "google",
		Timestamp: ts,
	}))

	ls, err = s.LegacySession(ctx)
	require.NoError(t, err)
	require.NotNil(t, ls)
	assert.Equal(t, "user@example.com", ls.Email)
	assert.Equal(t, "google", ls.Method)
	assert.True(t, ls.Timestamp.Equal(ts))
}

func TestPruneStaleLegacySession(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		age        time.Duration
		wantPruned bool
	}{
		{"fresh record kept", time.Hour, false},
		{"29 days kept", 29 * 24 * time.Hour, false},
		{"31 days pruned", 31 * 24 * time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupStore(t)
			ctx := context.Background()

			require.NoError(t, s.SaveLegacySession(ctx, LegacySession{
				Email:     "user@example.com",
				Timestamp: now.Add(-tt.age),
			}))

			pruned, err := s.PruneStaleLegacySession(ctx, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPruned, pruned)

			ls, err := s.LegacySession(ctx)
			require.NoError(t, err)
			if tt.wantPruned {
				assert.Nil(t, ls)
			} else {
				assert.NotNil(t, ls)
			}
		})
	}
}

func TestPruneWithoutRecordIsNoop(t *testing.T) {
	s := setupStore(t)

	pruned, err := s.PruneStaleLegacySession(context.Background(), time.Now())
	require.NoError(t, err)
	assert.False(t, pruned)
}

func TestPruneCorruptTimestamp(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	s := NewStore(repo)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, keyAuthenticated, []byte("true")))
	require.NoError(t, repo.Set(ctx, keyLoginTimestamp, []byte("yesterday")))

	pruned, err := s.PruneStaleLegacySession(ctx, time.Now())
	require.NoError(t, err)
	assert.True(t, pruned)

	ls, err := s.LegacySession(ctx)
	require.NoError(t, err)
	assert.Nil(t, ls)
}
