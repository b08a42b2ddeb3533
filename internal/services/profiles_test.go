package services

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/booksy/internal/client"
	"github.com/dmitrijs2005/booksy/internal/models"
	"github.com/dmitrijs2005/booksy/internal/repositories/metadata"

	_ "modernc.org/sqlite"
)

func setupMetadata(t *testing.T) *metadata.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return metadata.NewStore(metadata.NewSQLiteRepository(db))
}

type fakeProfileAPI struct {
	profilesFn  func(ctx context.Context) ([]models.Profile, error)
	createFn    func(ctx context.Context, req models.CreateProfileRequest) (*models.Profile, error)
	setsFn      func(ctx context.Context) ([]models.BookmarkSet, error)
	createSetFn func(ctx context.Context, req models.CreateProfileRequest) (*models.BookmarkSet, error)

	listCalls int
}

func (f *fakeProfileAPI) Profiles(ctx context.Context) ([]models.Profile, error) {
	f.listCalls++
	return f.profilesFn(ctx)
}

func (f *fakeProfileAPI) CreateProfile(ctx context.Context, req models.CreateProfileRequest) (*models.Profile, error) {
	return f.createFn(ctx, req)
}

func (f *fakeProfileAPI) BookmarkSets(ctx context.Context) ([]models.BookmarkSet, error) {
	return f.setsFn(ctx)
}

func (f *fakeProfileAPI) CreateBookmarkSet(ctx context.Context, req models.CreateProfileRequest) (*models.BookmarkSet, error) {
	return f.createSetFn(ctx, req)
}

func TestProfilesList_NoToken_EmptyAndNoNetworkCall(t *testing.T) {
	api := &fakeProfileAPI{
		profilesFn: func(ctx context.Context) ([]models.Profile, error) {
			t.Fatal("Profiles must not be called without a token")
			return nil, nil
		},
	}
	p := NewProfiles(api, &memTokens{}, setupMetadata(t), nil)

	got, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, p.Loaded())
	assert.Zero(t, api.listCalls)
}

func TestProfilesList_FetchesOnceAndCaches(t *testing.T) {
	list := []models.Profile{{ID: "p1", Name: "Work"}, {ID: "p2", Name: "Home"}}
	api := &fakeProfileAPI{
		profilesFn: func(ctx context.Context) ([]models.Profile, error) { return list, nil },
	}
	p := NewProfiles(api, &memTokens{token: "tok-1"}, setupMetadata(t), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := p.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, list, got)
	}
	assert.Equal(t, 1, api.listCalls)
	assert.True(t, p.Loaded())
	assert.Equal(t, []string{"p1", "p2"}, p.IDs())
}

func TestProfilesList_FailureStillCountsAsLoaded(t *testing.T) {
	api := &fakeProfileAPI{
		profilesFn: func(ctx context.Context) ([]models.Profile, error) {
			return nil, errors.New("backend down")
		},
	}
	p := NewProfiles(api, &memTokens{token: "tok-1"}, setupMetadata(t), nil)
	ctx := context.Background()

	_, err := p.List(ctx)
	require.Error(t, err)
	assert.True(t, p.Loaded())
	assert.Empty(t, p.Cached())

	// The failed load is cached too, no retry per popup action.
	got, err := p.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, api.listCalls)
}

func TestProfilesList_FallsBackToBookmarkSetRoute(t *testing.T) {
	list := []models.Profile{{ID: "p1", Name: "Work"}}
	api := &fakeProfileAPI{
		profilesFn: func(ctx context.Context) ([]models.Profile, error) {
			return nil, &client.APIError{Status: http.StatusNotFound, Message: "Cannot GET /profile"}
		},
		setsFn: func(ctx context.Context) ([]models.BookmarkSet, error) { return list, nil },
	}
	p := NewProfiles(api, &memTokens{token: "tok-1"}, setupMetadata(t), nil)

	got, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, list, got)
	assert.True(t, p.Loaded())
}

func TestProfilesCreate_AppendsLocallyWithoutRefetch(t *testing.T) {
	list := []models.Profile{{ID: "p1", Name: "Work"}}
	created := models.Profile{ID: "p2", Name: "Home", Description: "evening reading"}
	api := &fakeProfileAPI{
		profilesFn: func(ctx context.Context) ([]models.Profile, error) { return list, nil },
		createFn: func(ctx context.Context, req models.CreateProfileRequest) (*models.Profile, error) {
			assert.Equal(t, "Home", req.Name)
			assert.Equal(t, "evening reading", req.Description)
			return &created, nil
		},
	}
	p := NewProfiles(api, &memTokens{token: "tok-1"}, setupMetadata(t), nil)
	ctx := context.Background()

	_, err := p.List(ctx)
	require.NoError(t, err)

	got, err := p.Create(ctx, "  Home  ", "evening reading")
	require.NoError(t, err)
	assert.Equal(t, created, *got)

	// Existing order kept, new profile last, still one list fetch.
	assert.Equal(t, []string{"p1", "p2"}, p.IDs())
	assert.Equal(t, 1, api.listCalls)
}

func TestProfilesCreate_BlankNameRejected(t *testing.T) {
	api := &fakeProfileAPI{
		createFn: func(ctx context.Context, req models.CreateProfileRequest) (*models.Profile, error) {
			t.Fatal("CreateProfile must not be called with a blank name")
			return nil, nil
		},
	}
	p := NewProfiles(api, &memTokens{token: "tok-1"}, setupMetadata(t), nil)

	_, err := p.Create(context.Background(), "   ", "desc")
	require.ErrorIs(t, err, ErrNameRequired)
}

func TestProfilesCreate_BackendError_CacheUntouched(t *testing.T) {
	api := &fakeProfileAPI{
		profilesFn: func(ctx context.Context) ([]models.Profile, error) {
			return []models.Profile{{ID: "p1", Name: "Work"}}, nil
		},
		createFn: func(ctx context.Context, req models.CreateProfileRequest) (*models.Profile, error) {
			return nil, errors.New("name already taken")
		},
	}
	p := NewProfiles(api, &memTokens{token: "tok-1"}, setupMetadata(t), nil)
	ctx := context.Background()

	_, err := p.List(ctx)
	require.NoError(t, err)

	_, err = p.Create(ctx, "Work", "")
	require.Error(t, err)
	assert.Equal(t, []string{"p1"}, p.IDs())
}

func TestProfilesSelect_PersistsAcrossInstances(t *testing.T) {
	store := setupMetadata(t)
	api := &fakeProfileAPI{}
	ctx := context.Background()

	p := NewProfiles(api, &memTokens{token: "tok-1"}, store, nil)
	require.NoError(t, p.Select(ctx, "p2"))

	// A fresh directory over the same store sees the selection.
	p2 := NewProfiles(api, &memTokens{token: "tok-1"}, store, nil)
	got, err := p2.Selected(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p2", got)
}

func TestProfilesInvalidate_DropsCacheAndSelection(t *testing.T) {
	store := setupMetadata(t)
	api := &fakeProfileAPI{
		profilesFn: func(ctx context.Context) ([]models.Profile, error) {
			return []models.Profile{{ID: "p1", Name: "Work"}}, nil
		},
	}
	p := NewProfiles(api, &memTokens{token: "tok-1"}, store, nil)
	ctx := context.Background()

	_, err := p.List(ctx)
	require.NoError(t, err)
	require.NoError(t, p.Select(ctx, "p1"))

	p.Invalidate(ctx)

	assert.False(t, p.Loaded())
	assert.Empty(t, p.Cached())
	selected, err := p.Selected(ctx)
	require.NoError(t, err)
	assert.Empty(t, selected)
}
