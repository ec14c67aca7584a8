package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpartners/internal/api"
	"wallpartners/internal/onboarding"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDraftRoundTrip(t *testing.T) {
	s := openTestStore(t)

	form := onboarding.Form{
		FullName: "Asha Rao",
		Contact:  "asha@example.com",
		Role:     onboarding.RolePhotographer,
		Genres:   onboarding.GenreStreet,
	}
	require.NoError(t, s.SaveDraft(form, 2))

	got, step, ok, err := s.LoadDraft()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, step)
	if diff := cmp.Diff(form, got); diff != "" {
		t.Fatalf("draft mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestSaveDraftReplacesPrevious(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveDraft(onboarding.Form{FullName: "First"}, 1))
	require.NoError(t, s.SaveDraft(onboarding.Form{FullName: "Second"}, 3))

	got, step, ok, err := s.LoadDraft()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Second", got.FullName)
	assert.Equal(t, 3, step)
}

func TestLoadDraftWhenNoneSaved(t *testing.T) {
	s := openTestStore(t)

	_, _, ok, err := s.LoadDraft()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearDraft(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveDraft(onboarding.Form{FullName: "Asha"}, 4))

	require.NoError(t, s.ClearDraft())
	_, _, ok, err := s.LoadDraft()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an empty store is a no-op.
	require.NoError(t, s.ClearDraft())
}

func TestDraftSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveDraft(onboarding.Form{FullName: "Asha"}, 2))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, step, ok, err := reopened.LoadDraft()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Asha", got.FullName)
	assert.Equal(t, 2, step)
}

func TestNotificationCacheNewestFirst(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	items := []api.Notification{
		{ID: "n1", Title: "Welcome", Body: "Hello", CreatedAt: base},
		{ID: "n2", Title: "Collection approved", Body: "**Monsoon Lights** is live", CreatedAt: base.Add(time.Hour), Read: true},
	}
	require.NoError(t, s.CacheNotifications(items))

	got, err := s.CachedNotifications()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "n2", got[0].ID)
	assert.True(t, got[0].Read)
	assert.Equal(t, "n1", got[1].ID)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(time.Hour)))
}

func TestCacheNotificationsReplacesFeed(t *testing.T) {
	s := openTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.CacheNotifications([]api.Notification{
		{ID: "old", Title: "Old", Body: "gone after refresh", CreatedAt: now},
	}))
	require.NoError(t, s.CacheNotifications([]api.Notification{
		{ID: "new", Title: "New", Body: "current feed", CreatedAt: now},
	}))

	got, err := s.CachedNotifications()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}

func TestCachedNotificationsEmpty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.CachedNotifications()
	require.NoError(t, err)
	assert.Empty(t, got)
}
