package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchSeesExternalLoginAndLogout(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	changed := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() {
			changed <- struct{}{}
		})
	}()

	// Give the watcher a moment to arm.
	time.Sleep(100 * time.Millisecond)

	// Another process logs in.
	other, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, other.Set("external-token"))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher missed the external login")
	}
	token, ok := store.Token()
	require.True(t, ok)
	require.Equal(t, "external-token", token)

	// And logs out again.
	require.NoError(t, other.Clear())
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher missed the external logout")
	}
	_, ok = store.Token()
	require.False(t, ok)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
