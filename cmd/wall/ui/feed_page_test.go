package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"wallpartners/internal/api"
)

func testFeed() []api.Notification {
	return []api.Notification{
		{ID: "n1", Title: "Collection approved", Body: "**Monsoon Lights** is now live.", CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
		{ID: "n2", Title: "Payout sent", Body: "Your payout is on its way.", CreatedAt: time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC), Read: true},
	}
}

func TestFeedRendersNotifications(t *testing.T) {
	m := NewFeedPage(nil, nil, testStyles())
	m.SetSize(100, 30)

	m, _ = m.Update(feedDataMsg{items: testFeed()})

	view := m.View()
	if !strings.Contains(view, "Collection approved") {
		t.Fatalf("expected notification title in view")
	}
	if !strings.Contains(view, "Payout sent") {
		t.Fatalf("expected second notification in view")
	}
	if strings.Contains(view, "Offline") {
		t.Fatalf("did not expect offline banner for a live fetch")
	}
}

func TestFeedCachedBannerShown(t *testing.T) {
	m := NewFeedPage(nil, nil, testStyles())
	m.SetSize(100, 30)

	m, _ = m.Update(feedDataMsg{items: testFeed(), cached: true, err: errors.New("dial tcp: connection refused")})

	view := m.View()
	if !strings.Contains(view, "Offline") {
		t.Fatalf("expected offline banner for cached feed")
	}
	if !strings.Contains(view, "Collection approved") {
		t.Fatalf("expected cached items rendered")
	}
}

func TestFeedErrorWithoutCache(t *testing.T) {
	m := NewFeedPage(nil, nil, testStyles())
	m.SetSize(100, 30)

	m, _ = m.Update(feedDataMsg{err: errors.New("dial tcp: connection refused")})

	if !strings.Contains(m.View(), "Something went wrong") {
		t.Fatalf("expected friendly error in view")
	}
}

func TestFeedEmptyState(t *testing.T) {
	m := NewFeedPage(nil, nil, testStyles())
	m.SetSize(100, 30)

	m, _ = m.Update(feedDataMsg{})

	if !strings.Contains(m.View(), "Nothing here yet.") {
		t.Fatalf("expected empty-state message")
	}
}
