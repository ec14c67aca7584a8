package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpartners/internal/logging"
	"wallpartners/internal/onboarding"
	"wallpartners/internal/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := newTestStore(t)
	client := NewClient(Config{BaseURL: srv.URL}, store, logging.Nop())
	return client, store
}

func TestBearerAttachedToEveryRequest(t *testing.T) {
	var gotAuth, gotRequestID string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	require.NoError(t, store.Set("tok-123"))

	require.NoError(t, client.doJSON(context.Background(), http.MethodGet, "/partner/profile", nil, nil))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestNoBearerWhenLoggedOut(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, client.doJSON(context.Background(), http.MethodGet, "/partner/profile", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedClearsCredentialAndPropagates(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"session expired"}`))
	}))
	require.NoError(t, store.Set("stale-token"))

	err := client.doJSON(context.Background(), http.MethodGet, "/partner/profile", nil, nil)

	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "session expired", UserMessage(err))

	_, ok := store.Token()
	assert.False(t, ok, "401 must clear the stored credential")
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "credential file must be deleted")

	// A second 401 finds nothing to clear and must still propagate.
	err = client.doJSON(context.Background(), http.MethodGet, "/partner/profile", nil, nil)
	assert.True(t, IsUnauthorized(err))
}

func TestExchangeIdentityTokenPersistsCredential(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login-google-firebase", r.URL.Path)
		w.Write([]byte(`{"token":"session-abc"}`))
	}))

	token, err := client.ExchangeIdentityToken(context.Background(), "firebase-id-token")

	require.NoError(t, err)
	assert.Equal(t, "session-abc", token)
	stored, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "session-abc", stored)
}

func TestExchangeIdentityTokenRejectionPersistsNothing(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"identity token rejected"}`))
	}))

	_, err := client.ExchangeIdentityToken(context.Background(), "bad-token")

	var exchErr *AuthExchangeError
	require.ErrorAs(t, err, &exchErr)
	assert.Equal(t, "identity token rejected", UserMessage(err))
	_, ok := store.Token()
	assert.False(t, ok)
}

func TestExchangeIdentityTokenMalformedBody(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))

	_, err := client.ExchangeIdentityToken(context.Background(), "firebase-id-token")

	var exchErr *AuthExchangeError
	require.ErrorAs(t, err, &exchErr)
	_, ok := store.Token()
	assert.False(t, ok, "a malformed exchange response must not persist anything")
}

func TestSubmitOnboardingCarriesBackendMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/onboarding", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"PAN verification service unavailable"}`))
	}))

	err := client.SubmitOnboarding(context.Background(), onboarding.Form{FullName: "Asha Rao"})

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "PAN verification service unavailable", UserMessage(err))
}

func TestApprovalStatus(t *testing.T) {
	status := "pending"
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/onboarding/status", r.URL.Path)
		w.Write([]byte(`{"status":"` + status + `"}`))
	}))

	decision, err := client.ApprovalStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, onboarding.DecisionPending, decision)

	status = "approved"
	decision, err = client.ApprovalStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, onboarding.DecisionApproved, decision)
}

func TestUploadImageSendsMultipart(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "shot.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("jpeg-bytes"), 0644))

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/partner/collections/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Street at Dusk", r.FormValue("title"))
		assert.Equal(t, "Monsoon Lights", r.FormValue("collectionName"))
		assert.Equal(t, "true", r.FormValue("isNewCollection"))
		assert.Equal(t, "street,night", r.FormValue("tags"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "shot.jpg", header.Filename)

		w.Write([]byte(`{}`))
	}))

	err := client.UploadImage(context.Background(), UploadRequest{
		ImagePath:      imagePath,
		CollectionName: "Monsoon Lights",
		NewCollection:  true,
		Title:          "Street at Dusk",
		Description:    "Handheld, 35mm",
		Tags:           []string{"street", "night"},
	})
	require.NoError(t, err)
}

func TestListCollectionsFiltersByStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		w.Write([]byte(`[{"id":"c1","name":"Monsoon Lights","status":"pending","imageCount":12}]`))
	}))

	got, err := client.ListCollections(context.Background(), CollectionPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Monsoon Lights", got[0].Name)
	assert.Equal(t, CollectionPending, got[0].Status)
}

func TestUserMessageFallsBackToGenericLine(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream has fallen over`)) // not JSON
	}))

	err := client.doJSON(context.Background(), http.MethodGet, "/partner/dashboard", nil, nil)

	require.Error(t, err)
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(err))
}
