package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjephuneh/tractor-whatsapp/internal/application/conversation"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/pricing"
	"github.com/cjephuneh/tractor-whatsapp/internal/domain/session"
	"github.com/cjephuneh/tractor-whatsapp/internal/infrastructure/memory"
)

func newTestRouter(t *testing.T, sessions session.Repository) http.Handler {
	t.Helper()
	if sessions == nil {
		sessions = memory.NewSessionStore()
	}
	items := memory.NewCatalogStore(memory.SeedItems())
	policy, err := pricing.NewPolicy("")
	require.NoError(t, err)
	svc := conversation.NewService(sessions, items, policy, zerolog.Nop())
	return NewServer(svc, NewTwiMLRenderer(""), zerolog.Nop()).Router()
}

func postWebhook(t *testing.T, router http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWebhookRendersTwiML(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postWebhook(t, router, url.Values{"From": {"whatsapp:+254700000001"}, "Body": {"start"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/xml")

	body := rec.Body.String()
	assert.Contains(t, body, "<Response>")
	assert.Contains(t, body, "<Message>")
	assert.Contains(t, body, DefaultMarker+" Welcome to Tractor House!")
}

func TestWebhookViewIncludesMedia(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postWebhook(t, router, url.Values{"From": {"whatsapp:+254700000001"}, "Body": {"view 2"}})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "John Deere 5075E")
	assert.Contains(t, body, "<Media>https://cdn.tractorhouse.example/items/john-deere-5075e.jpg</Media>")
	// Ordered segments: detail, media, call to action.
	assert.Less(t, strings.Index(body, "John Deere 5075E"), strings.Index(body, "<Media>"))
	assert.Less(t, strings.Index(body, "<Media>"), strings.Index(body, "negotiate 2"))
}

func TestWebhookMissingFrom(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postWebhook(t, router, url.Values{"Body": {"start"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingSessionStore struct{}

func (failingSessionStore) Get(ctx context.Context, userID string) (*session.Session, error) {
	return nil, errors.New("store unavailable")
}

func (failingSessionStore) Upsert(ctx context.Context, s *session.Session) error {
	return errors.New("store unavailable")
}

func (failingSessionStore) Delete(ctx context.Context, userID string) error {
	return errors.New("store unavailable")
}

func TestWebhookStoreFailureIsServerError(t *testing.T) {
	router := newTestRouter(t, failingSessionStore{})

	rec := postWebhook(t, router, url.Values{"From": {"whatsapp:+254700000001"}, "Body": {"browse"}})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
