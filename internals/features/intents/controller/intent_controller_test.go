package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"egoejo_backend/internals/configs"
	"egoejo_backend/internals/features/intents/model"
	"egoejo_backend/internals/features/intents/service"
	"egoejo_backend/internals/middlewares"
)

const allowedOrigin = "https://egoejo.org"

var fixedCreatedAt = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

type fakeStore struct {
	mu     sync.Mutex
	calls  int
	err    error
	nextID int64
	last   service.NewIntent
}

func (f *fakeStore) Create(_ context.Context, in service.NewIntent) (*model.IntentModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	return &model.IntentModel{
		IntentID:        f.nextID,
		IntentName:      in.Name,
		IntentEmail:     in.Email,
		IntentProfile:   in.Profile,
		IntentMessage:   in.Message,
		IntentCreatedAt: fixedCreatedAt,
	}, nil
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeNotifier struct {
	err error
	got chan service.IntentSummary
}

func newFakeNotifier(err error) *fakeNotifier {
	return &fakeNotifier{err: err, got: make(chan service.IntentSummary, 1)}
}

func (f *fakeNotifier) NotifyNewIntent(_ context.Context, s service.IntentSummary) error {
	select {
	case f.got <- s:
	default:
	}
	return f.err
}

func newTestApp(store service.IntentStore, notifier service.Notifier) *fiber.App {
	configs.AllowedOrigins = []string{allowedOrigin}
	app := fiber.New()
	public := app.Group("/api/public", middlewares.OriginGuard())
	ctrl := NewIntentController(store, notifier)
	g := public.Group("/intents")
	g.All("/", ctrl.Submit)
	return app
}

func submit(t *testing.T, app *fiber.App, method, origin, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/public/intents", reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if origin != "" {
		req.Header.Set(fiber.HeaderOrigin, origin)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	parsed := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp.StatusCode, parsed
}

const validBody = `{"name":"Alice","email":"a@x.com","profile":"je-decouvre","message":"hello"}`

func TestSubmit_ForbiddenOrigin(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store, newFakeNotifier(nil))

	status, body := submit(t, app, fiber.MethodPost, "https://evil.example", validBody)

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Forbidden origin", body["error"])
	assert.Equal(t, 0, store.callCount())
}

func TestSubmit_PreflightOptions(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store, newFakeNotifier(nil))

	req := httptest.NewRequest(fiber.MethodOptions, "/api/public/intents", nil)
	req.Header.Set(fiber.HeaderOrigin, allowedOrigin)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, allowedOrigin, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	raw, _ := io.ReadAll(resp.Body)
	assert.Empty(t, raw)
	assert.Equal(t, 0, store.callCount())
}

func TestSubmit_MethodNotAllowed(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store, newFakeNotifier(nil))

	status, body := submit(t, app, fiber.MethodGet, allowedOrigin, "")

	assert.Equal(t, fiber.StatusMethodNotAllowed, status)
	assert.Equal(t, "Use POST", body["error"])
	assert.Equal(t, 0, store.callCount())
}

func TestSubmit_HoneypotLooksLikeSuccess(t *testing.T) {
	store := &fakeStore{}
	notifier := newFakeNotifier(nil)
	app := newTestApp(store, notifier)

	// même avec des champs requis absents, la réponse imite un succès
	status, body := submit(t, app, fiber.MethodPost, allowedOrigin,
		`{"name":"Bot","website":"http://spam.example"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	id, present := body["id"]
	assert.True(t, present)
	assert.Nil(t, id)
	assert.Equal(t, 0, store.callCount())

	select {
	case <-notifier.got:
		t.Fatal("le honeypot ne doit pas notifier")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store, newFakeNotifier(nil))

	for name, payload := range map[string]string{
		"sans name":    `{"email":"a@x.com","profile":"je-decouvre"}`,
		"sans email":   `{"name":"Alice","profile":"je-decouvre"}`,
		"sans profile": `{"name":"Alice","email":"a@x.com"}`,
		"vides":        `{"name":"","email":"","profile":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			status, body := submit(t, app, fiber.MethodPost, allowedOrigin, payload)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "Champs manquants", body["error"])
		})
	}
	assert.Equal(t, 0, store.callCount())
}

func TestSubmit_MalformedJSON(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store, newFakeNotifier(nil))

	status, body := submit(t, app, fiber.MethodPost, allowedOrigin, `{pas du json`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Champs manquants", body["error"])
	assert.Equal(t, 0, store.callCount())
}

func TestSubmit_Success(t *testing.T) {
	store := &fakeStore{}
	notifier := newFakeNotifier(nil)
	app := newTestApp(store, notifier)

	status, body := submit(t, app, fiber.MethodPost, allowedOrigin, validBody)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, fixedCreatedAt.Format(time.RFC3339), body["createdAt"])
	assert.Equal(t, 1, store.callCount())

	// la notification part après l'insert, avec les données persistées
	select {
	case got := <-notifier.got:
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "Alice", got.Name)
		assert.Equal(t, "a@x.com", got.Email)
		assert.Equal(t, "je-decouvre", got.Profile)
		assert.Equal(t, fixedCreatedAt, got.CreatedAt)
	case <-time.After(2 * time.Second):
		t.Fatal("notification jamais déclenchée")
	}
}

func TestSubmit_DuplicateSameDay(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store, newFakeNotifier(nil))

	status, _ := submit(t, app, fiber.MethodPost, allowedOrigin, validBody)
	require.Equal(t, fiber.StatusOK, status)

	store.err = service.ErrDuplicateIntent
	status, body := submit(t, app, fiber.MethodPost, allowedOrigin, validBody)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Erreur serveur", body["error"])
}

func TestSubmit_StoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	app := newTestApp(store, newFakeNotifier(nil))

	status, body := submit(t, app, fiber.MethodPost, allowedOrigin, validBody)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Erreur serveur", body["error"])
	// le détail interne ne fuit jamais vers le client
	assert.NotContains(t, body["error"], "connection refused")
}

func TestSubmit_NotifierFailureDoesNotAffectResponse(t *testing.T) {
	store := &fakeStore{}
	notifier := newFakeNotifier(errors.New("provider down"))
	app := newTestApp(store, notifier)

	status, body := submit(t, app, fiber.MethodPost, allowedOrigin, validBody)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(1), body["id"])
}

func TestSubmit_CapturesIPAndUserAgent(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store, newFakeNotifier(nil))

	req := httptest.NewRequest(fiber.MethodPost, "/api/public/intents", strings.NewReader(validBody))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderOrigin, allowedOrigin)
	req.Header.Set(fiber.HeaderUserAgent, "Mozilla/5.0 (test)")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, 1, store.callCount())
	require.NotNil(t, store.last.UserAgent)
	assert.Equal(t, "Mozilla/5.0 (test)", *store.last.UserAgent)
	require.NotNil(t, store.last.IP)
	assert.NotEmpty(t, *store.last.IP)
}
