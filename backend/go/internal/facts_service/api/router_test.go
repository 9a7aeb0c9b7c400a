package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"DevOpsFacts/backend/go/internal/facts_service/service"
	"DevOpsFacts/backend/go/internal/facts_service/store"
	"DevOpsFacts/backend/go/internal/models"
	"DevOpsFacts/backend/go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, opts ...service.Option) (*gin.Engine, *store.FactStore, *test.Hook) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewDefaultStore()
	base, hook := test.NewNullLogger()
	r := SetupRouter(NewHandler(service.NewService(s, opts...)), logger.FromEntry(logrus.NewEntry(base)))
	return r, s, hook
}

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestWelcome(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "DevOps Facts API")
	assert.Contains(t, w.Body.String(), "<code>/api/fact</code>")
}

func TestRandomFact_ShapeAndMembership(t *testing.T) {
	r, s, _ := newTestRouter(t)

	for i := 0; i < 200; i++ {
		w := do(r, http.MethodGet, "/api/fact")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		fact, ok := body["fact"].(string)
		require.True(t, ok, "fact must be a string, got %T", body["fact"])
		assert.True(t, s.Contains(models.Fact(fact)), "unexpected fact %q", fact)
	}
}

func TestRandomFact_DeterministicSource(t *testing.T) {
	r, _, _ := newTestRouter(t, service.WithSource(func() float64 { return 0.95 }))

	w := do(r, http.MethodGet, "/api/fact")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fact":"DevOps bridges the gap between developers and IT operations."}`, w.Body.String())
}

func TestHeadMirrorsGet(t *testing.T) {
	r, _, _ := newTestRouter(t)

	for _, path := range []string{"/", "/api/fact"} {
		get := do(r, http.MethodGet, path)
		head := do(r, http.MethodHead, path)

		assert.Equal(t, http.StatusOK, head.Code, "HEAD %s", path)
		assert.Equal(t, get.Header().Get("Content-Type"), head.Header().Get("Content-Type"), "HEAD %s", path)
	}
}

func TestTrailingSlashRedirects(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/fact/")

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/api/fact", w.Header().Get("Location"))
}

func TestUnknownRoutesReturnNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/nonexistent"},
		{http.MethodGet, "/api"},
		{http.MethodGet, "/api/facts"},
		{http.MethodPost, "/api/fact"},
		{http.MethodDelete, "/"},
		{http.MethodGet, "/API/FACT"},
	} {
		w := do(r, tc.method, tc.path)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRequestLogger(t *testing.T) {
	r, _, hook := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/fact")
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	info, ok := entry.Data["request_info"].(models.RequestInfo)
	require.True(t, ok)
	assert.Equal(t, id, info.RequestID)
	assert.Equal(t, "/api/fact", info.Path)
	assert.Equal(t, http.StatusOK, info.Status)

	do(r, http.MethodGet, "/nonexistent")
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRecoveryAnswersPanicsWith500(t *testing.T) {
	r, _, hook := newTestRouter(t)
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := do(r, http.MethodGet, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
