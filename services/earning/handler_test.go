package earning

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"earnhub/pkg/middleware"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := newTestService(t, true)

	e := gin.New()
	e.Use(middleware.Error())
	e.Use(middleware.Identity("demo-user"))
	registerRoutes(e, NewHandler(svc))

	return e
}

func TestHandler_AddAndList(t *testing.T) {
	e := newTestRouter(t)

	body := `{"platform":"Upwork","task":"Logo design","amount":45.5,"date":"2026-03-10","source_type":"freelance"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/earnings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserIDHeader, "u1")
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"earning_id"`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/earnings?platform=Upwork", nil)
	req.Header.Set(middleware.UserIDHeader, "u1")
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Logo design")
}

func TestHandler_AddRejectsMissingFields(t *testing.T) {
	e := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/earnings", strings.NewReader(`{"amount":5}`))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "BAD_REQUEST")
}

func TestHandler_AddValidationError(t *testing.T) {
	e := newTestRouter(t)

	body := `{"platform":"Upwork","task":"T","amount":-5,"date":"2026-03-10","source_type":"gig"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/earnings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestHandler_DeleteNotFound(t *testing.T) {
	e := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/earnings/nope", nil)
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "NOT_FOUND")
}
