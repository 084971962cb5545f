package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/hello-backend/internal/config"
	"github.com/deppfellow/hello-backend/internal/errs"
	"github.com/deppfellow/hello-backend/internal/handler"
	"github.com/deppfellow/hello-backend/internal/middleware"
	"github.com/deppfellow/hello-backend/internal/model"
	"github.com/deppfellow/hello-backend/internal/server"
	"github.com/deppfellow/hello-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frontendOrigin = "http://localhost:3000"

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.DefaultConfig()
	logger := zerolog.Nop()

	srv, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	return NewRouter(srv, handler.NewHandlers(srv, service.NewServices(srv)))
}

func do(t *testing.T, r *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, r *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()

	return do(t, r, httptest.NewRequest(http.MethodGet, target, nil))
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestGreetings(t *testing.T) {
	r := newTestRouter(t)

	tests := map[string]string{
		"/":          "FastAPI hello!",
		"/api/hello": "Hello kenta",
	}

	for target, want := range tests {
		rec := get(t, r, target+"?ignored=1")
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, want, decode[model.MessageResponse](t, rec).Message, target)
	}
}

func TestGreetingsIgnoreBody(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		target      string
		contentType string
		body        string
		want        string
	}{
		{target: "/", contentType: echo.MIMEApplicationJSON, body: `{`, want: "FastAPI hello!"},
		{target: "/", contentType: echo.MIMEApplicationJSON, body: `{"message": "other"}`, want: "FastAPI hello!"},
		{target: "/api/hello", contentType: echo.MIMETextPlain, body: `hello`, want: "Hello kenta"},
		{target: "/api/hello", contentType: echo.MIMEApplicationXML, body: `<`, want: "Hello kenta"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, strings.NewReader(tt.body))
		req.Header.Set(echo.HeaderContentType, tt.contentType)

		rec := do(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, tt.want, decode[model.MessageResponse](t, rec).Message, tt.target)
	}
}

func TestMultiply(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		id   string
		want string
	}{
		{id: "0", want: "0"},
		{id: "21", want: "42"},
		{id: "-8", want: "-16"},
		{id: "4611686018427387904", want: "9223372036854775808"},
		{id: "99999999999999999999", want: "199999999999999999998"},
		{id: "-123456789012345678901234567890", want: "-246913578024691357802469135780"},
	}

	for _, tt := range tests {
		rec := get(t, r, "/api/multiply/"+tt.id)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, `{"doubled_value":`+tt.want+`}`, strings.TrimSpace(rec.Body.String()), tt.id)
		assert.Equal(t, tt.want, decode[model.DoubleResponse](t, rec).DoubledValue.String(), tt.id)
	}
}

func TestDivide(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		id   string
		want float64
	}{
		{id: "10", want: 5},
		{id: "7", want: 3.5},
		{id: "-3", want: -1.5},
		{id: "0", want: 0},
		{id: "99999999999999999999", want: 5e19},
	}

	for _, tt := range tests {
		rec := get(t, r, "/api/divide/"+tt.id)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, tt.want, decode[model.HalfResponse](t, rec).HalfValue, tt.id)
	}
}

func TestNumbersIgnoreBody(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		target string
		body   string
		want   string
	}{
		{target: "/api/multiply/5", body: `{"id": 100}`, want: `{"doubled_value":10}`},
		{target: "/api/divide/5", body: `{"ID": 100}`, want: `{"half_value":2.5}`},
		{target: "/api/divide/5", body: `{`, want: `{"half_value":2.5}`},
		{target: "/api/count/abc", body: `{"text": "longer text"}`, want: `{"count":3}`},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, strings.NewReader(tt.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := do(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, tt.want, rec.Body.String(), tt.target)
	}
}

func TestNonIntegerIDIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	for _, target := range []string{
		"/api/multiply/abc",
		"/api/divide/abc",
		"/api/multiply/1.5",
		"/api/divide/1e3",
		"/api/multiply/0x10",
	} {
		rec := get(t, r, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)

		body := decode[errs.HTTPError](t, rec)
		assert.Equal(t, "BAD_REQUEST", body.Code, target)
		assert.Equal(t, http.StatusBadRequest, body.Status, target)
		assert.Equal(t, []errs.FieldError{{Field: "id", Error: "must be an integer"}}, body.Errors, target)
	}
}

func TestNumberLimits(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		target string
		want   string
	}{
		{target: "/api/multiply/" + strings.Repeat("9", 4301), want: "must not exceed 4300 characters"},
		{target: "/api/divide/1" + strings.Repeat("0", 400), want: "is too large to halve"},
	}

	for _, tt := range tests {
		rec := get(t, r, tt.target)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

		body := decode[errs.HTTPError](t, rec)
		assert.Equal(t, "Validation failed", body.Message)
		assert.True(t, body.Override)
		assert.Equal(t, []errs.FieldError{{Field: "id", Error: tt.want}}, body.Errors)
	}
}

func TestCount(t *testing.T) {
	r := newTestRouter(t)

	// こんにちは, percent-encoded.
	const greeting = "%E3%81%93%E3%82%93%E3%81%AB%E3%81%A1%E3%81%AF"

	tests := map[string]int{
		"hello":         5,
		"a":             1,
		"hello%20world": 11,
		greeting:        5,
		"%41":           1,
		"a%2Fb":         3,
		"%E3%81%93%2F":  2,
		"100%25":        4,
		"%e3%81%93":     1,
	}

	for text, want := range tests {
		rec := get(t, r, "/api/count/"+text)
		require.Equal(t, http.StatusOK, rec.Code, text)
		assert.Equal(t, want, decode[model.CountResponse](t, rec).Count, text)
	}
}

func TestCountInvalidUTF8(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/api/count/%FF")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []errs.FieldError{{Field: "text", Error: "must be valid UTF-8"}}, decode[errs.HTTPError](t, rec).Errors)
}

func TestEcho(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message", body: `{"message": "hi"}`, want: "echo: hi"},
		{name: "null message", body: `{"message": null}`, want: "echo: No message provided"},
		{name: "missing message", body: `{}`, want: "echo: No message provided"},
		{name: "empty message", body: `{"message": ""}`, want: "echo: No message provided"},
		{name: "empty body", body: ``, want: "echo: No message provided"},
		{name: "unknown fields", body: `{"message": "hi", "other": 1}`, want: "echo: hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := do(t, r, req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, decode[model.MessageResponse](t, rec).Message)
		})
	}
}

func TestEchoWithoutContentType(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{"message": "hi"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "echo: hi", decode[model.MessageResponse](t, rec).Message)
}

func TestEchoMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{`{"message":`, `{"message": 42}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := do(t, r, req)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "BAD_REQUEST", decode[errs.HTTPError](t, rec).Code, body)
	}
}

func TestEchoUnsupportedMediaType(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`hi`))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)

	rec := do(t, r, req)
	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", body.Code)
	assert.Equal(t, http.StatusUnsupportedMediaType, body.Status)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/api/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	notFound := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "NOT_FOUND", notFound.Code)
	assert.Equal(t, "Route not found", notFound.Message)

	rec = do(t, r, httptest.NewRequest(http.MethodDelete, "/api/hello", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decode[errs.HTTPError](t, rec).Code)
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
		req.Header.Set(echo.HeaderOrigin, frontendOrigin)

		rec := do(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, frontendOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
		req.Header.Set(echo.HeaderOrigin, "http://evil.example")

		rec := do(t, r, req)
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/echo", nil)
		req.Header.Set(echo.HeaderOrigin, frontendOrigin)
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		req.Header.Set(echo.HeaderAccessControlRequestHeaders, "Content-Type, X-Custom-Header")

		rec := do(t, r, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, frontendOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
		assert.Equal(t, "Content-Type, X-Custom-Header", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	})

	t.Run("preflight from other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/echo", nil)
		req.Header.Set(echo.HeaderOrigin, "http://evil.example")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)

		rec := do(t, r, req)
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/api/hello")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec = do(t, r, req)
	assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/status")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[model.HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "development", health.Environment)

	rec = get(t, r, "/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode[map[string]any](t, rec)
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	for _, path := range []string{"/", "/api/hello", "/api/multiply/{id}", "/api/divide/{id}", "/api/count/{text}", "/api/echo"} {
		assert.Contains(t, paths, path)
	}

	rec = get(t, r, "/docs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Contains(t, rec.Body.String(), "/openapi.json")
}
