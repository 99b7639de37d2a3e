package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestHTMXAnnotatesContext(t *testing.T) {
	t.Parallel()

	var info HTMXInfo
	handler := HTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info = HTMXInfoFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/views/x/hover", nil)
	req.Header.Set("HX-Request", "TRUE")
	req.Header.Set("HX-Target", "hero-title")
	req.Header.Set("HX-Trigger", "card-redis")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, info.IsHTMX)
	require.Equal(t, "hero-title", info.Target)
	require.Equal(t, "card-redis", info.TriggerID)
}

func TestRequireHTMX(t *testing.T) {
	t.Parallel()

	handler := HTMX()(RequireHTMX()(http.HandlerFunc(okHandler)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/views/x/title", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "HX-Request", rec.Header().Get("Vary"))

	req := httptest.NewRequest(http.MethodGet, "/views/x/title", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCSRFIssuesTokenOnSafeMethods(t *testing.T) {
	t.Parallel()

	var token string
	handler := CSRF(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = CSRFTokenFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, defaultCSRFCookie, cookies[0].Name)
	require.NotEmpty(t, token)
	require.Equal(t, token, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}

func TestCSRFValidatesUnsafeMethods(t *testing.T) {
	t.Parallel()

	handler := CSRF(CSRFConfig{})(http.HandlerFunc(okHandler))
	cookie := &http.Cookie{Name: defaultCSRFCookie, Value: "secret"}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusForbidden},
		{"mismatch", "other", http.StatusForbidden},
		{"match", "secret", http.StatusOK},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/views/x/hover", nil)
			req.AddCookie(cookie)
			if tc.header != "" {
				req.Header.Set(defaultCSRFHeader, tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			require.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestCSRFHonoursCustomConfig(t *testing.T) {
	t.Parallel()

	handler := CSRF(CSRFConfig{
		CookieName: "views_csrf",
		HeaderName: "X-View-Token",
		CookiePath: "/views",
		MaxAge:     time.Hour,
		Secure:     true,
	})(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "views_csrf", cookies[0].Name)
	require.Equal(t, "/views", cookies[0].Path)
	require.Equal(t, 3600, cookies[0].MaxAge)
	require.True(t, cookies[0].Secure)

	req := httptest.NewRequest(http.MethodDelete, "/views/x", nil)
	req.AddCookie(&http.Cookie{Name: "views_csrf", Value: "secret"})
	req.Header.Set(defaultCSRFHeader, "secret")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code, "token must arrive in the configured header")

	req.Header.Set("X-View-Token", "secret")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNoStore(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NoStore()(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Refresh(rec)
	require.Equal(t, "true", rec.Header().Get("HX-Refresh"))
}
