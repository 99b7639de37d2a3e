package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/observability"
)

type csrfContextKey struct{}

const (
	defaultCSRFCookie = "site_csrf"
	defaultCSRFHeader = "X-CSRF-Token"
	defaultCSRFMaxAge = 24 * time.Hour
	csrfTokenBytes    = 32
)

// CSRFConfig controls the token cookie and the header htmx echoes it in.
type CSRFConfig struct {
	CookieName string
	CookiePath string
	HeaderName string
	MaxAge     time.Duration
	Secure     bool
}

func (c CSRFConfig) withDefaults() CSRFConfig {
	if c.CookieName == "" {
		c.CookieName = defaultCSRFCookie
	}
	if c.HeaderName == "" {
		c.HeaderName = defaultCSRFHeader
	}
	if c.CookiePath == "" {
		c.CookiePath = "/"
	}
	if c.MaxAge <= 0 {
		c.MaxAge = defaultCSRFMaxAge
	}
	return c
}

// CSRF guards state-changing requests with a double-submit token: the page
// receives the token in an HttpOnly cookie and in markup, and htmx sends it
// back in the configured header.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	guard := csrfGuard{cfg: cfg.withDefaults()}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := observability.Logger(r.Context())

			token, err := guard.issue(w, r)
			if err != nil {
				logger.Error("csrf token generation failed", zap.Error(err))
				http.Error(w, "csrf token error", http.StatusInternalServerError)
				return
			}
			if changesState(r.Method) && !guard.verify(r, token) {
				logger.Warn("csrf token rejected", zap.String("header", guard.cfg.HeaderName))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), csrfContextKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CSRFTokenFromContext returns the token for the current request, or "".
func CSRFTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(csrfContextKey{}).(string)
	return token
}

type csrfGuard struct {
	cfg CSRFConfig
}

// issue returns the browser's existing token or sets a fresh cookie.
func (g csrfGuard) issue(w http.ResponseWriter, r *http.Request) (string, error) {
	if c, err := r.Cookie(g.cfg.CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	raw := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	http.SetCookie(w, &http.Cookie{
		Name:     g.cfg.CookieName,
		Value:    token,
		Path:     g.cfg.CookiePath,
		MaxAge:   int(g.cfg.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   g.cfg.Secure || r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
	return token, nil
}

func (g csrfGuard) verify(r *http.Request, token string) bool {
	submitted := r.Header.Get(g.cfg.HeaderName)
	return submitted != "" && subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) == 1
}

func changesState(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	}
	return true
}
