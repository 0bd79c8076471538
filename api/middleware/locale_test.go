package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runLocaleRedirect(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LocaleRedirect()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestLocaleRedirect(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "bare page path redirects to default locale",
			target:       "/imoveis",
			wantStatus:   http.StatusFound,
			wantLocation: "/pt/imoveis",
		},
		{
			name:         "root redirects to default locale",
			target:       "/",
			wantStatus:   http.StatusFound,
			wantLocation: "/pt/",
		},
		{
			name:         "query string is preserved",
			target:       "/imoveis?cidade=Recife&pagina=2",
			wantStatus:   http.StatusFound,
			wantLocation: "/pt/imoveis?cidade=Recife&pagina=2",
		},
		{
			name:       "prefixed path passes through",
			target:     "/es/imoveis",
			wantStatus: http.StatusOK,
		},
		{
			name:       "bare locale segment passes through",
			target:     "/es",
			wantStatus: http.StatusOK,
		},
		{
			name:         "prefix must match a whole segment",
			target:       "/es-news",
			wantStatus:   http.StatusFound,
			wantLocation: "/pt/es-news",
		},
		{
			name:       "api paths pass through",
			target:     "/api/anuncios",
			wantStatus: http.StatusOK,
		},
		{
			name:       "framework internals pass through",
			target:     "/_next/static/chunk.js",
			wantStatus: http.StatusOK,
		},
		{
			name:       "health check passes through",
			target:     "/healthz",
			wantStatus: http.StatusOK,
		},
		{
			name:       "asset paths pass through",
			target:     "/logo.svg",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runLocaleRedirect(t, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if got := rec.Header().Get(echo.HeaderLocation); got != tt.wantLocation {
					t.Fatalf("location = %q, want %q", got, tt.wantLocation)
				}
			}
		})
	}
}

func TestLocaleRedirectWithDefault(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/contato", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LocaleRedirectWithDefault("en")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != "/en/contato" {
		t.Fatalf("location = %q, want %q", got, "/en/contato")
	}
}
