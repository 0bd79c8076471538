package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

// DefaultLocale is applied unconditionally when a page path carries no
// locale prefix; no Accept-Language negotiation happens.
const DefaultLocale = "pt"

// SupportedLocales are the recognized path prefixes, default first.
var SupportedLocales = []string{"pt", "en", "es", "fr", "de", "it"}

// LocaleRedirect redirects page requests without a locale prefix to the
// same path under the default locale, preserving the query string. API,
// framework-internal and asset paths pass through unmodified.
func LocaleRedirect() echo.MiddlewareFunc {
	return LocaleRedirectWithDefault(DefaultLocale)
}

func LocaleRedirectWithDefault(defaultLocale string) echo.MiddlewareFunc {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestPath := c.Request().URL.Path
			if isInternalPath(requestPath) || hasLocalePrefix(requestPath) {
				return next(c)
			}

			target := "/" + defaultLocale + requestPath
			if query := c.Request().URL.RawQuery; query != "" {
				target += "?" + query
			}
			return c.Redirect(http.StatusFound, target)
		}
	}
}

func isInternalPath(requestPath string) bool {
	if strings.HasPrefix(requestPath, "/api/") || requestPath == "/api" {
		return true
	}
	if strings.HasPrefix(requestPath, "/_") {
		return true
	}
	if requestPath == "/healthz" || requestPath == "/favicon.ico" {
		return true
	}
	// Anything with a file extension is an asset, not a page.
	return path.Ext(path.Base(requestPath)) != ""
}

// hasLocalePrefix matches on path-segment boundaries only: "/es" and
// "/es/..." carry the prefix, "/es-news" does not.
func hasLocalePrefix(requestPath string) bool {
	for _, locale := range SupportedLocales {
		if requestPath == "/"+locale || strings.HasPrefix(requestPath, "/"+locale+"/") {
			return true
		}
	}
	return false
}
