// Package i18n resolves the dashboard locale and formats numbers,
// money and dates for it. Monetary amounts always render with Latin
// numerals regardless of locale; only the currency label switches.
package i18n

import (
	"context"
	"net/http"
)

// Locale is the dashboard display language.
type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"
)

// LocaleCookie is the cookie the front end sets to pick a language.
const LocaleCookie = "NEXT_LOCALE"

type contextKey struct{}

// FromRequest reads the locale cookie, falling back to the default.
func FromRequest(r *http.Request, fallback Locale) Locale {
	if c, err := r.Cookie(LocaleCookie); err == nil {
		switch Locale(c.Value) {
		case Arabic, English:
			return Locale(c.Value)
		}
	}
	if fallback == English {
		return English
	}
	return Arabic
}

// ContextWithLocale stores the resolved locale on the context.
func ContextWithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// LocaleFromContext returns the locale stored by the middleware,
// defaulting to Arabic.
func LocaleFromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(contextKey{}).(Locale); ok {
		return l
	}
	return Arabic
}

// Middleware resolves the locale cookie once per request.
func Middleware(fallback Locale) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ContextWithLocale(r.Context(), FromRequest(r, fallback))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
