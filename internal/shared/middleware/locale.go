package middleware

import (
	"context"
	"net/http"

	"laurus/internal/shared/i18n"
)

// Localizer negotiates the response language from Accept-Language and
// stores it in the request context. Runs before Auth so even rejections
// come back in the caller's language.
func Localizer(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := bundle.Match(r.Header.Get("Accept-Language"))
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
