package middleware

import (
	"context"

	"laurus/internal/shared/i18n"
)

type ContextKey string

const (
	UserIDKey ContextKey = "user_id"
	LocaleKey ContextKey = "locale"
)

// UserID returns the authenticated user id stored by the Auth middleware,
// or the empty string on unauthenticated requests.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

// Locale returns the negotiated locale for the request, falling back to
// the default when the Localizer middleware did not run.
func Locale(ctx context.Context) string {
	if locale, ok := ctx.Value(LocaleKey).(string); ok && locale != "" {
		return locale
	}
	return i18n.DefaultLocale
}
