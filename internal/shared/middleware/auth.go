package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"laurus/internal/domain/user"
	"laurus/internal/shared/auth"
	"laurus/internal/shared/i18n"
	"laurus/internal/shared/log"
)

// UserLoader fetches the session owner so the middleware can confirm the
// account is still active and the token predates no logout.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// Auth validates the access token from the access_token cookie or the
// Authorization header and stores the user id in the request context.
//
// A token issued before the user's ultimo_acesso mark is rejected: logout
// stamps that column, which invalidates every token minted earlier.
func Auth(tokens *auth.TokenManager, users UserLoader, bundle *i18n.Bundle, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := accessClaims(tokens, r)
			if claims == nil {
				deny(w, r, bundle, "erro.naoAutorizado")
				return
			}

			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				logger.ErrorContext(r.Context(), "failed to load session user", "error", err)
				deny(w, r, bundle, "erro.naoAutorizado")
				return
			}
			if u == nil || !u.Ativo {
				deny(w, r, bundle, "erro.naoAutorizado")
				return
			}
			if u.UltimoAcesso != nil && claims.IssuedAt != nil && claims.IssuedAt.Time.Before(*u.UltimoAcesso) {
				deny(w, r, bundle, "erro.sessaoExpirada")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			// Without an Accept-Language header, the user's saved
			// idioma wins over the default locale.
			if r.Header.Get("Accept-Language") == "" && u.Idioma != "" {
				ctx = context.WithValue(ctx, LocaleKey, u.Idioma)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// accessClaims extracts a valid access token from the request. The
// HttpOnly cookie is tried first (browser requests), but a stale cookie
// must not mask a valid Authorization header, so both carriers are tried.
func accessClaims(tokens *auth.TokenManager, r *http.Request) *auth.Claims {
	if cookie, err := r.Cookie("access_token"); err == nil {
		if claims, err := tokens.ValidateAccessToken(cookie.Value); err == nil {
			return claims
		}
	}

	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil
	}
	claims, err := tokens.ValidateAccessToken(parts[1])
	if err != nil {
		return nil
	}
	return claims
}

func deny(w http.ResponseWriter, r *http.Request, bundle *i18n.Bundle, key string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"message": bundle.Resolve(Locale(r.Context()), key, nil),
	})
}
