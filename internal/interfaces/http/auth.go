package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"laurus/internal/domain/user"
	"laurus/internal/shared/auth"
)

type AuthHandler struct {
	users   user.Repository
	tokens  *auth.TokenManager
	respond *Responder
}

func NewAuthHandler(users user.Repository, tokens *auth.TokenManager, respond *Responder) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, respond: respond}
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token      string     `json:"token"`
	TokenAtivo string     `json:"tokenAtivo"`
	Usuario    *user.User `json:"usuario"`
}

// HandleLogin authenticates by e-mail and password. Unknown e-mail and
// wrong password produce the same 401 so the response shape leaks nothing
// about which accounts exist.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}
	if req.Email == "" || req.Senha == "" {
		h.respond.Message(w, r, http.StatusUnauthorized, "erro.credenciaisInvalidas")
		return
	}

	u, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if u == nil || !u.Ativo || auth.VerifyPassword(u.SenhaHash, req.Senha) != nil {
		h.respond.Message(w, r, http.StatusUnauthorized, "erro.credenciaisInvalidas")
		return
	}

	accessToken, err := h.tokens.GenerateAccessToken(u.ID)
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	refreshToken, err := h.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	// Single active session: the new refresh token replaces whatever was
	// persisted before.
	if err := h.users.SetRefreshToken(r.Context(), u.ID, refreshToken); err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		Expires:  time.Now().Add(12 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	h.respond.DataWith(w, r, http.StatusOK, "sucesso.login", map[string]any{"nome": u.Nome}, loginResponse{
		Token:      accessToken,
		TokenAtivo: refreshToken,
		Usuario:    u,
	})
}

// HandleLogout drops the persisted refresh token and stamps the last
// access time, which invalidates every access token issued before it.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	_, err := h.users.ClearSession(r.Context(), id)
	if errors.Is(err, user.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuarioNaoEncontrado")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	h.respond.Message(w, r, http.StatusOK, "sucesso.logout")
}

type renewTokenRequest struct {
	TokenAtivo string `json:"tokenAtivo"`
}

type renewTokenResponse struct {
	Token      string `json:"token"`
	TokenAtivo string `json:"tokenAtivo"`
}

// HandleRenewToken exchanges a refresh token for a fresh access+refresh
// pair. The swap against the persisted token is single-winner: a stale or
// replayed token gets 401 and nothing is issued.
func (h *AuthHandler) HandleRenewToken(w http.ResponseWriter, r *http.Request) {
	var req renewTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	claims, err := h.tokens.ValidateRefreshToken(req.TokenAtivo)
	if err != nil {
		h.respond.Message(w, r, http.StatusUnauthorized, "erro.tokenRenovacaoInvalido")
		return
	}

	accessToken, err := h.tokens.GenerateAccessToken(claims.UserID)
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	refreshToken, err := h.tokens.GenerateRefreshToken(claims.UserID)
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	err = h.users.RotateRefreshToken(r.Context(), claims.UserID, req.TokenAtivo, refreshToken)
	if errors.Is(err, user.ErrNotFound) {
		h.respond.Message(w, r, http.StatusUnauthorized, "erro.tokenRenovacaoInvalido")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusOK, "sucesso.tokenRenovado", renewTokenResponse{
		Token:      accessToken,
		TokenAtivo: refreshToken,
	})
}
