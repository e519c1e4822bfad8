package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"laurus/internal/domain/user"
	"laurus/internal/shared/auth"
)

type mockUserRepo struct {
	CreateFunc             func(ctx context.Context, params user.CreateUserParams) (*user.User, error)
	GetByIDFunc            func(ctx context.Context, id string) (*user.User, error)
	GetByEmailFunc         func(ctx context.Context, email string) (*user.User, error)
	ListFunc               func(ctx context.Context) ([]*user.User, error)
	SearchByNameFunc       func(ctx context.Context, term string) ([]*user.User, error)
	SearchByEmailFunc      func(ctx context.Context, term string) ([]*user.User, error)
	UpdateFunc             func(ctx context.Context, id string, params user.UpdateUserParams) (*user.User, error)
	DeleteFunc             func(ctx context.Context, id string) error
	SetRefreshTokenFunc    func(ctx context.Context, id, token string) error
	RotateRefreshTokenFunc func(ctx context.Context, id, oldToken, newToken string) error
	ClearSessionFunc       func(ctx context.Context, id string) (*user.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, params user.CreateUserParams) (*user.User, error) {
	return m.CreateFunc(ctx, params)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*user.User, error) {
	return m.ListFunc(ctx)
}

func (m *mockUserRepo) SearchByName(ctx context.Context, term string) ([]*user.User, error) {
	return m.SearchByNameFunc(ctx, term)
}

func (m *mockUserRepo) SearchByEmail(ctx context.Context, term string) ([]*user.User, error) {
	return m.SearchByEmailFunc(ctx, term)
}

func (m *mockUserRepo) Update(ctx context.Context, id string, params user.UpdateUserParams) (*user.User, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockUserRepo) SetRefreshToken(ctx context.Context, id, token string) error {
	if m.SetRefreshTokenFunc != nil {
		return m.SetRefreshTokenFunc(ctx, id, token)
	}
	return nil
}

func (m *mockUserRepo) RotateRefreshToken(ctx context.Context, id, oldToken, newToken string) error {
	if m.RotateRefreshTokenFunc != nil {
		return m.RotateRefreshTokenFunc(ctx, id, oldToken, newToken)
	}
	return nil
}

func (m *mockUserRepo) ClearSession(ctx context.Context, id string) (*user.User, error) {
	return m.ClearSessionFunc(ctx, id)
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("access-secret", "refresh-secret")
}

func registeredUser(t *testing.T, senha string) *user.User {
	t.Helper()
	hash, err := auth.HashPassword(senha)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	return &user.User{
		ID:             "user-1",
		Nome:           "Maria",
		Sobrenome:      "Silva",
		Email:          "maria@example.com",
		SenhaHash:      hash,
		DataNascimento: time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
		Idioma:         "pt-BR",
		Moeda:          "BRL",
		FormatoData:    "DD/MM/YYYY",
		Ativo:          true,
	}
}

func TestHandleLogin(t *testing.T) {
	u := registeredUser(t, "senhaSegura123")

	repo := &mockUserRepo{GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
		if email == u.Email {
			return u, nil
		}
		return nil, nil
	}}

	var persistedToken string
	repo.SetRefreshTokenFunc = func(ctx context.Context, id, token string) error {
		persistedToken = token
		return nil
	}

	handler := NewAuthHandler(repo, testTokens(), newTestResponder())

	req := httptest.NewRequest(http.MethodPost, "/api/auth",
		strings.NewReader(`{"email":"maria@example.com","senha":"senhaSegura123"}`))
	rr := httptest.NewRecorder()
	handler.HandleLogin(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rr.Code, rr.Body.String())
	}

	env := decodeEnvelope(t, rr)
	if !strings.Contains(env.Message, "Maria") {
		t.Errorf("message = %q, want the user's first name in it", env.Message)
	}
	if len(env.Dados) == 0 {
		t.Fatal("expected dados with tokens")
	}
	if persistedToken == "" {
		t.Error("refresh token was not persisted")
	}

	var gotCookie bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == "access_token" && c.Value != "" && c.HttpOnly {
			gotCookie = true
		}
	}
	if !gotCookie {
		t.Error("expected HttpOnly access_token cookie")
	}
}

// Unknown e-mail, wrong password and a deactivated account must be
// indistinguishable from the outside.
func TestHandleLoginConstantRejection(t *testing.T) {
	active := registeredUser(t, "senhaSegura123")
	inactive := registeredUser(t, "senhaSegura123")
	inactive.Ativo = false

	tests := []struct {
		name string
		body string
		repo *mockUserRepo
	}{
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","senha":"senhaSegura123"}`,
			repo: &mockUserRepo{GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return nil, nil
			}},
		},
		{
			name: "wrong password",
			body: `{"email":"maria@example.com","senha":"senhaErrada"}`,
			repo: &mockUserRepo{GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return active, nil
			}},
		},
		{
			name: "inactive user",
			body: `{"email":"maria@example.com","senha":"senhaSegura123"}`,
			repo: &mockUserRepo{GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return inactive, nil
			}},
		},
		{
			name: "empty credentials",
			body: `{"email":"","senha":""}`,
			repo: &mockUserRepo{},
		},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(tt.repo, testTokens(), newTestResponder())

			req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.HandleLogin(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rr.Code)
			}
			bodies = append(bodies, rr.Body.String())
		})
	}

	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] {
			t.Errorf("rejection bodies differ: %q vs %q", bodies[0], bodies[i])
		}
	}
}

func TestHandleLogout(t *testing.T) {
	tests := []struct {
		name       string
		repo       *mockUserRepo
		wantStatus int
	}{
		{
			name: "session cleared",
			repo: &mockUserRepo{ClearSessionFunc: func(ctx context.Context, id string) (*user.User, error) {
				now := time.Now()
				u := registeredUser(t, "senhaSegura123")
				u.UltimoAcesso = &now
				return u, nil
			}},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown user",
			repo: &mockUserRepo{ClearSessionFunc: func(ctx context.Context, id string) (*user.User, error) {
				return nil, user.ErrNotFound
			}},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(tt.repo, testTokens(), newTestResponder())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/logout/user-1", nil)
			req.SetPathValue("id", "user-1")
			rr := httptest.NewRecorder()
			handler.HandleLogout(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				var expired bool
				for _, c := range rr.Result().Cookies() {
					if c.Name == "access_token" && c.MaxAge < 0 {
						expired = true
					}
				}
				if !expired {
					t.Error("expected access_token cookie to be expired")
				}
			}
		})
	}
}

func TestHandleRenewToken(t *testing.T) {
	tokens := testTokens()
	refreshToken, err := tokens.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	t.Run("rotates the pair", func(t *testing.T) {
		var rotatedOld, rotatedNew string
		repo := &mockUserRepo{RotateRefreshTokenFunc: func(ctx context.Context, id, oldToken, newToken string) error {
			rotatedOld, rotatedNew = oldToken, newToken
			return nil
		}}
		handler := NewAuthHandler(repo, tokens, newTestResponder())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/renovarToken",
			strings.NewReader(`{"tokenAtivo":"`+refreshToken+`"}`))
		rr := httptest.NewRecorder()
		handler.HandleRenewToken(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", rr.Code, rr.Body.String())
		}
		if rotatedOld != refreshToken {
			t.Error("persisted swap did not receive the presented token")
		}
		if rotatedNew == "" || rotatedNew == refreshToken {
			t.Error("expected a fresh refresh token to be persisted")
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserRepo{}, tokens, newTestResponder())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/renovarToken",
			strings.NewReader(`{"tokenAtivo":"garbage"}`))
		rr := httptest.NewRecorder()
		handler.HandleRenewToken(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("lost swap race", func(t *testing.T) {
		repo := &mockUserRepo{RotateRefreshTokenFunc: func(ctx context.Context, id, oldToken, newToken string) error {
			return user.ErrNotFound
		}}
		handler := NewAuthHandler(repo, tokens, newTestResponder())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/renovarToken",
			strings.NewReader(`{"tokenAtivo":"`+refreshToken+`"}`))
		rr := httptest.NewRecorder()
		handler.HandleRenewToken(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := &mockUserRepo{RotateRefreshTokenFunc: func(ctx context.Context, id, oldToken, newToken string) error {
			return errors.New("connection refused")
		}}
		handler := NewAuthHandler(repo, tokens, newTestResponder())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/renovarToken",
			strings.NewReader(`{"tokenAtivo":"`+refreshToken+`"}`))
		rr := httptest.NewRecorder()
		handler.HandleRenewToken(rr, req)

		if rr.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rr.Code)
		}
	})
}
