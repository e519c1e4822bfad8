package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"laurus/internal/domain/tag"
)

type mockTagRepo struct {
	CreateFunc  func(ctx context.Context, params tag.CreateTagParams) (*tag.Tag, error)
	GetByIDFunc func(ctx context.Context, id string) (*tag.Tag, error)
	ListFunc    func(ctx context.Context) ([]*tag.Tag, error)
	UpdateFunc  func(ctx context.Context, id string, params tag.UpdateTagParams) (*tag.Tag, error)
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *mockTagRepo) Create(ctx context.Context, params tag.CreateTagParams) (*tag.Tag, error) {
	return m.CreateFunc(ctx, params)
}

func (m *mockTagRepo) GetByID(ctx context.Context, id string) (*tag.Tag, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTagRepo) List(ctx context.Context) ([]*tag.Tag, error) {
	return m.ListFunc(ctx)
}

func (m *mockTagRepo) Update(ctx context.Context, id string, params tag.UpdateTagParams) (*tag.Tag, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *mockTagRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func sampleTag() *tag.Tag {
	return &tag.Tag{
		ID:        "tag-1",
		UsuarioID: "user-1",
		Nome:      "Viagem",
		Ativo:     true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestTagHandleCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		repo       *mockTagRepo
		wantStatus int
	}{
		{
			name: "created",
			body: `{"usuario":"user-1","nome":"Viagem"}`,
			repo: &mockTagRepo{CreateFunc: func(ctx context.Context, params tag.CreateTagParams) (*tag.Tag, error) {
				if params.UsuarioID != "user-1" || params.Nome != "Viagem" {
					t.Errorf("unexpected params: %+v", params)
				}
				return sampleTag(), nil
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{`,
			repo:       &mockTagRepo{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing usuario",
			body:       `{"nome":"Viagem"}`,
			repo:       &mockTagRepo{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "nome too short",
			body:       `{"usuario":"user-1","nome":"V"}`,
			repo:       &mockTagRepo{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "owner not found",
			body: `{"usuario":"ghost","nome":"Viagem"}`,
			repo: &mockTagRepo{CreateFunc: func(ctx context.Context, params tag.CreateTagParams) (*tag.Tag, error) {
				return nil, tag.ErrOwnerNotFound
			}},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "name taken",
			body: `{"usuario":"user-1","nome":"Viagem"}`,
			repo: &mockTagRepo{CreateFunc: func(ctx context.Context, params tag.CreateTagParams) (*tag.Tag, error) {
				return nil, tag.ErrNameTaken
			}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTagHandler(tt.repo, newTestResponder())

			req := httptest.NewRequest(http.MethodPost, "/api/tag", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.HandleCreate(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusCreated {
				env := decodeEnvelope(t, rr)
				if env.Message != "Tag criada com sucesso" {
					t.Errorf("message = %q", env.Message)
				}
				if len(env.Dados) == 0 {
					t.Error("expected dados in response")
				}
			}
		})
	}
}

func TestTagHandleList(t *testing.T) {
	repo := &mockTagRepo{ListFunc: func(ctx context.Context) ([]*tag.Tag, error) {
		return []*tag.Tag{sampleTag(), sampleTag()}, nil
	}}
	handler := NewTagHandler(repo, newTestResponder())

	req := httptest.NewRequest(http.MethodGet, "/api/tag", nil)
	rr := httptest.NewRecorder()
	handler.HandleList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.Total == nil || *env.Total != 2 {
		t.Errorf("total = %v, want 2", env.Total)
	}
}

func TestTagHandleListEmpty(t *testing.T) {
	repo := &mockTagRepo{ListFunc: func(ctx context.Context) ([]*tag.Tag, error) {
		return nil, nil
	}}
	handler := NewTagHandler(repo, newTestResponder())

	req := httptest.NewRequest(http.MethodGet, "/api/tag", nil)
	rr := httptest.NewRecorder()
	handler.HandleList(rr, req)

	env := decodeEnvelope(t, rr)
	if env.Total == nil || *env.Total != 0 {
		t.Errorf("total = %v, want 0", env.Total)
	}
	if string(env.Resultados) != "[]" {
		t.Errorf("resultados = %s, want []", env.Resultados)
	}
}

func TestTagHandleGetByID(t *testing.T) {
	tests := []struct {
		name       string
		repo       *mockTagRepo
		wantStatus int
	}{
		{
			name: "found",
			repo: &mockTagRepo{GetByIDFunc: func(ctx context.Context, id string) (*tag.Tag, error) {
				return sampleTag(), nil
			}},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			repo: &mockTagRepo{GetByIDFunc: func(ctx context.Context, id string) (*tag.Tag, error) {
				return nil, nil
			}},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTagHandler(tt.repo, newTestResponder())

			req := httptest.NewRequest(http.MethodGet, "/api/tag/tag-1", nil)
			req.SetPathValue("id", "tag-1")
			rr := httptest.NewRecorder()
			handler.HandleGetByID(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

func TestTagHandleUpdate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		repo       *mockTagRepo
		wantStatus int
	}{
		{
			name: "updated",
			body: `{"nome":"Lazer"}`,
			repo: &mockTagRepo{UpdateFunc: func(ctx context.Context, id string, params tag.UpdateTagParams) (*tag.Tag, error) {
				if params.Nome == nil || *params.Nome != "Lazer" {
					t.Errorf("unexpected params: %+v", params)
				}
				return sampleTag(), nil
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no fields",
			body:       `{}`,
			repo:       &mockTagRepo{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			body: `{"ativo":false}`,
			repo: &mockTagRepo{UpdateFunc: func(ctx context.Context, id string, params tag.UpdateTagParams) (*tag.Tag, error) {
				return nil, tag.ErrNotFound
			}},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTagHandler(tt.repo, newTestResponder())

			req := httptest.NewRequest(http.MethodPut, "/api/tag/tag-1", strings.NewReader(tt.body))
			req.SetPathValue("id", "tag-1")
			rr := httptest.NewRecorder()
			handler.HandleUpdate(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

func TestTagHandleDelete(t *testing.T) {
	tests := []struct {
		name       string
		repo       *mockTagRepo
		wantStatus int
	}{
		{
			name: "deleted",
			repo: &mockTagRepo{DeleteFunc: func(ctx context.Context, id string) error {
				return nil
			}},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			repo: &mockTagRepo{DeleteFunc: func(ctx context.Context, id string) error {
				return tag.ErrNotFound
			}},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTagHandler(tt.repo, newTestResponder())

			req := httptest.NewRequest(http.MethodDelete, "/api/tag/tag-1", nil)
			req.SetPathValue("id", "tag-1")
			rr := httptest.NewRecorder()
			handler.HandleDelete(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}
