package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"laurus/internal/domain/category"
	"laurus/internal/domain/transaction"
	"laurus/internal/events"
	"laurus/internal/shared/log"
)

type mockTransactionRepo struct {
	CreateFunc  func(ctx context.Context, kind category.Kind, source transaction.Source, params transaction.CreateTransactionParams) (*transaction.Transaction, error)
	GetByIDFunc func(ctx context.Context, kind category.Kind, source transaction.Source, id string) (*transaction.Transaction, error)
	ListFunc    func(ctx context.Context, kind category.Kind, source transaction.Source) ([]*transaction.Transaction, error)
	UpdateFunc  func(ctx context.Context, kind category.Kind, source transaction.Source, id string, params transaction.UpdateTransactionParams) (*transaction.Transaction, error)
	DeleteFunc  func(ctx context.Context, kind category.Kind, source transaction.Source, id string) error
}

func (m *mockTransactionRepo) Create(ctx context.Context, kind category.Kind, source transaction.Source, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
	return m.CreateFunc(ctx, kind, source, params)
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, kind category.Kind, source transaction.Source, id string) (*transaction.Transaction, error) {
	return m.GetByIDFunc(ctx, kind, source, id)
}

func (m *mockTransactionRepo) List(ctx context.Context, kind category.Kind, source transaction.Source) ([]*transaction.Transaction, error) {
	return m.ListFunc(ctx, kind, source)
}

func (m *mockTransactionRepo) Update(ctx context.Context, kind category.Kind, source transaction.Source, id string, params transaction.UpdateTransactionParams) (*transaction.Transaction, error) {
	return m.UpdateFunc(ctx, kind, source, id, params)
}

func (m *mockTransactionRepo) Delete(ctx context.Context, kind category.Kind, source transaction.Source, id string) error {
	return m.DeleteFunc(ctx, kind, source, id)
}

// capturingPublisher records published events so tests can assert on them.
type capturingPublisher struct {
	published []events.Event
}

func (p *capturingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func newTransactionTestHandler(kind category.Kind, source transaction.Source, repo transaction.Repository, pub events.Publisher) *TransactionHandler {
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	return NewTransactionHandler(kind, source, repo, pub, newTestResponder(), logger)
}

func sampleTransaction(kind category.Kind, source transaction.Source) *transaction.Transaction {
	conta := "conta-1"
	t := &transaction.Transaction{
		ID:            "tx-1",
		Kind:          kind,
		Source:        source,
		Valor:         150.75,
		DataTransacao: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CategoriaID:   "cat-1",
		Tags:          []string{},
		Ativo:         true,
	}
	if source == transaction.SourceCartaoCredito {
		cartao := "cartao-1"
		t.CartaoCreditoID = &cartao
	} else {
		t.ContaID = &conta
	}
	return t
}

func TestTransactionHandleCreate(t *testing.T) {
	tests := []struct {
		name       string
		source     transaction.Source
		body       string
		repo       *mockTransactionRepo
		wantStatus int
		wantEvents int
		wantEvento string
	}{
		{
			name:   "account expense created",
			source: transaction.SourceConta,
			body:   `{"conta":"conta-1","valor":150.75,"dataTransacao":"2026-03-15","categoria":"cat-1"}`,
			repo: &mockTransactionRepo{CreateFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
				if params.SourceID != "conta-1" {
					t.Errorf("SourceID = %q, want conta-1", params.SourceID)
				}
				return sampleTransaction(kind, source), nil
			}},
			wantStatus: http.StatusCreated,
			wantEvents: 1,
			wantEvento: events.TransactionCreated,
		},
		{
			name:   "card purchase with installments",
			source: transaction.SourceCartaoCredito,
			body: `{"cartaoCredito":"cartao-1","valor":1200,"dataTransacao":"2026-03-15","categoria":"cat-1",
				"parcelamento":true,"numeroParcelaAtual":1,"totalParcelas":12}`,
			repo: &mockTransactionRepo{CreateFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
				if !params.Parcelamento || params.TotalParcelas == nil || *params.TotalParcelas != 12 {
					t.Errorf("unexpected installment params: %+v", params)
				}
				return sampleTransaction(kind, source), nil
			}},
			wantStatus: http.StatusCreated,
			wantEvents: 1,
			wantEvento: events.TransactionCreated,
		},
		{
			name:       "installments rejected on account source",
			source:     transaction.SourceConta,
			body:       `{"conta":"conta-1","valor":100,"dataTransacao":"2026-03-15","categoria":"cat-1","parcelamento":true,"numeroParcelaAtual":1,"totalParcelas":3}`,
			repo:       &mockTransactionRepo{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing valor",
			source:     transaction.SourceConta,
			body:       `{"conta":"conta-1","dataTransacao":"2026-03-15","categoria":"cat-1"}`,
			repo:       &mockTransactionRepo{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unparseable date",
			source:     transaction.SourceConta,
			body:       `{"conta":"conta-1","valor":100,"dataTransacao":"15/03/2026","categoria":"cat-1"}`,
			repo:       &mockTransactionRepo{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown account",
			source: transaction.SourceConta,
			body:   `{"conta":"ghost","valor":100,"dataTransacao":"2026-03-15","categoria":"cat-1"}`,
			repo: &mockTransactionRepo{CreateFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
				return nil, transaction.ErrSourceNotFound
			}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "unknown category",
			source: transaction.SourceConta,
			body:   `{"conta":"conta-1","valor":100,"dataTransacao":"2026-03-15","categoria":"ghost"}`,
			repo: &mockTransactionRepo{CreateFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
				return nil, transaction.ErrCategoryNotFound
			}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "unknown subcategory",
			source: transaction.SourceConta,
			body:   `{"conta":"conta-1","valor":100,"dataTransacao":"2026-03-15","categoria":"cat-1","subcategoria":"ghost"}`,
			repo: &mockTransactionRepo{CreateFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
				return nil, transaction.ErrSubcategoryNotFound
			}},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &capturingPublisher{}
			handler := newTransactionTestHandler(category.KindDespesa, tt.source, tt.repo, pub)

			req := httptest.NewRequest(http.MethodPost, "/api/despesaConta", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.HandleCreate(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body: %s", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if len(pub.published) != tt.wantEvents {
				t.Fatalf("published %d events, want %d", len(pub.published), tt.wantEvents)
			}
			if tt.wantEvents > 0 && pub.published[0].Name != tt.wantEvento {
				t.Errorf("event = %q, want %q", pub.published[0].Name, tt.wantEvento)
			}
		})
	}
}

func TestTransactionHandleList(t *testing.T) {
	repo := &mockTransactionRepo{ListFunc: func(ctx context.Context, kind category.Kind, source transaction.Source) ([]*transaction.Transaction, error) {
		if kind != category.KindReceita || source != transaction.SourceConta {
			t.Errorf("kind/source = %v/%v", kind, source)
		}
		return []*transaction.Transaction{sampleTransaction(kind, source)}, nil
	}}
	handler := newTransactionTestHandler(category.KindReceita, transaction.SourceConta, repo, &capturingPublisher{})

	req := httptest.NewRequest(http.MethodGet, "/api/receitaConta", nil)
	rr := httptest.NewRecorder()
	handler.HandleList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.Total == nil || *env.Total != 1 {
		t.Errorf("total = %v, want 1", env.Total)
	}
}

func TestTransactionHandleGetByID(t *testing.T) {
	repo := &mockTransactionRepo{GetByIDFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, id string) (*transaction.Transaction, error) {
		return nil, nil
	}}
	handler := newTransactionTestHandler(category.KindDespesa, transaction.SourceCartaoCredito, repo, &capturingPublisher{})

	req := httptest.NewRequest(http.MethodGet, "/api/despesaCartaoCredito/tx-1", nil)
	req.SetPathValue("id", "tx-1")
	rr := httptest.NewRecorder()
	handler.HandleGetByID(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestTransactionHandleUpdate(t *testing.T) {
	tests := []struct {
		name       string
		source     transaction.Source
		body       string
		repo       *mockTransactionRepo
		wantStatus int
	}{
		{
			name:   "updated",
			source: transaction.SourceConta,
			body:   `{"valor":99.9}`,
			repo: &mockTransactionRepo{UpdateFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, id string, params transaction.UpdateTransactionParams) (*transaction.Transaction, error) {
				return sampleTransaction(kind, source), nil
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no fields",
			source:     transaction.SourceConta,
			body:       `{}`,
			repo:       &mockTransactionRepo{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "not found",
			source: transaction.SourceConta,
			body:   `{"valor":99.9}`,
			repo: &mockTransactionRepo{UpdateFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, id string, params transaction.UpdateTransactionParams) (*transaction.Transaction, error) {
				return nil, transaction.ErrNotFound
			}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "installments rejected on account source",
			source:     transaction.SourceConta,
			body:       `{"parcelamento":true,"numeroParcelaAtual":1,"totalParcelas":3}`,
			repo:       &mockTransactionRepo{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "turning installments off on a card purchase",
			source: transaction.SourceCartaoCredito,
			body:   `{"parcelamento":false}`,
			repo: &mockTransactionRepo{UpdateFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, id string, params transaction.UpdateTransactionParams) (*transaction.Transaction, error) {
				if params.Parcelamento == nil || *params.Parcelamento {
					t.Errorf("Parcelamento = %v, want explicit false", params.Parcelamento)
				}
				if params.NumeroParcelaAtual != nil || params.TotalParcelas != nil {
					t.Errorf("installment counters must not accompany the toggle-off: %+v", params)
				}
				return sampleTransaction(kind, source), nil
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:   "subcategory outside the transaction's category",
			source: transaction.SourceConta,
			body:   `{"subcategoria":"other-cat-sub"}`,
			repo: &mockTransactionRepo{UpdateFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, id string, params transaction.UpdateTransactionParams) (*transaction.Transaction, error) {
				return nil, transaction.ErrSubcategoryNotFound
			}},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTransactionTestHandler(category.KindDespesa, tt.source, tt.repo, &capturingPublisher{})

			req := httptest.NewRequest(http.MethodPut, "/api/despesaConta/tx-1", strings.NewReader(tt.body))
			req.SetPathValue("id", "tx-1")
			rr := httptest.NewRecorder()
			handler.HandleUpdate(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body: %s", rr.Code, tt.wantStatus, rr.Body.String())
			}
		})
	}
}

func TestTransactionHandleDelete(t *testing.T) {
	t.Run("deleted publishes event", func(t *testing.T) {
		repo := &mockTransactionRepo{DeleteFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, id string) error {
			return nil
		}}
		pub := &capturingPublisher{}
		handler := newTransactionTestHandler(category.KindDespesa, transaction.SourceConta, repo, pub)

		req := httptest.NewRequest(http.MethodDelete, "/api/despesaConta/tx-1", nil)
		req.SetPathValue("id", "tx-1")
		rr := httptest.NewRecorder()
		handler.HandleDelete(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		if len(pub.published) != 1 || pub.published[0].Name != events.TransactionDeleted {
			t.Errorf("published = %+v, want one %q event", pub.published, events.TransactionDeleted)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockTransactionRepo{DeleteFunc: func(ctx context.Context, kind category.Kind, source transaction.Source, id string) error {
			return transaction.ErrNotFound
		}}
		pub := &capturingPublisher{}
		handler := newTransactionTestHandler(category.KindDespesa, transaction.SourceConta, repo, pub)

		req := httptest.NewRequest(http.MethodDelete, "/api/despesaConta/missing", nil)
		req.SetPathValue("id", "missing")
		rr := httptest.NewRecorder()
		handler.HandleDelete(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rr.Code)
		}
		if len(pub.published) != 0 {
			t.Errorf("no event expected, got %d", len(pub.published))
		}
	})
}
