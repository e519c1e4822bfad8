package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"laurus/internal/domain/category"
	"laurus/internal/domain/transaction"
	"laurus/internal/events"
	"laurus/internal/shared/log"
)

// TransactionHandler serves one kind (despesa or receita) against one
// source (conta or cartaoCredito). The four API resources are this
// handler instantiated four times.
type TransactionHandler struct {
	kind         category.Kind
	source       transaction.Source
	transactions transaction.Repository
	publisher    events.Publisher
	respond      *Responder
	logger       *log.Logger
}

func NewTransactionHandler(
	kind category.Kind,
	source transaction.Source,
	transactions transaction.Repository,
	publisher events.Publisher,
	respond *Responder,
	logger *log.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		kind:         kind,
		source:       source,
		transactions: transactions,
		publisher:    publisher,
		respond:      respond,
		logger:       logger,
	}
}

type createTransactionRequest struct {
	Conta              *string  `json:"conta"`
	CartaoCredito      *string  `json:"cartaoCredito"`
	Valor              *float64 `json:"valor"`
	DataTransacao      string   `json:"dataTransacao"`
	Categoria          string   `json:"categoria"`
	Subcategoria       *string  `json:"subcategoria"`
	Tags               []string `json:"tags"`
	Parcelamento       bool     `json:"parcelamento"`
	NumeroParcelaAtual *int     `json:"numeroParcelaAtual"`
	TotalParcelas      *int     `json:"totalParcelas"`
	Observacao         *string  `json:"observacao"`
	Ativo              *bool    `json:"ativo"`
}

func (req *createTransactionRequest) sourceID(source transaction.Source) string {
	if source == transaction.SourceCartaoCredito {
		if req.CartaoCredito != nil {
			return *req.CartaoCredito
		}
		return ""
	}
	if req.Conta != nil {
		return *req.Conta
	}
	return ""
}

func (h *TransactionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	var dataTransacao time.Time
	if req.DataTransacao != "" {
		parsed, err := parseDate(req.DataTransacao)
		if err != nil {
			h.respond.ValidationError(w, r, errors.New("dataTransacao must be an ISO date"))
			return
		}
		dataTransacao = parsed
	}

	params := transaction.CreateTransactionParams{
		SourceID:           req.sourceID(h.source),
		Valor:              req.Valor,
		DataTransacao:      dataTransacao,
		CategoriaID:        req.Categoria,
		SubcategoriaID:     req.Subcategoria,
		Tags:               req.Tags,
		Parcelamento:       req.Parcelamento,
		NumeroParcelaAtual: req.NumeroParcelaAtual,
		TotalParcelas:      req.TotalParcelas,
		Observacao:         req.Observacao,
		Ativo:              req.Ativo,
	}
	if err := params.Validate(h.source); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	t, err := h.transactions.Create(r.Context(), h.kind, h.source, params)
	switch {
	case errors.Is(err, transaction.ErrSourceNotFound):
		h.respond.Message(w, r, http.StatusNotFound, h.sourceNotFoundKey())
		return
	case errors.Is(err, transaction.ErrCategoryNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.categoriaNaoEncontrada")
		return
	case errors.Is(err, transaction.ErrSubcategoryNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.subcategoriaNaoEncontrada")
		return
	case err != nil:
		h.respond.Internal(w, r, err)
		return
	}

	h.publish(r, events.New(events.TransactionCreated, t))
	h.respond.Data(w, r, http.StatusCreated, "sucesso.transacaoCriada", t)
}

func (h *TransactionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactions.List(r.Context(), h.kind, h.source)
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if transactions == nil {
		transactions = []*transaction.Transaction{}
	}
	h.respond.List(w, r, "sucesso.listaTransacoes", transactions, len(transactions))
}

func (h *TransactionHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	t, err := h.transactions.GetByID(r.Context(), h.kind, h.source, r.PathValue("id"))
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if t == nil {
		h.respond.Message(w, r, http.StatusNotFound, "erro.transacaoNaoEncontrada")
		return
	}
	h.respond.Data(w, r, http.StatusOK, "sucesso.transacaoEncontrada", t)
}

type updateTransactionRequest struct {
	Valor              *float64 `json:"valor"`
	DataTransacao      *string  `json:"dataTransacao"`
	Categoria          *string  `json:"categoria"`
	Subcategoria       *string  `json:"subcategoria"`
	Tags               []string `json:"tags"`
	Parcelamento       *bool    `json:"parcelamento"`
	NumeroParcelaAtual *int     `json:"numeroParcelaAtual"`
	TotalParcelas      *int     `json:"totalParcelas"`
	Observacao         *string  `json:"observacao"`
	Ativo              *bool    `json:"ativo"`
}

func (h *TransactionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := transaction.UpdateTransactionParams{
		Valor:              req.Valor,
		CategoriaID:        req.Categoria,
		SubcategoriaID:     req.Subcategoria,
		Tags:               req.Tags,
		Parcelamento:       req.Parcelamento,
		NumeroParcelaAtual: req.NumeroParcelaAtual,
		TotalParcelas:      req.TotalParcelas,
		Observacao:         req.Observacao,
		Ativo:              req.Ativo,
	}
	if req.DataTransacao != nil {
		parsed, err := parseDate(*req.DataTransacao)
		if err != nil {
			h.respond.ValidationError(w, r, errors.New("dataTransacao must be an ISO date"))
			return
		}
		params.DataTransacao = &parsed
	}

	if err := params.Validate(h.source); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	t, err := h.transactions.Update(r.Context(), h.kind, h.source, r.PathValue("id"), params)
	switch {
	case errors.Is(err, transaction.ErrNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.transacaoNaoEncontrada")
		return
	case errors.Is(err, transaction.ErrCategoryNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.categoriaNaoEncontrada")
		return
	case errors.Is(err, transaction.ErrSubcategoryNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.subcategoriaNaoEncontrada")
		return
	case err != nil:
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusOK, "sucesso.transacaoAtualizada", t)
}

func (h *TransactionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := h.transactions.Delete(r.Context(), h.kind, h.source, id)
	if errors.Is(err, transaction.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.transacaoNaoEncontrada")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	h.publish(r, events.New(events.TransactionDeleted, map[string]string{"id": id}))
	h.respond.Message(w, r, http.StatusOK, "sucesso.transacaoExcluida")
}

func (h *TransactionHandler) sourceNotFoundKey() string {
	if h.source == transaction.SourceCartaoCredito {
		return "erro.cartaoNaoEncontrado"
	}
	return "erro.contaNaoEncontrada"
}

// publish is best-effort: a broker failure is logged, never surfaced to
// the API caller.
func (h *TransactionHandler) publish(r *http.Request, event events.Event) {
	if err := h.publisher.Publish(r.Context(), event); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to publish event", "evento", event.Name, "error", err)
	}
}
