package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"laurus/internal/domain/creditcard"
)

type CreditCardHandler struct {
	cards   creditcard.Repository
	respond *Responder
}

func NewCreditCardHandler(cards creditcard.Repository, respond *Responder) *CreditCardHandler {
	return &CreditCardHandler{cards: cards, respond: respond}
}

type createCreditCardRequest struct {
	Usuario             string `json:"usuario"`
	Nome                string `json:"nome"`
	Bandeira            string `json:"bandeira"`
	DiaFechamentoFatura int    `json:"diaFechamentoFatura"`
	DiaVencimentoFatura int    `json:"diaVencimentoFatura"`
	Ativo               *bool  `json:"ativo"`
}

func (h *CreditCardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCreditCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := creditcard.CreateCreditCardParams{
		UsuarioID:           req.Usuario,
		Nome:                req.Nome,
		Bandeira:            req.Bandeira,
		DiaFechamentoFatura: req.DiaFechamentoFatura,
		DiaVencimentoFatura: req.DiaVencimentoFatura,
		Ativo:               req.Ativo,
	}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	c, err := h.cards.Create(r.Context(), params)
	if errors.Is(err, creditcard.ErrOwnerNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuarioNaoEncontrado")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusCreated, "sucesso.cartaoCriado", c)
}

func (h *CreditCardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.List(r.Context())
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if cards == nil {
		cards = []*creditcard.CreditCard{}
	}
	h.respond.List(w, r, "sucesso.listaCartoes", cards, len(cards))
}

func (h *CreditCardHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	c, err := h.cards.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if c == nil {
		h.respond.Message(w, r, http.StatusNotFound, "erro.cartaoNaoEncontrado")
		return
	}
	h.respond.Data(w, r, http.StatusOK, "sucesso.cartaoEncontrado", c)
}

type updateCreditCardRequest struct {
	Nome                *string `json:"nome"`
	Bandeira            *string `json:"bandeira"`
	DiaFechamentoFatura *int    `json:"diaFechamentoFatura"`
	DiaVencimentoFatura *int    `json:"diaVencimentoFatura"`
	Ativo               *bool   `json:"ativo"`
}

func (h *CreditCardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateCreditCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := creditcard.UpdateCreditCardParams{
		Nome:                req.Nome,
		Bandeira:            req.Bandeira,
		DiaFechamentoFatura: req.DiaFechamentoFatura,
		DiaVencimentoFatura: req.DiaVencimentoFatura,
		Ativo:               req.Ativo,
	}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	c, err := h.cards.Update(r.Context(), r.PathValue("id"), params)
	if errors.Is(err, creditcard.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.cartaoNaoEncontrado")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusOK, "sucesso.cartaoAtualizado", c)
}

func (h *CreditCardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.cards.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, creditcard.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.cartaoNaoEncontrado")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	h.respond.Message(w, r, http.StatusOK, "sucesso.cartaoExcluido")
}
