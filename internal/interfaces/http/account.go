package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"laurus/internal/domain/account"
)

type AccountHandler struct {
	accounts account.Repository
	respond  *Responder
}

func NewAccountHandler(accounts account.Repository, respond *Responder) *AccountHandler {
	return &AccountHandler{accounts: accounts, respond: respond}
}

type createAccountRequest struct {
	Usuario    string  `json:"usuario"`
	Nome       string  `json:"nome"`
	Banco      string  `json:"banco"`
	TipoConta  string  `json:"tipoConta"`
	Observacao *string `json:"observacao"`
	Ativo      *bool   `json:"ativo"`
}

func (h *AccountHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := account.CreateAccountParams{
		UsuarioID:  req.Usuario,
		Nome:       req.Nome,
		Banco:      req.Banco,
		TipoConta:  req.TipoConta,
		Observacao: req.Observacao,
		Ativo:      req.Ativo,
	}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	a, err := h.accounts.Create(r.Context(), params)
	if errors.Is(err, account.ErrOwnerNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuarioNaoEncontrado")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusCreated, "sucesso.contaCriada", a)
}

func (h *AccountHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.List(r.Context())
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if accounts == nil {
		accounts = []*account.Account{}
	}
	h.respond.List(w, r, "sucesso.listaContas", accounts, len(accounts))
}

func (h *AccountHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	a, err := h.accounts.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if a == nil {
		h.respond.Message(w, r, http.StatusNotFound, "erro.contaNaoEncontrada")
		return
	}
	h.respond.Data(w, r, http.StatusOK, "sucesso.contaEncontrada", a)
}

type updateAccountRequest struct {
	Nome       *string `json:"nome"`
	Banco      *string `json:"banco"`
	TipoConta  *string `json:"tipoConta"`
	Observacao *string `json:"observacao"`
	Ativo      *bool   `json:"ativo"`
}

func (h *AccountHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := account.UpdateAccountParams{
		Nome:       req.Nome,
		Banco:      req.Banco,
		TipoConta:  req.TipoConta,
		Observacao: req.Observacao,
		Ativo:      req.Ativo,
	}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	a, err := h.accounts.Update(r.Context(), r.PathValue("id"), params)
	if errors.Is(err, account.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.contaNaoEncontrada")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusOK, "sucesso.contaAtualizada", a)
}

func (h *AccountHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.accounts.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, account.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.contaNaoEncontrada")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	h.respond.Message(w, r, http.StatusOK, "sucesso.contaExcluida")
}
