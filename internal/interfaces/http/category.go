package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"laurus/internal/domain/category"
)

// CategoryHandler serves one kind (despesa or receita); the two API
// resources share the implementation and differ only in the kind they
// are constructed with.
type CategoryHandler struct {
	kind       category.Kind
	categories category.Repository
	respond    *Responder
}

func NewCategoryHandler(kind category.Kind, categories category.Repository, respond *Responder) *CategoryHandler {
	return &CategoryHandler{kind: kind, categories: categories, respond: respond}
}

type createCategoryRequest struct {
	Usuario string `json:"usuario"`
	Nome    string `json:"nome"`
	Ativo   *bool  `json:"ativo"`
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := category.CreateCategoryParams{
		UsuarioID: req.Usuario,
		Nome:      req.Nome,
		Ativo:     req.Ativo,
	}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	c, err := h.categories.Create(r.Context(), h.kind, params)
	switch {
	case errors.Is(err, category.ErrOwnerNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuarioNaoEncontrado")
		return
	case errors.Is(err, category.ErrNameTaken):
		h.respond.Message(w, r, http.StatusBadRequest, "erro.nomeJaCadastrado")
		return
	case err != nil:
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusCreated, "sucesso.categoriaCriada", c)
}

func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context(), h.kind)
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if categories == nil {
		categories = []*category.Category{}
	}
	h.respond.List(w, r, "sucesso.listaCategorias", categories, len(categories))
}

func (h *CategoryHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	c, err := h.categories.GetByID(r.Context(), h.kind, r.PathValue("id"))
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if c == nil {
		h.respond.Message(w, r, http.StatusNotFound, "erro.categoriaNaoEncontrada")
		return
	}
	h.respond.Data(w, r, http.StatusOK, "sucesso.categoriaEncontrada", c)
}

type updateCategoryRequest struct {
	Nome  *string `json:"nome"`
	Ativo *bool   `json:"ativo"`
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := category.UpdateCategoryParams{Nome: req.Nome, Ativo: req.Ativo}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	c, err := h.categories.Update(r.Context(), h.kind, r.PathValue("id"), params)
	switch {
	case errors.Is(err, category.ErrNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.categoriaNaoEncontrada")
		return
	case errors.Is(err, category.ErrNameTaken):
		h.respond.Message(w, r, http.StatusBadRequest, "erro.nomeJaCadastrado")
		return
	case err != nil:
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusOK, "sucesso.categoriaAtualizada", c)
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.categories.Delete(r.Context(), h.kind, r.PathValue("id"))
	switch {
	case errors.Is(err, category.ErrNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.categoriaNaoEncontrada")
		return
	case errors.Is(err, category.ErrInUse):
		h.respond.Message(w, r, http.StatusBadRequest, "erro.categoriaEmUso")
		return
	case err != nil:
		h.respond.Internal(w, r, err)
		return
	}
	h.respond.Message(w, r, http.StatusOK, "sucesso.categoriaExcluida")
}
