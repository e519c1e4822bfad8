package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"laurus/internal/domain/category"
	"laurus/internal/domain/subcategory"
)

type SubcategoryHandler struct {
	kind          category.Kind
	subcategories subcategory.Repository
	respond       *Responder
}

func NewSubcategoryHandler(kind category.Kind, subcategories subcategory.Repository, respond *Responder) *SubcategoryHandler {
	return &SubcategoryHandler{kind: kind, subcategories: subcategories, respond: respond}
}

type createSubcategoryRequest struct {
	Usuario   string `json:"usuario"`
	Categoria string `json:"categoria"`
	Nome      string `json:"nome"`
	Ativo     *bool  `json:"ativo"`
}

func (h *SubcategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createSubcategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := subcategory.CreateSubcategoryParams{
		UsuarioID:   req.Usuario,
		CategoriaID: req.Categoria,
		Nome:        req.Nome,
		Ativo:       req.Ativo,
	}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	s, err := h.subcategories.Create(r.Context(), h.kind, params)
	switch {
	case errors.Is(err, subcategory.ErrParentNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.categoriaNaoEncontrada")
		return
	case errors.Is(err, subcategory.ErrNameTaken):
		h.respond.Message(w, r, http.StatusBadRequest, "erro.nomeJaCadastrado")
		return
	case err != nil:
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusCreated, "sucesso.subcategoriaCriada", s)
}

func (h *SubcategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	subcategories, err := h.subcategories.List(r.Context(), h.kind)
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if subcategories == nil {
		subcategories = []*subcategory.Subcategory{}
	}
	h.respond.List(w, r, "sucesso.listaSubcategorias", subcategories, len(subcategories))
}

func (h *SubcategoryHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	s, err := h.subcategories.GetByID(r.Context(), h.kind, r.PathValue("id"))
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if s == nil {
		h.respond.Message(w, r, http.StatusNotFound, "erro.subcategoriaNaoEncontrada")
		return
	}
	h.respond.Data(w, r, http.StatusOK, "sucesso.subcategoriaEncontrada", s)
}

type updateSubcategoryRequest struct {
	Nome  *string `json:"nome"`
	Ativo *bool   `json:"ativo"`
}

func (h *SubcategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateSubcategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := subcategory.UpdateSubcategoryParams{Nome: req.Nome, Ativo: req.Ativo}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	s, err := h.subcategories.Update(r.Context(), h.kind, r.PathValue("id"), params)
	switch {
	case errors.Is(err, subcategory.ErrNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.subcategoriaNaoEncontrada")
		return
	case errors.Is(err, subcategory.ErrNameTaken):
		h.respond.Message(w, r, http.StatusBadRequest, "erro.nomeJaCadastrado")
		return
	case err != nil:
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusOK, "sucesso.subcategoriaAtualizada", s)
}

func (h *SubcategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.subcategories.Delete(r.Context(), h.kind, r.PathValue("id"))
	if errors.Is(err, subcategory.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.subcategoriaNaoEncontrada")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	h.respond.Message(w, r, http.StatusOK, "sucesso.subcategoriaExcluida")
}
