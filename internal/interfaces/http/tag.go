package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"laurus/internal/domain/tag"
)

type TagHandler struct {
	tags    tag.Repository
	respond *Responder
}

func NewTagHandler(tags tag.Repository, respond *Responder) *TagHandler {
	return &TagHandler{tags: tags, respond: respond}
}

type createTagRequest struct {
	Usuario string `json:"usuario"`
	Nome    string `json:"nome"`
	Ativo   *bool  `json:"ativo"`
}

func (h *TagHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := tag.CreateTagParams{
		UsuarioID: req.Usuario,
		Nome:      req.Nome,
		Ativo:     req.Ativo,
	}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	t, err := h.tags.Create(r.Context(), params)
	switch {
	case errors.Is(err, tag.ErrOwnerNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuarioNaoEncontrado")
		return
	case errors.Is(err, tag.ErrNameTaken):
		h.respond.Message(w, r, http.StatusBadRequest, "erro.nomeJaCadastrado")
		return
	case err != nil:
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusCreated, "sucesso.tagCriada", t)
}

func (h *TagHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.List(r.Context())
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if tags == nil {
		tags = []*tag.Tag{}
	}
	h.respond.List(w, r, "sucesso.listaTags", tags, len(tags))
}

func (h *TagHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	t, err := h.tags.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if t == nil {
		h.respond.Message(w, r, http.StatusNotFound, "erro.tagNaoEncontrada")
		return
	}
	h.respond.Data(w, r, http.StatusOK, "sucesso.tagEncontrada", t)
}

type updateTagRequest struct {
	Nome  *string `json:"nome"`
	Ativo *bool   `json:"ativo"`
}

func (h *TagHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := tag.UpdateTagParams{Nome: req.Nome, Ativo: req.Ativo}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	t, err := h.tags.Update(r.Context(), r.PathValue("id"), params)
	switch {
	case errors.Is(err, tag.ErrNotFound):
		h.respond.Message(w, r, http.StatusNotFound, "erro.tagNaoEncontrada")
		return
	case errors.Is(err, tag.ErrNameTaken):
		h.respond.Message(w, r, http.StatusBadRequest, "erro.nomeJaCadastrado")
		return
	case err != nil:
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusOK, "sucesso.tagAtualizada", t)
}

func (h *TagHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.tags.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, tag.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.tagNaoEncontrada")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	h.respond.Message(w, r, http.StatusOK, "sucesso.tagExcluida")
}
