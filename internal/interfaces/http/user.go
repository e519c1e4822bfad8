package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"laurus/internal/domain/user"
	"laurus/internal/shared/auth"
)

const minSenhaLength = 8

type UserHandler struct {
	users   user.Repository
	respond *Responder
}

func NewUserHandler(users user.Repository, respond *Responder) *UserHandler {
	return &UserHandler{users: users, respond: respond}
}

type createUserRequest struct {
	Nome           string  `json:"nome"`
	Sobrenome      string  `json:"sobrenome"`
	Email          string  `json:"email"`
	Senha          string  `json:"senha"`
	Telefone       *string `json:"telefone"`
	DataNascimento string  `json:"dataNascimento"`
	Idioma         string  `json:"idioma"`
	Moeda          string  `json:"moeda"`
	FormatoData    string  `json:"formatoData"`
}

// HandleCreate registers a new user. This is the only public write
// endpoint; everything else sits behind the Auth middleware.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	if len(req.Senha) < minSenhaLength {
		h.respond.ValidationError(w, r, errors.New("senha must have at least 8 characters"))
		return
	}
	dataNascimento, err := parseDate(req.DataNascimento)
	if err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	senhaHash, err := auth.HashPassword(req.Senha)
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	params := user.CreateUserParams{
		Nome:           req.Nome,
		Sobrenome:      req.Sobrenome,
		Email:          req.Email,
		SenhaHash:      senhaHash,
		Telefone:       req.Telefone,
		DataNascimento: dataNascimento,
		Idioma:         defaultString(req.Idioma, "pt-BR"),
		Moeda:          defaultString(req.Moeda, "BRL"),
		FormatoData:    defaultString(req.FormatoData, "DD/MM/YYYY"),
	}
	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	u, err := h.users.Create(r.Context(), params)
	if errors.Is(err, user.ErrEmailTaken) {
		h.respond.Message(w, r, http.StatusBadRequest, "erro.emailJaCadastrado")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusCreated, "sucesso.usuarioCadastrado", u)
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if users == nil {
		users = []*user.User{}
	}
	h.respond.List(w, r, "sucesso.listaUsuarios", users, len(users))
}

func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if u == nil {
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuarioNaoEncontrado")
		return
	}
	h.respond.Data(w, r, http.StatusOK, "sucesso.usuarioEncontrado", u)
}

// HandleSearchByName matches nome or sobrenome with a case-insensitive
// substring search.
func (h *UserHandler) HandleSearchByName(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.SearchByName(r.Context(), r.PathValue("nome"))
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if len(users) == 0 {
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuariosNaoEncontrados")
		return
	}
	h.respond.List(w, r, "sucesso.usuariosEncontrados", users, len(users))
}

func (h *UserHandler) HandleSearchByEmail(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.SearchByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	if len(users) == 0 {
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuariosNaoEncontrados")
		return
	}
	h.respond.List(w, r, "sucesso.usuariosEncontrados", users, len(users))
}

type updateUserRequest struct {
	Nome           *string `json:"nome"`
	Sobrenome      *string `json:"sobrenome"`
	Email          *string `json:"email"`
	Senha          *string `json:"senha"`
	Telefone       *string `json:"telefone"`
	DataNascimento *string `json:"dataNascimento"`
	Idioma         *string `json:"idioma"`
	Moeda          *string `json:"moeda"`
	FormatoData    *string `json:"formatoData"`
	Ativo          *bool   `json:"ativo"`
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.BadRequest(w, r)
		return
	}

	params := user.UpdateUserParams{
		Nome:        req.Nome,
		Sobrenome:   req.Sobrenome,
		Email:       req.Email,
		Telefone:    req.Telefone,
		Idioma:      req.Idioma,
		Moeda:       req.Moeda,
		FormatoData: req.FormatoData,
		Ativo:       req.Ativo,
	}
	if req.Senha != nil {
		if len(*req.Senha) < minSenhaLength {
			h.respond.ValidationError(w, r, errors.New("senha must have at least 8 characters"))
			return
		}
		senhaHash, err := auth.HashPassword(*req.Senha)
		if err != nil {
			h.respond.Internal(w, r, err)
			return
		}
		params.SenhaHash = &senhaHash
	}
	if req.DataNascimento != nil {
		dataNascimento, err := parseDate(*req.DataNascimento)
		if err != nil {
			h.respond.ValidationError(w, r, err)
			return
		}
		params.DataNascimento = &dataNascimento
	}

	if err := params.Validate(); err != nil {
		h.respond.ValidationError(w, r, err)
		return
	}

	u, err := h.users.Update(r.Context(), r.PathValue("id"), params)
	if errors.Is(err, user.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuarioNaoEncontrado")
		return
	}
	if errors.Is(err, user.ErrEmailTaken) {
		h.respond.Message(w, r, http.StatusBadRequest, "erro.emailJaCadastrado")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}

	h.respond.Data(w, r, http.StatusOK, "sucesso.usuarioAtualizado", u)
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.users.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, user.ErrNotFound) {
		h.respond.Message(w, r, http.StatusNotFound, "erro.usuarioNaoEncontrado")
		return
	}
	if err != nil {
		h.respond.Internal(w, r, err)
		return
	}
	h.respond.Message(w, r, http.StatusOK, "sucesso.usuarioExcluido")
}

// parseDate accepts full RFC3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.New("dataNascimento must be an ISO date")
	}
	return t, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
