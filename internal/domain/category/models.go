package category

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("category not found")
	ErrOwnerNotFound = errors.New("category owner not found")
	ErrNameTaken     = errors.New("category name already in use")
	ErrInUse         = errors.New("category is referenced by transactions")
)

// Kind splits categories (and everything hanging off them) between the
// expense and income halves of the ledger.
type Kind string

const (
	KindDespesa Kind = "despesa"
	KindReceita Kind = "receita"
)

func (k Kind) Valid() bool {
	return k == KindDespesa || k == KindReceita
}

type Category struct {
	ID            string    `json:"id"`
	UsuarioID     string    `json:"usuario"`
	Kind          Kind      `json:"-"`
	Nome          string    `json:"nome"`
	Subcategorias []string  `json:"subcategorias"`
	Ativo         bool      `json:"ativo"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateCategoryParams struct {
	UsuarioID string
	Nome      string
	Ativo     *bool
}

func (p *CreateCategoryParams) Validate() error {
	if p.UsuarioID == "" {
		return errors.New("usuario is required")
	}
	return validateNome(p.Nome)
}

type UpdateCategoryParams struct {
	Nome  *string
	Ativo *bool
}

func (p *UpdateCategoryParams) Validate() error {
	if p.Nome == nil && p.Ativo == nil {
		return errors.New("at least one field must be provided")
	}
	if p.Nome != nil {
		return validateNome(*p.Nome)
	}
	return nil
}

func validateNome(nome string) error {
	if len(nome) < 2 || len(nome) > 50 {
		return errors.New("nome must be between 2 and 50 characters")
	}
	return nil
}
