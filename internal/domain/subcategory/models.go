package subcategory

import (
	"errors"
	"time"

	"laurus/internal/domain/category"
)

var (
	ErrNotFound       = errors.New("subcategory not found")
	ErrParentNotFound = errors.New("parent category not found")
	ErrNameTaken      = errors.New("subcategory name already in use")
)

type Subcategory struct {
	ID          string        `json:"id"`
	UsuarioID   string        `json:"usuario"`
	CategoriaID string        `json:"categoria"`
	Kind        category.Kind `json:"-"`
	Nome        string        `json:"nome"`
	Ativo       bool          `json:"ativo"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type CreateSubcategoryParams struct {
	UsuarioID   string
	CategoriaID string
	Nome        string
	Ativo       *bool
}

func (p *CreateSubcategoryParams) Validate() error {
	if p.UsuarioID == "" {
		return errors.New("usuario is required")
	}
	if p.CategoriaID == "" {
		return errors.New("categoria is required")
	}
	return validateNome(p.Nome)
}

type UpdateSubcategoryParams struct {
	Nome  *string
	Ativo *bool
}

func (p *UpdateSubcategoryParams) Validate() error {
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
