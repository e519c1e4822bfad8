package tag

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("tag not found")
	ErrOwnerNotFound = errors.New("tag owner not found")
	ErrNameTaken     = errors.New("tag name already in use")
)

type Tag struct {
	ID        string    `json:"id"`
	UsuarioID string    `json:"usuario"`
	Nome      string    `json:"nome"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateTagParams struct {
	UsuarioID string
	Nome      string
	Ativo     *bool
}

func (p *CreateTagParams) Validate() error {
	if p.UsuarioID == "" {
		return errors.New("usuario is required")
	}
	return validateNome(p.Nome)
}

type UpdateTagParams struct {
	Nome  *string
	Ativo *bool
}

func (p *UpdateTagParams) Validate() error {
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
