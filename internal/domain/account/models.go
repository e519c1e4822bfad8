package account

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrOwnerNotFound = errors.New("account owner not found")
)

// TiposConta lists the valid account types.
var TiposConta = []string{"Conta Corrente", "Conta Salário", "Poupança", "Investimento"}

type Account struct {
	ID         string    `json:"id"`
	UsuarioID  string    `json:"usuario"`
	Nome       string    `json:"nome"`
	Banco      string    `json:"banco"`
	TipoConta  string    `json:"tipoConta"`
	Observacao *string   `json:"observacao,omitempty"`
	Ativo      bool      `json:"ativo"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateAccountParams struct {
	UsuarioID  string
	Nome       string
	Banco      string
	TipoConta  string
	Observacao *string
	Ativo      *bool
}

func (p *CreateAccountParams) Validate() error {
	if p.UsuarioID == "" {
		return errors.New("usuario is required")
	}
	if err := validateNome(p.Nome); err != nil {
		return err
	}
	if p.Banco == "" {
		return errors.New("banco is required")
	}
	if !validTipoConta(p.TipoConta) {
		return errors.New("tipoConta must be one of: " + strings.Join(TiposConta, ", "))
	}
	return nil
}

type UpdateAccountParams struct {
	Nome       *string
	Banco      *string
	TipoConta  *string
	Observacao *string
	Ativo      *bool
}

func (p *UpdateAccountParams) Validate() error {
	if p.Nome == nil && p.Banco == nil && p.TipoConta == nil && p.Observacao == nil && p.Ativo == nil {
		return errors.New("at least one field must be provided")
	}
	if p.Nome != nil {
		if err := validateNome(*p.Nome); err != nil {
			return err
		}
	}
	if p.Banco != nil && *p.Banco == "" {
		return errors.New("banco must not be empty")
	}
	if p.TipoConta != nil && !validTipoConta(*p.TipoConta) {
		return errors.New("tipoConta must be one of: " + strings.Join(TiposConta, ", "))
	}
	return nil
}

func validateNome(nome string) error {
	if len(nome) < 2 || len(nome) > 50 {
		return errors.New("nome must be between 2 and 50 characters")
	}
	return nil
}

func validTipoConta(tipo string) bool {
	for _, t := range TiposConta {
		if t == tipo {
			return true
		}
	}
	return false
}
