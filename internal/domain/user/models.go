package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("e-mail already registered")
)

// Supported profile preference values. The wire format keeps the
// Portuguese field names of the public API.
var (
	Idiomas      = []string{"pt-BR", "en-US", "es-ES"}
	Moedas       = []string{"ARS", "BRL", "CLP", "COP", "EUR", "GBP", "JPY", "MXN", "USD", "UYU"}
	FormatosData = []string{"DD/MM/YYYY", "MM/DD/YYYY"}
)

type User struct {
	ID                string     `json:"id"`
	Nome              string     `json:"nome"`
	Sobrenome         string     `json:"sobrenome"`
	Email             string     `json:"email"`
	SenhaHash         string     `json:"-"`
	Telefone          *string    `json:"telefone,omitempty"`
	DataNascimento    time.Time  `json:"dataNascimento"`
	Idioma            string     `json:"idioma"`
	Moeda             string     `json:"moeda"`
	FormatoData       string     `json:"formatoData"`
	Contas            []string   `json:"contas"`
	CartoesDeCredito  []string   `json:"cartoesDeCredito"`
	DespesaCategorias []string   `json:"despesaCategorias"`
	ReceitaCategorias []string   `json:"receitaCategorias"`
	Tags              []string   `json:"tags"`
	TokenAtivo        *string    `json:"-"`
	UltimoAcesso      *time.Time `json:"ultimoAcesso,omitempty"`
	Ativo             bool       `json:"ativo"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type CreateUserParams struct {
	Nome           string
	Sobrenome      string
	Email          string
	SenhaHash      string
	Telefone       *string
	DataNascimento time.Time
	Idioma         string
	Moeda          string
	FormatoData    string
}

func (p *CreateUserParams) Validate() error {
	if p.Nome == "" {
		return errors.New("nome is required")
	}
	if p.Sobrenome == "" {
		return errors.New("sobrenome is required")
	}
	if !validEmail(p.Email) {
		return errors.New("email is invalid")
	}
	if p.SenhaHash == "" {
		return errors.New("senha is required")
	}
	if p.DataNascimento.IsZero() {
		return errors.New("dataNascimento is required")
	}
	if !contains(Idiomas, p.Idioma) {
		return errors.New("idioma must be one of: " + strings.Join(Idiomas, ", "))
	}
	if !contains(Moedas, p.Moeda) {
		return errors.New("moeda must be one of: " + strings.Join(Moedas, ", "))
	}
	if !contains(FormatosData, p.FormatoData) {
		return errors.New("formatoData must be one of: " + strings.Join(FormatosData, ", "))
	}
	return nil
}

type UpdateUserParams struct {
	Nome           *string
	Sobrenome      *string
	Email          *string
	SenhaHash      *string
	Telefone       *string
	DataNascimento *time.Time
	Idioma         *string
	Moeda          *string
	FormatoData    *string
	Ativo          *bool
}

func (p *UpdateUserParams) Validate() error {
	if p.Nome == nil && p.Sobrenome == nil && p.Email == nil && p.SenhaHash == nil &&
		p.Telefone == nil && p.DataNascimento == nil && p.Idioma == nil &&
		p.Moeda == nil && p.FormatoData == nil && p.Ativo == nil {
		return errors.New("at least one field must be provided")
	}
	if p.Nome != nil && *p.Nome == "" {
		return errors.New("nome must not be empty")
	}
	if p.Sobrenome != nil && *p.Sobrenome == "" {
		return errors.New("sobrenome must not be empty")
	}
	if p.Email != nil && !validEmail(*p.Email) {
		return errors.New("email is invalid")
	}
	if p.Idioma != nil && !contains(Idiomas, *p.Idioma) {
		return errors.New("idioma must be one of: " + strings.Join(Idiomas, ", "))
	}
	if p.Moeda != nil && !contains(Moedas, *p.Moeda) {
		return errors.New("moeda must be one of: " + strings.Join(Moedas, ", "))
	}
	if p.FormatoData != nil && !contains(FormatosData, *p.FormatoData) {
		return errors.New("formatoData must be one of: " + strings.Join(FormatosData, ", "))
	}
	return nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
