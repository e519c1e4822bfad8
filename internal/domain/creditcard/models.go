package creditcard

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("credit card not found")
	ErrOwnerNotFound = errors.New("credit card owner not found")
)

// Bandeiras lists the accepted card brands.
var Bandeiras = []string{"Visa", "Mastercard", "American Express", "Elo", "Hipercard"}

type CreditCard struct {
	ID                  string    `json:"id"`
	UsuarioID           string    `json:"usuario"`
	Nome                string    `json:"nome"`
	Bandeira            string    `json:"bandeira"`
	DiaFechamentoFatura int       `json:"diaFechamentoFatura"`
	DiaVencimentoFatura int       `json:"diaVencimentoFatura"`
	Ativo               bool      `json:"ativo"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type CreateCreditCardParams struct {
	UsuarioID           string
	Nome                string
	Bandeira            string
	DiaFechamentoFatura int
	DiaVencimentoFatura int
	Ativo               *bool
}

func (p *CreateCreditCardParams) Validate() error {
	if p.UsuarioID == "" {
		return errors.New("usuario is required")
	}
	if len(p.Nome) < 2 || len(p.Nome) > 50 {
		return errors.New("nome must be between 2 and 50 characters")
	}
	if !validBandeira(p.Bandeira) {
		return errors.New("bandeira must be one of: " + strings.Join(Bandeiras, ", "))
	}
	if err := validateDia("diaFechamentoFatura", p.DiaFechamentoFatura); err != nil {
		return err
	}
	return validateDia("diaVencimentoFatura", p.DiaVencimentoFatura)
}

type UpdateCreditCardParams struct {
	Nome                *string
	Bandeira            *string
	DiaFechamentoFatura *int
	DiaVencimentoFatura *int
	Ativo               *bool
}

func (p *UpdateCreditCardParams) Validate() error {
	if p.Nome == nil && p.Bandeira == nil && p.DiaFechamentoFatura == nil &&
		p.DiaVencimentoFatura == nil && p.Ativo == nil {
		return errors.New("at least one field must be provided")
	}
	if p.Nome != nil && (len(*p.Nome) < 2 || len(*p.Nome) > 50) {
		return errors.New("nome must be between 2 and 50 characters")
	}
	if p.Bandeira != nil && !validBandeira(*p.Bandeira) {
		return errors.New("bandeira must be one of: " + strings.Join(Bandeiras, ", "))
	}
	if p.DiaFechamentoFatura != nil {
		if err := validateDia("diaFechamentoFatura", *p.DiaFechamentoFatura); err != nil {
			return err
		}
	}
	if p.DiaVencimentoFatura != nil {
		if err := validateDia("diaVencimentoFatura", *p.DiaVencimentoFatura); err != nil {
			return err
		}
	}
	return nil
}

func validateDia(field string, dia int) error {
	if dia < 1 || dia > 31 {
		return errors.New(field + " must be between 1 and 31")
	}
	return nil
}

func validBandeira(bandeira string) bool {
	for _, b := range Bandeiras {
		if b == bandeira {
			return true
		}
	}
	return false
}
