package transaction

import (
	"errors"
	"time"

	"laurus/internal/domain/category"
)

var (
	ErrNotFound            = errors.New("transaction not found")
	ErrSourceNotFound      = errors.New("transaction source not found")
	ErrCategoryNotFound    = errors.New("transaction category not found")
	ErrSubcategoryNotFound = errors.New("transaction subcategory not found")
)

// Source identifies which kind of funding instrument a transaction is
// booked against. Each transaction references exactly one source.
type Source string

const (
	SourceConta         Source = "conta"
	SourceCartaoCredito Source = "cartaoCredito"
)

const (
	MaxValor         = 999999999
	MinTotalParcelas = 2
	MaxTotalParcelas = 24
)

type Transaction struct {
	ID                 string        `json:"id"`
	Kind               category.Kind `json:"-"`
	Source             Source        `json:"-"`
	ContaID            *string       `json:"conta,omitempty"`
	CartaoCreditoID    *string       `json:"cartaoCredito,omitempty"`
	Valor              float64       `json:"valor"`
	DataTransacao      time.Time     `json:"dataTransacao"`
	CategoriaID        string        `json:"categoria"`
	SubcategoriaID     *string       `json:"subcategoria,omitempty"`
	Tags               []string      `json:"tags"`
	Parcelamento       bool          `json:"parcelamento"`
	NumeroParcelaAtual *int          `json:"numeroParcelaAtual,omitempty"`
	TotalParcelas      *int          `json:"totalParcelas,omitempty"`
	Observacao         *string       `json:"observacao,omitempty"`
	Ativo              bool          `json:"ativo"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

type CreateTransactionParams struct {
	SourceID           string
	Valor              *float64
	DataTransacao      time.Time
	CategoriaID        string
	SubcategoriaID     *string
	Tags               []string
	Parcelamento       bool
	NumeroParcelaAtual *int
	TotalParcelas      *int
	Observacao         *string
	Ativo              *bool
}

func (p *CreateTransactionParams) Validate(source Source) error {
	if p.SourceID == "" {
		return errors.New(string(source) + " is required")
	}
	if p.Valor == nil {
		return errors.New("valor is required")
	}
	if err := validateValor(*p.Valor); err != nil {
		return err
	}
	if p.DataTransacao.IsZero() {
		return errors.New("dataTransacao is required")
	}
	if p.CategoriaID == "" {
		return errors.New("categoria is required")
	}
	return validateParcelamento(source, p.Parcelamento, p.NumeroParcelaAtual, p.TotalParcelas)
}

type UpdateTransactionParams struct {
	Valor              *float64
	DataTransacao      *time.Time
	CategoriaID        *string
	SubcategoriaID     *string
	Tags               []string
	Parcelamento       *bool
	NumeroParcelaAtual *int
	TotalParcelas      *int
	Observacao         *string
	Ativo              *bool
}

func (p *UpdateTransactionParams) Validate(source Source) error {
	if p.Valor == nil && p.DataTransacao == nil && p.CategoriaID == nil &&
		p.SubcategoriaID == nil && p.Tags == nil && p.Parcelamento == nil &&
		p.NumeroParcelaAtual == nil && p.TotalParcelas == nil &&
		p.Observacao == nil && p.Ativo == nil {
		return errors.New("at least one field must be provided")
	}
	if p.Valor != nil {
		if err := validateValor(*p.Valor); err != nil {
			return err
		}
	}
	if p.CategoriaID != nil && *p.CategoriaID == "" {
		return errors.New("categoria must not be empty")
	}
	parcelamento := false
	if p.Parcelamento != nil {
		parcelamento = *p.Parcelamento
	}
	return validateParcelamento(source, parcelamento, p.NumeroParcelaAtual, p.TotalParcelas)
}

func validateValor(valor float64) error {
	if valor < 0 || valor > MaxValor {
		return errors.New("valor must be between 0 and 999999999")
	}
	return nil
}

// validateParcelamento enforces the installment pairing rule: installment
// fields exist only on card-backed transactions, are required together when
// parcelamento is true, and are forbidden otherwise.
func validateParcelamento(source Source, parcelamento bool, numeroParcelaAtual, totalParcelas *int) error {
	if parcelamento && source != SourceCartaoCredito {
		return errors.New("parcelamento is only allowed on credit card transactions")
	}
	if !parcelamento {
		if numeroParcelaAtual != nil || totalParcelas != nil {
			return errors.New("numeroParcelaAtual and totalParcelas are forbidden without parcelamento")
		}
		return nil
	}
	if numeroParcelaAtual == nil || totalParcelas == nil {
		return errors.New("numeroParcelaAtual and totalParcelas are required with parcelamento")
	}
	if *numeroParcelaAtual < 1 {
		return errors.New("numeroParcelaAtual must be at least 1")
	}
	if *totalParcelas < MinTotalParcelas || *totalParcelas > MaxTotalParcelas {
		return errors.New("totalParcelas must be between 2 and 24")
	}
	if *numeroParcelaAtual > *totalParcelas {
		return errors.New("numeroParcelaAtual must not exceed totalParcelas")
	}
	return nil
}
