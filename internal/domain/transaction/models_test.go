package transaction

import (
	"testing"
	"time"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func validCreateParams() CreateTransactionParams {
	return CreateTransactionParams{
		SourceID:      "conta-1",
		Valor:         floatPtr(150.75),
		DataTransacao: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		CategoriaID:   "cat-1",
	}
}

func TestCreateTransactionParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		source  Source
		mutate  func(*CreateTransactionParams)
		wantErr bool
	}{
		{
			name:   "valid account transaction",
			source: SourceConta,
			mutate: func(p *CreateTransactionParams) {},
		},
		{
			name:   "valid card transaction with installments",
			source: SourceCartaoCredito,
			mutate: func(p *CreateTransactionParams) {
				p.Parcelamento = true
				p.NumeroParcelaAtual = intPtr(2)
				p.TotalParcelas = intPtr(12)
			},
		},
		{
			name:    "missing source id",
			source:  SourceConta,
			mutate:  func(p *CreateTransactionParams) { p.SourceID = "" },
			wantErr: true,
		},
		{
			name:    "missing valor",
			source:  SourceConta,
			mutate:  func(p *CreateTransactionParams) { p.Valor = nil },
			wantErr: true,
		},
		{
			name:    "negative valor",
			source:  SourceConta,
			mutate:  func(p *CreateTransactionParams) { p.Valor = floatPtr(-1) },
			wantErr: true,
		},
		{
			name:    "valor above limit",
			source:  SourceConta,
			mutate:  func(p *CreateTransactionParams) { p.Valor = floatPtr(1000000000) },
			wantErr: true,
		},
		{
			name:    "missing dataTransacao",
			source:  SourceConta,
			mutate:  func(p *CreateTransactionParams) { p.DataTransacao = time.Time{} },
			wantErr: true,
		},
		{
			name:    "missing categoria",
			source:  SourceConta,
			mutate:  func(p *CreateTransactionParams) { p.CategoriaID = "" },
			wantErr: true,
		},
		{
			name:   "installments on account source rejected",
			source: SourceConta,
			mutate: func(p *CreateTransactionParams) {
				p.Parcelamento = true
				p.NumeroParcelaAtual = intPtr(1)
				p.TotalParcelas = intPtr(3)
			},
			wantErr: true,
		},
		{
			name:   "installment fields forbidden without parcelamento",
			source: SourceCartaoCredito,
			mutate: func(p *CreateTransactionParams) {
				p.NumeroParcelaAtual = intPtr(1)
				p.TotalParcelas = intPtr(3)
			},
			wantErr: true,
		},
		{
			name:   "parcelamento requires both fields",
			source: SourceCartaoCredito,
			mutate: func(p *CreateTransactionParams) {
				p.Parcelamento = true
				p.TotalParcelas = intPtr(3)
			},
			wantErr: true,
		},
		{
			name:   "numeroParcelaAtual below one",
			source: SourceCartaoCredito,
			mutate: func(p *CreateTransactionParams) {
				p.Parcelamento = true
				p.NumeroParcelaAtual = intPtr(0)
				p.TotalParcelas = intPtr(3)
			},
			wantErr: true,
		},
		{
			name:   "totalParcelas below minimum",
			source: SourceCartaoCredito,
			mutate: func(p *CreateTransactionParams) {
				p.Parcelamento = true
				p.NumeroParcelaAtual = intPtr(1)
				p.TotalParcelas = intPtr(1)
			},
			wantErr: true,
		},
		{
			name:   "totalParcelas above maximum",
			source: SourceCartaoCredito,
			mutate: func(p *CreateTransactionParams) {
				p.Parcelamento = true
				p.NumeroParcelaAtual = intPtr(1)
				p.TotalParcelas = intPtr(25)
			},
			wantErr: true,
		},
		{
			name:   "numeroParcelaAtual exceeds total",
			source: SourceCartaoCredito,
			mutate: func(p *CreateTransactionParams) {
				p.Parcelamento = true
				p.NumeroParcelaAtual = intPtr(5)
				p.TotalParcelas = intPtr(3)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validCreateParams()
			tt.mutate(&params)

			err := params.Validate(tt.source)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateTransactionParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		source  Source
		params  UpdateTransactionParams
		wantErr bool
	}{
		{
			name:    "no fields provided",
			source:  SourceConta,
			params:  UpdateTransactionParams{},
			wantErr: true,
		},
		{
			name:   "single field update",
			source: SourceConta,
			params: UpdateTransactionParams{Valor: floatPtr(10)},
		},
		{
			name:    "empty categoria rejected",
			source:  SourceConta,
			params:  UpdateTransactionParams{CategoriaID: new(string)},
			wantErr: true,
		},
		{
			name:   "installments updatable on card source",
			source: SourceCartaoCredito,
			params: UpdateTransactionParams{
				Parcelamento:       boolPtr(true),
				NumeroParcelaAtual: intPtr(3),
				TotalParcelas:      intPtr(10),
			},
		},
		{
			name:   "installments rejected on account source",
			source: SourceConta,
			params: UpdateTransactionParams{
				Parcelamento:       boolPtr(true),
				NumeroParcelaAtual: intPtr(3),
				TotalParcelas:      intPtr(10),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate(tt.source)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func boolPtr(v bool) *bool { return &v }
