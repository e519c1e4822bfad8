package postgres

import (
	"errors"
	"testing"

	"github.com/lib/pq"

	"laurus/internal/domain/transaction"
)

func TestClearsInstallments(t *testing.T) {
	truthy, falsy := true, false

	tests := []struct {
		name         string
		parcelamento *bool
		want         bool
	}{
		{name: "absent leaves counters alone", parcelamento: nil, want: false},
		{name: "explicit true keeps counters", parcelamento: &truthy, want: false},
		{name: "explicit false clears counters", parcelamento: &falsy, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clearsInstallments(tt.parcelamento); got != tt.want {
				t.Errorf("clearsInstallments(%v) = %v, want %v", tt.parcelamento, got, tt.want)
			}
		})
	}
}

func TestSourceTableFor(t *testing.T) {
	if got := sourceTableFor(transaction.SourceConta); got != "contas" {
		t.Errorf("sourceTableFor(conta) = %q", got)
	}
	if got := sourceTableFor(transaction.SourceCartaoCredito); got != "cartoes_credito" {
		t.Errorf("sourceTableFor(cartaoCredito) = %q", got)
	}
}

func TestViolationClassifiers(t *testing.T) {
	fk := &pq.Error{Code: foreignKeyViolation}
	unique := &pq.Error{Code: uniqueViolation}

	if !isForeignKeyViolation(fk) {
		t.Error("23503 must classify as a foreign key violation")
	}
	if isForeignKeyViolation(unique) || isForeignKeyViolation(errors.New("other")) {
		t.Error("only 23503 classifies as a foreign key violation")
	}
	if !isUniqueViolation(unique) {
		t.Error("23505 must classify as a unique violation")
	}
	if isUniqueViolation(fk) || isUniqueViolation(errors.New("other")) {
		t.Error("only 23505 classifies as a unique violation")
	}
}
