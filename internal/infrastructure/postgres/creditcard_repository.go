package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"laurus/internal/domain/creditcard"
)

const creditCardColumns = `id, usuario_id, nome, bandeira, dia_fechamento_fatura, dia_vencimento_fatura, ativo, created_at, updated_at`

type CreditCardRepository struct {
	db *DB
}

func NewCreditCardRepository(db *DB) *CreditCardRepository {
	return &CreditCardRepository{db: db}
}

func (r *CreditCardRepository) Create(ctx context.Context, params creditcard.CreateCreditCardParams) (*creditcard.CreditCard, error) {
	ativo := true
	if params.Ativo != nil {
		ativo = *params.Ativo
	}

	var c creditcard.CreditCard
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO cartoes_credito (id, usuario_id, nome, bandeira, dia_fechamento_fatura, dia_vencimento_fatura, ativo)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + creditCardColumns

		err := tx.QueryRowContext(
			ctx, query,
			uuid.New().String(), params.UsuarioID, params.Nome, params.Bandeira,
			params.DiaFechamentoFatura, params.DiaVencimentoFatura, ativo,
		).Scan(
			&c.ID, &c.UsuarioID, &c.Nome, &c.Bandeira, &c.DiaFechamentoFatura,
			&c.DiaVencimentoFatura, &c.Ativo, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return creditcard.ErrOwnerNotFound
			}
			return fmt.Errorf("failed to create credit card: %w", err)
		}

		return appendToArray(ctx, tx, "cartao_credito_ids", params.UsuarioID, c.ID, creditcard.ErrOwnerNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CreditCardRepository) GetByID(ctx context.Context, id string) (*creditcard.CreditCard, error) {
	query := `SELECT ` + creditCardColumns + ` FROM cartoes_credito WHERE id = $1`

	var c creditcard.CreditCard
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.UsuarioID, &c.Nome, &c.Bandeira, &c.DiaFechamentoFatura,
		&c.DiaVencimentoFatura, &c.Ativo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credit card: %w", err)
	}
	return &c, nil
}

func (r *CreditCardRepository) List(ctx context.Context) ([]*creditcard.CreditCard, error) {
	query := `SELECT ` + creditCardColumns + ` FROM cartoes_credito ORDER BY nome ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	defer rows.Close()

	var cards []*creditcard.CreditCard
	for rows.Next() {
		var c creditcard.CreditCard
		err := rows.Scan(
			&c.ID, &c.UsuarioID, &c.Nome, &c.Bandeira, &c.DiaFechamentoFatura,
			&c.DiaVencimentoFatura, &c.Ativo, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit card: %w", err)
		}
		cards = append(cards, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit cards: %w", err)
	}
	return cards, nil
}

func (r *CreditCardRepository) Update(ctx context.Context, id string, params creditcard.UpdateCreditCardParams) (*creditcard.CreditCard, error) {
	query := `
		UPDATE cartoes_credito
		SET nome = COALESCE($1, nome),
		    bandeira = COALESCE($2, bandeira),
		    dia_fechamento_fatura = COALESCE($3, dia_fechamento_fatura),
		    dia_vencimento_fatura = COALESCE($4, dia_vencimento_fatura),
		    ativo = COALESCE($5, ativo),
		    updated_at = now()
		WHERE id = $6
		RETURNING ` + creditCardColumns

	var c creditcard.CreditCard
	err := r.db.QueryRowContext(
		ctx, query,
		params.Nome, params.Bandeira, params.DiaFechamentoFatura, params.DiaVencimentoFatura,
		params.Ativo, id,
	).Scan(
		&c.ID, &c.UsuarioID, &c.Nome, &c.Bandeira, &c.DiaFechamentoFatura,
		&c.DiaVencimentoFatura, &c.Ativo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, creditcard.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}
	return &c, nil
}

func (r *CreditCardRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var usuarioID string
		err := tx.QueryRowContext(ctx,
			`DELETE FROM cartoes_credito WHERE id = $1 RETURNING usuario_id`, id).Scan(&usuarioID)
		if err == sql.ErrNoRows {
			return creditcard.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to delete credit card: %w", err)
		}

		return removeFromArray(ctx, tx, "cartao_credito_ids", usuarioID, id)
	})
}
