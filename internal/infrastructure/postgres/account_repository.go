package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"laurus/internal/domain/account"
)

const accountColumns = `id, usuario_id, nome, banco, tipo_conta, observacao, ativo, created_at, updated_at`

type AccountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, params account.CreateAccountParams) (*account.Account, error) {
	ativo := true
	if params.Ativo != nil {
		ativo = *params.Ativo
	}

	var a account.Account
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO contas (id, usuario_id, nome, banco, tipo_conta, observacao, ativo)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + accountColumns

		err := tx.QueryRowContext(
			ctx, query,
			uuid.New().String(), params.UsuarioID, params.Nome, params.Banco,
			params.TipoConta, params.Observacao, ativo,
		).Scan(
			&a.ID, &a.UsuarioID, &a.Nome, &a.Banco, &a.TipoConta, &a.Observacao,
			&a.Ativo, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return account.ErrOwnerNotFound
			}
			return fmt.Errorf("failed to create account: %w", err)
		}

		return appendToArray(ctx, tx, "conta_ids", params.UsuarioID, a.ID, account.ErrOwnerNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM contas WHERE id = $1`

	var a account.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.UsuarioID, &a.Nome, &a.Banco, &a.TipoConta, &a.Observacao,
		&a.Ativo, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM contas ORDER BY nome ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account
	for rows.Next() {
		var a account.Account
		err := rows.Scan(
			&a.ID, &a.UsuarioID, &a.Nome, &a.Banco, &a.TipoConta, &a.Observacao,
			&a.Ativo, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) Update(ctx context.Context, id string, params account.UpdateAccountParams) (*account.Account, error) {
	query := `
		UPDATE contas
		SET nome = COALESCE($1, nome),
		    banco = COALESCE($2, banco),
		    tipo_conta = COALESCE($3, tipo_conta),
		    observacao = COALESCE($4, observacao),
		    ativo = COALESCE($5, ativo),
		    updated_at = now()
		WHERE id = $6
		RETURNING ` + accountColumns

	var a account.Account
	err := r.db.QueryRowContext(
		ctx, query,
		params.Nome, params.Banco, params.TipoConta, params.Observacao, params.Ativo, id,
	).Scan(
		&a.ID, &a.UsuarioID, &a.Nome, &a.Banco, &a.TipoConta, &a.Observacao,
		&a.Ativo, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return &a, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var usuarioID string
		err := tx.QueryRowContext(ctx,
			`DELETE FROM contas WHERE id = $1 RETURNING usuario_id`, id).Scan(&usuarioID)
		if err == sql.ErrNoRows {
			return account.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		return removeFromArray(ctx, tx, "conta_ids", usuarioID, id)
	})
}
