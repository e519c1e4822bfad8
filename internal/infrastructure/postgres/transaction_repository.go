package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"laurus/internal/domain/category"
	"laurus/internal/domain/transaction"
)

const transactionColumns = `id, tipo, origem, conta_id, cartao_credito_id, valor, data_transacao,
	categoria_id, subcategoria_id, tag_ids, parcelamento, numero_parcela_atual, total_parcelas,
	observacao, ativo, created_at, updated_at`

// sourceTableFor maps a transaction source to the table its funding
// instrument lives in.
func sourceTableFor(source transaction.Source) string {
	if source == transaction.SourceCartaoCredito {
		return "cartoes_credito"
	}
	return "contas"
}

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, kind category.Kind, source transaction.Source, params transaction.CreateTransactionParams) (*transaction.Transaction, error) {
	ativo := true
	if params.Ativo != nil {
		ativo = *params.Ativo
	}

	var t transaction.Transaction
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := checkSourceExists(ctx, tx, source, params.SourceID); err != nil {
			return err
		}
		if err := checkCategoryExists(ctx, tx, kind, params.CategoriaID); err != nil {
			return err
		}
		if params.SubcategoriaID != nil {
			if err := checkSubcategoryExists(ctx, tx, params.CategoriaID, *params.SubcategoriaID); err != nil {
				return err
			}
		}

		var contaID, cartaoID *string
		if source == transaction.SourceCartaoCredito {
			cartaoID = &params.SourceID
		} else {
			contaID = &params.SourceID
		}

		query := `
			INSERT INTO transacoes (id, tipo, origem, conta_id, cartao_credito_id, valor,
				data_transacao, categoria_id, subcategoria_id, tag_ids, parcelamento,
				numero_parcela_atual, total_parcelas, observacao, ativo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING ` + transactionColumns

		row := tx.QueryRowContext(ctx, query,
			uuid.New().String(), string(kind), string(source), contaID, cartaoID,
			*params.Valor, params.DataTransacao, params.CategoriaID, params.SubcategoriaID,
			pq.Array(tagsOrEmpty(params.Tags)), params.Parcelamento,
			params.NumeroParcelaAtual, params.TotalParcelas, params.Observacao, ativo)
		if err := scanTransaction(row, &t); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, kind category.Kind, source transaction.Source, id string) (*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transacoes WHERE id = $1 AND tipo = $2 AND origem = $3`

	var t transaction.Transaction
	err := scanTransaction(r.db.QueryRowContext(ctx, query, id, string(kind), string(source)), &t)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &t, nil
}

func (r *TransactionRepository) List(ctx context.Context, kind category.Kind, source transaction.Source) ([]*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transacoes
		WHERE tipo = $1 AND origem = $2
		ORDER BY data_transacao DESC`

	rows, err := r.db.QueryContext(ctx, query, string(kind), string(source))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.Transaction
	for rows.Next() {
		var t transaction.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) Update(ctx context.Context, kind category.Kind, source transaction.Source, id string, params transaction.UpdateTransactionParams) (*transaction.Transaction, error) {
	var t transaction.Transaction
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if params.CategoriaID != nil {
			if err := checkCategoryExists(ctx, tx, kind, *params.CategoriaID); err != nil {
				return err
			}
		}
		if params.SubcategoriaID != nil {
			// The subcategory must belong to the category the row
			// ends up with, whether that category changes or not.
			categoriaID := params.CategoriaID
			if categoriaID == nil {
				var existing string
				err := tx.QueryRowContext(ctx,
					`SELECT categoria_id FROM transacoes WHERE id = $1 AND tipo = $2 AND origem = $3`,
					id, string(kind), string(source)).Scan(&existing)
				if err == sql.ErrNoRows {
					return transaction.ErrNotFound
				}
				if err != nil {
					return fmt.Errorf("failed to load transaction category: %w", err)
				}
				categoriaID = &existing
			}
			if err := checkSubcategoryExists(ctx, tx, *categoriaID, *params.SubcategoriaID); err != nil {
				return err
			}
		}

		var tags any
		if params.Tags != nil {
			tags = pq.Array(params.Tags)
		}

		query := `
			UPDATE transacoes
			SET valor = COALESCE($1, valor),
			    data_transacao = COALESCE($2, data_transacao),
			    categoria_id = COALESCE($3, categoria_id),
			    subcategoria_id = COALESCE($4, subcategoria_id),
			    tag_ids = COALESCE($5, tag_ids),
			    parcelamento = COALESCE($6, parcelamento),
			    numero_parcela_atual = CASE WHEN $7 THEN NULL ELSE COALESCE($8, numero_parcela_atual) END,
			    total_parcelas = CASE WHEN $7 THEN NULL ELSE COALESCE($9, total_parcelas) END,
			    observacao = COALESCE($10, observacao),
			    ativo = COALESCE($11, ativo),
			    updated_at = now()
			WHERE id = $12 AND tipo = $13 AND origem = $14
			RETURNING ` + transactionColumns

		row := tx.QueryRowContext(ctx, query,
			params.Valor, params.DataTransacao, params.CategoriaID, params.SubcategoriaID,
			tags, params.Parcelamento, clearsInstallments(params.Parcelamento),
			params.NumeroParcelaAtual, params.TotalParcelas,
			params.Observacao, params.Ativo, id, string(kind), string(source))
		if err := scanTransaction(row, &t); err != nil {
			if err == sql.ErrNoRows {
				return transaction.ErrNotFound
			}
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, kind category.Kind, source transaction.Source, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM transacoes WHERE id = $1 AND tipo = $2 AND origem = $3`,
		id, string(kind), string(source))
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if affected == 0 {
		return transaction.ErrNotFound
	}
	return nil
}

func checkSourceExists(ctx context.Context, tx *sql.Tx, source transaction.Source, id string) error {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, sourceTableFor(source))

	var exists bool
	if err := tx.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check transaction source: %w", err)
	}
	if !exists {
		return transaction.ErrSourceNotFound
	}
	return nil
}

func checkCategoryExists(ctx context.Context, tx *sql.Tx, kind category.Kind, id string) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categorias WHERE id = $1 AND tipo = $2)`,
		id, string(kind)).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check transaction category: %w", err)
	}
	if !exists {
		return transaction.ErrCategoryNotFound
	}
	return nil
}

func checkSubcategoryExists(ctx context.Context, tx *sql.Tx, categoriaID, id string) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM subcategorias WHERE id = $1 AND categoria_id = $2)`,
		id, categoriaID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check transaction subcategory: %w", err)
	}
	if !exists {
		return transaction.ErrSubcategoryNotFound
	}
	return nil
}

// clearsInstallments reports whether an update turns parcelamento off.
// COALESCE can never null a column, so the installment counters are
// written as NULL explicitly; the schema requires them null whenever
// parcelamento is false.
func clearsInstallments(parcelamento *bool) bool {
	return parcelamento != nil && !*parcelamento
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func scanTransaction(s scanner, t *transaction.Transaction) error {
	var tipo, origem string
	var tags pq.StringArray

	err := s.Scan(
		&t.ID, &tipo, &origem, &t.ContaID, &t.CartaoCreditoID, &t.Valor, &t.DataTransacao,
		&t.CategoriaID, &t.SubcategoriaID, &tags, &t.Parcelamento, &t.NumeroParcelaAtual,
		&t.TotalParcelas, &t.Observacao, &t.Ativo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return err
	}

	t.Kind = category.Kind(tipo)
	t.Source = transaction.Source(origem)
	t.Tags = tags
	return nil
}
