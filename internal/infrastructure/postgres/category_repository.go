package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"laurus/internal/domain/category"
)

const categoryColumns = `id, usuario_id, tipo, nome, subcategoria_ids, ativo, created_at, updated_at`

// arrayColumnFor maps a category kind to the back-reference array it
// lives in on the usuarios row.
func arrayColumnFor(kind category.Kind) string {
	if kind == category.KindReceita {
		return "receita_categoria_ids"
	}
	return "despesa_categoria_ids"
}

type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, kind category.Kind, params category.CreateCategoryParams) (*category.Category, error) {
	ativo := true
	if params.Ativo != nil {
		ativo = *params.Ativo
	}

	var c category.Category
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO categorias (id, usuario_id, tipo, nome, ativo)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING ` + categoryColumns

		row := tx.QueryRowContext(ctx, query,
			uuid.New().String(), params.UsuarioID, string(kind), params.Nome, ativo)
		if err := scanCategory(row, &c); err != nil {
			if isUniqueViolation(err) {
				return category.ErrNameTaken
			}
			if isForeignKeyViolation(err) {
				return category.ErrOwnerNotFound
			}
			return fmt.Errorf("failed to create category: %w", err)
		}

		return appendToArray(ctx, tx, arrayColumnFor(kind), params.UsuarioID, c.ID, category.ErrOwnerNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, kind category.Kind, id string) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categorias WHERE id = $1 AND tipo = $2`

	var c category.Category
	err := scanCategory(r.db.QueryRowContext(ctx, query, id, string(kind)), &c)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context, kind category.Kind) ([]*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categorias WHERE tipo = $1 ORDER BY nome ASC`

	rows, err := r.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		var c category.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, kind category.Kind, id string, params category.UpdateCategoryParams) (*category.Category, error) {
	query := `
		UPDATE categorias
		SET nome = COALESCE($1, nome),
		    ativo = COALESCE($2, ativo),
		    updated_at = now()
		WHERE id = $3 AND tipo = $4
		RETURNING ` + categoryColumns

	var c category.Category
	err := scanCategory(r.db.QueryRowContext(ctx, query, params.Nome, params.Ativo, id, string(kind)), &c)
	if err == sql.ErrNoRows {
		return nil, category.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, category.ErrNameTaken
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &c, nil
}

// Delete removes the category, its subcategories, and the owner's
// back-reference atomically.
func (r *CategoryRepository) Delete(ctx context.Context, kind category.Kind, id string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM subcategorias WHERE categoria_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete subcategories: %w", err)
		}

		var usuarioID string
		err := tx.QueryRowContext(ctx,
			`DELETE FROM categorias WHERE id = $1 AND tipo = $2 RETURNING usuario_id`,
			id, string(kind)).Scan(&usuarioID)
		if err == sql.ErrNoRows {
			return category.ErrNotFound
		}
		if err != nil {
			// transacoes.categoria_id has no delete action on purpose:
			// a referenced category must be detached first.
			if isForeignKeyViolation(err) {
				return category.ErrInUse
			}
			return fmt.Errorf("failed to delete category: %w", err)
		}

		return removeFromArray(ctx, tx, arrayColumnFor(kind), usuarioID, id)
	})
}

func scanCategory(s scanner, c *category.Category) error {
	var subcategorias pq.StringArray
	var tipo string

	err := s.Scan(&c.ID, &c.UsuarioID, &tipo, &c.Nome, &subcategorias,
		&c.Ativo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}

	c.Kind = category.Kind(tipo)
	c.Subcategorias = subcategorias
	return nil
}
