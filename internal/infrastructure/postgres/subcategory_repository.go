package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"laurus/internal/domain/category"
	"laurus/internal/domain/subcategory"
)

const subcategoryColumns = `id, usuario_id, categoria_id, tipo, nome, ativo, created_at, updated_at`

type SubcategoryRepository struct {
	db *DB
}

func NewSubcategoryRepository(db *DB) *SubcategoryRepository {
	return &SubcategoryRepository{db: db}
}

func (r *SubcategoryRepository) Create(ctx context.Context, kind category.Kind, params subcategory.CreateSubcategoryParams) (*subcategory.Subcategory, error) {
	ativo := true
	if params.Ativo != nil {
		ativo = *params.Ativo
	}

	var s subcategory.Subcategory
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		// The parent must exist and carry the same kind before the
		// insert goes through.
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM categorias WHERE id = $1 AND tipo = $2)`,
			params.CategoriaID, string(kind)).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check parent category: %w", err)
		}
		if !exists {
			return subcategory.ErrParentNotFound
		}

		query := `
			INSERT INTO subcategorias (id, usuario_id, categoria_id, tipo, nome, ativo)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING ` + subcategoryColumns

		row := tx.QueryRowContext(ctx, query,
			uuid.New().String(), params.UsuarioID, params.CategoriaID, string(kind), params.Nome, ativo)
		if err := scanSubcategory(row, &s); err != nil {
			if isUniqueViolation(err) {
				return subcategory.ErrNameTaken
			}
			if isForeignKeyViolation(err) {
				return subcategory.ErrParentNotFound
			}
			return fmt.Errorf("failed to create subcategory: %w", err)
		}

		return linkSubcategory(ctx, tx, params.CategoriaID, s.ID)
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubcategoryRepository) GetByID(ctx context.Context, kind category.Kind, id string) (*subcategory.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategorias WHERE id = $1 AND tipo = $2`

	var s subcategory.Subcategory
	err := scanSubcategory(r.db.QueryRowContext(ctx, query, id, string(kind)), &s)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subcategory: %w", err)
	}
	return &s, nil
}

func (r *SubcategoryRepository) List(ctx context.Context, kind category.Kind) ([]*subcategory.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategorias WHERE tipo = $1 ORDER BY nome ASC`

	rows, err := r.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer rows.Close()

	var subcategories []*subcategory.Subcategory
	for rows.Next() {
		var s subcategory.Subcategory
		if err := scanSubcategory(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		subcategories = append(subcategories, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subcategories: %w", err)
	}
	return subcategories, nil
}

func (r *SubcategoryRepository) Update(ctx context.Context, kind category.Kind, id string, params subcategory.UpdateSubcategoryParams) (*subcategory.Subcategory, error) {
	query := `
		UPDATE subcategorias
		SET nome = COALESCE($1, nome),
		    ativo = COALESCE($2, ativo),
		    updated_at = now()
		WHERE id = $3 AND tipo = $4
		RETURNING ` + subcategoryColumns

	var s subcategory.Subcategory
	err := scanSubcategory(r.db.QueryRowContext(ctx, query, params.Nome, params.Ativo, id, string(kind)), &s)
	if err == sql.ErrNoRows {
		return nil, subcategory.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, subcategory.ErrNameTaken
		}
		return nil, fmt.Errorf("failed to update subcategory: %w", err)
	}
	return &s, nil
}

func (r *SubcategoryRepository) Delete(ctx context.Context, kind category.Kind, id string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var categoriaID string
		err := tx.QueryRowContext(ctx,
			`DELETE FROM subcategorias WHERE id = $1 AND tipo = $2 RETURNING categoria_id`,
			id, string(kind)).Scan(&categoriaID)
		if err == sql.ErrNoRows {
			return subcategory.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to delete subcategory: %w", err)
		}

		return unlinkSubcategory(ctx, tx, categoriaID, id)
	})
}

func linkSubcategory(ctx context.Context, tx *sql.Tx, categoriaID, subcategoriaID string) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE categorias SET subcategoria_ids = array_append(subcategoria_ids, $2::uuid), updated_at = now() WHERE id = $1`,
		categoriaID, subcategoriaID)
	if err != nil {
		return fmt.Errorf("failed to link subcategoria: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to link subcategoria: %w", err)
	}
	if affected == 0 {
		return subcategory.ErrParentNotFound
	}
	return nil
}

// unlinkSubcategory tolerates a missing parent: category deletion
// already swept its subcategories away.
func unlinkSubcategory(ctx context.Context, tx *sql.Tx, categoriaID, subcategoriaID string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE categorias SET subcategoria_ids = array_remove(subcategoria_ids, $2::uuid), updated_at = now() WHERE id = $1`,
		categoriaID, subcategoriaID)
	if err != nil {
		return fmt.Errorf("failed to unlink subcategoria: %w", err)
	}
	return nil
}

func scanSubcategory(sc scanner, s *subcategory.Subcategory) error {
	var tipo string
	err := sc.Scan(&s.ID, &s.UsuarioID, &s.CategoriaID, &tipo, &s.Nome,
		&s.Ativo, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}
	s.Kind = category.Kind(tipo)
	return nil
}
