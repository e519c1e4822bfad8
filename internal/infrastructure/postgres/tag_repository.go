package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"laurus/internal/domain/tag"
)

const tagColumns = `id, usuario_id, nome, ativo, created_at, updated_at`

type TagRepository struct {
	db *DB
}

func NewTagRepository(db *DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, params tag.CreateTagParams) (*tag.Tag, error) {
	ativo := true
	if params.Ativo != nil {
		ativo = *params.Ativo
	}

	var t tag.Tag
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO tags (id, usuario_id, nome, ativo)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + tagColumns

		err := tx.QueryRowContext(ctx, query,
			uuid.New().String(), params.UsuarioID, params.Nome, ativo,
		).Scan(&t.ID, &t.UsuarioID, &t.Nome, &t.Ativo, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return tag.ErrNameTaken
			}
			if isForeignKeyViolation(err) {
				return tag.ErrOwnerNotFound
			}
			return fmt.Errorf("failed to create tag: %w", err)
		}

		return appendToArray(ctx, tx, "tag_ids", params.UsuarioID, t.ID, tag.ErrOwnerNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagRepository) GetByID(ctx context.Context, id string) (*tag.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = $1`

	var t tag.Tag
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.UsuarioID, &t.Nome, &t.Ativo, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &t, nil
}

func (r *TagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags ORDER BY nome ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []*tag.Tag
	for rows.Next() {
		var t tag.Tag
		err := rows.Scan(&t.ID, &t.UsuarioID, &t.Nome, &t.Ativo, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) Update(ctx context.Context, id string, params tag.UpdateTagParams) (*tag.Tag, error) {
	query := `
		UPDATE tags
		SET nome = COALESCE($1, nome),
		    ativo = COALESCE($2, ativo),
		    updated_at = now()
		WHERE id = $3
		RETURNING ` + tagColumns

	var t tag.Tag
	err := r.db.QueryRowContext(ctx, query, params.Nome, params.Ativo, id).Scan(
		&t.ID, &t.UsuarioID, &t.Nome, &t.Ativo, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, tag.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, tag.ErrNameTaken
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return &t, nil
}

func (r *TagRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var usuarioID string
		err := tx.QueryRowContext(ctx,
			`DELETE FROM tags WHERE id = $1 RETURNING usuario_id`, id).Scan(&usuarioID)
		if err == sql.ErrNoRows {
			return tag.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to delete tag: %w", err)
		}

		return removeFromArray(ctx, tx, "tag_ids", usuarioID, id)
	})
}
