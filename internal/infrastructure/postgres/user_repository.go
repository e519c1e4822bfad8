package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"laurus/internal/domain/user"
)

const uniqueViolation = "23505"

const userColumns = `id, nome, sobrenome, email, senha, telefone, data_nascimento,
	idioma, moeda, formato_data, conta_ids, cartao_credito_ids,
	despesa_categoria_ids, receita_categoria_ids, tag_ids,
	token_ativo, ultimo_acesso, ativo, created_at, updated_at`

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, params user.CreateUserParams) (*user.User, error) {
	query := `
		INSERT INTO usuarios (id, nome, sobrenome, email, senha, telefone, data_nascimento, idioma, moeda, formato_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(
		ctx, query,
		uuid.New().String(), params.Nome, params.Sobrenome, params.Email, params.SenhaHash,
		params.Telefone, params.DataNascimento, params.Idioma, params.Moeda, params.FormatoData,
	)

	u, err := scanUser(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE lower(email) = lower($1)`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios ORDER BY nome ASC, sobrenome ASC`
	return r.queryUsers(ctx, query)
}

func (r *UserRepository) SearchByName(ctx context.Context, term string) ([]*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios
		WHERE nome ILIKE '%' || $1 || '%' OR sobrenome ILIKE '%' || $1 || '%'
		ORDER BY nome ASC`
	return r.queryUsers(ctx, query, term)
}

func (r *UserRepository) SearchByEmail(ctx context.Context, term string) ([]*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios
		WHERE email ILIKE '%' || $1 || '%'
		ORDER BY email ASC`
	return r.queryUsers(ctx, query, term)
}

func (r *UserRepository) Update(ctx context.Context, id string, params user.UpdateUserParams) (*user.User, error) {
	query := `
		UPDATE usuarios
		SET nome = COALESCE($1, nome),
		    sobrenome = COALESCE($2, sobrenome),
		    email = COALESCE($3, email),
		    senha = COALESCE($4, senha),
		    telefone = COALESCE($5, telefone),
		    data_nascimento = COALESCE($6, data_nascimento),
		    idioma = COALESCE($7, idioma),
		    moeda = COALESCE($8, moeda),
		    formato_data = COALESCE($9, formato_data),
		    ativo = COALESCE($10, ativo),
		    updated_at = now()
		WHERE id = $11
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(
		ctx, query,
		params.Nome, params.Sobrenome, params.Email, params.SenhaHash, params.Telefone,
		params.DataNascimento, params.Idioma, params.Moeda, params.FormatoData, params.Ativo, id,
	)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, user.ErrNotFound
	}
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE usuarios SET token_ativo = $2, updated_at = now() WHERE id = $1`, id, token)
	if err != nil {
		return fmt.Errorf("failed to set refresh token: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set refresh token: %w", err)
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

// RotateRefreshToken is a compare-and-swap: only the caller holding the
// currently persisted token wins, so a stolen or stale refresh token
// cannot mint new sessions after a rotation.
func (r *UserRepository) RotateRefreshToken(ctx context.Context, id, oldToken, newToken string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE usuarios SET token_ativo = $3, updated_at = now() WHERE id = $1 AND token_ativo = $2`,
		id, oldToken, newToken)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ClearSession(ctx context.Context, id string) (*user.User, error) {
	query := `
		UPDATE usuarios
		SET token_ativo = NULL, ultimo_acesso = now(), updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to clear session: %w", err)
	}
	return u, nil
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*user.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*user.User, error) {
	var u user.User
	var contas, cartoes, despesaCategorias, receitaCategorias, tags pq.StringArray
	var dataNascimento time.Time

	err := s.Scan(
		&u.ID, &u.Nome, &u.Sobrenome, &u.Email, &u.SenhaHash, &u.Telefone, &dataNascimento,
		&u.Idioma, &u.Moeda, &u.FormatoData, &contas, &cartoes,
		&despesaCategorias, &receitaCategorias, &tags,
		&u.TokenAtivo, &u.UltimoAcesso, &u.Ativo, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.DataNascimento = dataNascimento
	u.Contas = contas
	u.CartoesDeCredito = cartoes
	u.DespesaCategorias = despesaCategorias
	u.ReceitaCategorias = receitaCategorias
	u.Tags = tags
	return &u, nil
}
