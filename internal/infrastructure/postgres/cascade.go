package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == foreignKeyViolation
}

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolation
}

// appendToArray pushes childID onto the named back-reference array of a
// usuarios row. Returns missingErr when the owner does not exist, which
// rolls back the surrounding transaction.
func appendToArray(ctx context.Context, tx *sql.Tx, column, ownerID, childID string, missingErr error) error {
	query := fmt.Sprintf(
		`UPDATE usuarios SET %s = array_append(%s, $2::uuid), updated_at = now() WHERE id = $1`,
		column, column)

	result, err := tx.ExecContext(ctx, query, ownerID, childID)
	if err != nil {
		return fmt.Errorf("failed to link %s: %w", column, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to link %s: %w", column, err)
	}
	if affected == 0 {
		return missingErr
	}
	return nil
}

// removeFromArray pulls childID from the named back-reference array of a
// usuarios row. A missing owner is a no-op: the cascade FK already took
// the child with it.
func removeFromArray(ctx context.Context, tx *sql.Tx, column, ownerID, childID string) error {
	query := fmt.Sprintf(
		`UPDATE usuarios SET %s = array_remove(%s, $2::uuid), updated_at = now() WHERE id = $1`,
		column, column)

	if _, err := tx.ExecContext(ctx, query, ownerID, childID); err != nil {
		return fmt.Errorf("failed to unlink %s: %w", column, err)
	}
	return nil
}
