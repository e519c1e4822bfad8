package transaction

import (
	"context"

	"laurus/internal/domain/category"
)

type Repository interface {
	// Create verifies the referenced source and category exist before
	// inserting. The category's kind must match the transaction's kind.
	Create(ctx context.Context, kind category.Kind, source Source, params CreateTransactionParams) (*Transaction, error)
	GetByID(ctx context.Context, kind category.Kind, source Source, id string) (*Transaction, error)
	List(ctx context.Context, kind category.Kind, source Source) ([]*Transaction, error)
	Update(ctx context.Context, kind category.Kind, source Source, id string, params UpdateTransactionParams) (*Transaction, error)
	Delete(ctx context.Context, kind category.Kind, source Source, id string) error
}
