package category

import (
	"context"
)

type Repository interface {
	// Create inserts the category and appends its id to the owner's
	// kind-specific back-reference array in a single transaction.
	Create(ctx context.Context, kind Kind, params CreateCategoryParams) (*Category, error)
	GetByID(ctx context.Context, kind Kind, id string) (*Category, error)
	List(ctx context.Context, kind Kind) ([]*Category, error)
	Update(ctx context.Context, kind Kind, id string, params UpdateCategoryParams) (*Category, error)
	// Delete removes the category, its subcategories, and the owner's
	// back-reference in a single transaction.
	Delete(ctx context.Context, kind Kind, id string) error
}
