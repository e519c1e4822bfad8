package subcategory

import (
	"context"

	"laurus/internal/domain/category"
)

type Repository interface {
	// Create inserts the subcategory and appends its id to the parent
	// category's back-reference array in a single transaction.
	Create(ctx context.Context, kind category.Kind, params CreateSubcategoryParams) (*Subcategory, error)
	GetByID(ctx context.Context, kind category.Kind, id string) (*Subcategory, error)
	List(ctx context.Context, kind category.Kind) ([]*Subcategory, error)
	Update(ctx context.Context, kind category.Kind, id string, params UpdateSubcategoryParams) (*Subcategory, error)
	// Delete removes the subcategory and pulls its id from the parent
	// category's back-reference array in a single transaction.
	Delete(ctx context.Context, kind category.Kind, id string) error
}
