package tag

import (
	"context"
)

type Repository interface {
	// Create inserts the tag and appends its id to the owner's
	// back-reference array in a single transaction.
	Create(ctx context.Context, params CreateTagParams) (*Tag, error)
	GetByID(ctx context.Context, id string) (*Tag, error)
	List(ctx context.Context) ([]*Tag, error)
	Update(ctx context.Context, id string, params UpdateTagParams) (*Tag, error)
	// Delete removes the tag and pulls its id from the owner's
	// back-reference array in a single transaction.
	Delete(ctx context.Context, id string) error
}
