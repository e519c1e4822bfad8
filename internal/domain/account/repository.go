package account

import (
	"context"
)

type Repository interface {
	// Create inserts the account and appends its id to the owner's
	// back-reference array in a single transaction.
	Create(ctx context.Context, params CreateAccountParams) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, id string, params UpdateAccountParams) (*Account, error)
	// Delete removes the account and pulls its id from the owner's
	// back-reference array in a single transaction.
	Delete(ctx context.Context, id string) error
}
