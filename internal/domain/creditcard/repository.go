package creditcard

import (
	"context"
)

type Repository interface {
	// Create inserts the card and appends its id to the owner's
	// back-reference array in a single transaction.
	Create(ctx context.Context, params CreateCreditCardParams) (*CreditCard, error)
	GetByID(ctx context.Context, id string) (*CreditCard, error)
	List(ctx context.Context) ([]*CreditCard, error)
	Update(ctx context.Context, id string, params UpdateCreditCardParams) (*CreditCard, error)
	// Delete removes the card and pulls its id from the owner's
	// back-reference array in a single transaction.
	Delete(ctx context.Context, id string) error
}
