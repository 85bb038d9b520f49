package repository

import (
	"context"

	"wholesale/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSaleNotFound is returned when an id does not resolve to a sale record,
// or when a credit-sale operation targets a sale of the wrong variant.
var ErrSaleNotFound = errors.New("sale record not found")

// SaleRepository handles persistence of the sale union. Cash sales are
// immutable; the only mutation in the whole system is MarkCreditSalePaid.
type SaleRepository interface {
	// Create persists a new sale together with its variant detail. The
	// generated id and creation timestamp are written back onto the entity.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindAll returns sale records, newest first, with the recording user
	// resolved onto each. A non-nil typeFilter restricts the result to one
	// variant.
	FindAll(ctx context.Context, typeFilter *entity.SaleType) ([]*entity.Sale, error)

	// FindByID retrieves a single sale by its id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// MarkCreditSalePaid sets isPaid and stamps the payment date on the
	// credit sale with the given id, returning the refreshed record.
	// Repeated calls refresh the payment date; last write wins.
	MarkCreditSalePaid(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
}
