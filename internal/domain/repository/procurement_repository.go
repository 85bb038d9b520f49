package repository

import (
	"context"

	"wholesale/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProcurementNotFound is returned when an id does not resolve to a
// procurement record.
var ErrProcurementNotFound = errors.New("procurement record not found")

// ProcurementRepository handles persistence of procurement records.
// Records are append-only; there is no update or delete.
type ProcurementRepository interface {
	// Create persists a new procurement record. The generated id and
	// creation timestamp are written back onto the entity.
	Create(ctx context.Context, procurement *entity.Procurement) error

	// FindAll returns every procurement record, newest first, with the
	// recording user resolved onto each record.
	FindAll(ctx context.Context) ([]*entity.Procurement, error)

	// FindByID retrieves a single procurement record by its id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Procurement, error)
}
