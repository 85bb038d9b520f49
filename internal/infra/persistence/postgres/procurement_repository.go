package postgres

import (
	"context"

	"wholesale/internal/domain/entity"
	domainerrors "wholesale/internal/domain/errors"
	"wholesale/internal/domain/repository"
	"wholesale/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// procurementRepository implements the domain.ProcurementRepository interface using GORM.
type procurementRepository struct {
	db *gorm.DB
}

// NewProcurementRepository is the constructor for procurementRepository.
func NewProcurementRepository(db *gorm.DB) repository.ProcurementRepository {
	return &procurementRepository{db: db}
}

// Create persists a new procurement record.
func (repo *procurementRepository) Create(ctx context.Context, procurement *entity.Procurement) error {
	procurementM := fromProcurementDomain(procurement)

	if err := repo.db.WithContext(ctx).Create(procurementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid recording user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create procurement")
	}

	procurement.ID = procurementM.ID
	procurement.CreatedAt = procurementM.CreatedAt

	return nil
}

// FindAll returns every procurement record, newest first, with the recording
// user joined in for the read-time projection.
func (repo *procurementRepository) FindAll(ctx context.Context) ([]*entity.Procurement, error) {
	var procurementMs []*model.ProcurementModel
	err := repo.db.WithContext(ctx).
		Preload("Recorder").
		Order("created_at DESC").
		Find(&procurementMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list procurements")
	}

	procurements := make([]*entity.Procurement, 0, len(procurementMs))
	for _, procurementM := range procurementMs {
		procurements = append(procurements, toProcurementDomain(procurementM))
	}

	return procurements, nil
}

// FindByID retrieves a single procurement record by its id.
func (repo *procurementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Procurement, error) {
	var procurementM model.ProcurementModel
	err := repo.db.WithContext(ctx).
		Preload("Recorder").
		Where("id = ?", id).
		First(&procurementM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProcurementNotFound
		}

		return nil, errors.Wrap(err, "failed to find procurement by id")
	}

	return toProcurementDomain(&procurementM), nil
}
