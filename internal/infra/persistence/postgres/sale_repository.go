package postgres

import (
	"context"
	"time"

	"wholesale/internal/domain/entity"
	domainerrors "wholesale/internal/domain/errors"
	"wholesale/internal/domain/repository"
	"wholesale/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the domain.SaleRepository interface using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// Create persists a sale together with its variant detail row. GORM's
// association handling inserts the sales row and the detail row in one
// transaction.
func (repo *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid recording user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.ID = saleM.ID
	sale.CreatedAt = saleM.CreatedAt

	return nil
}

// FindAll returns sale records newest first, joined with their variant detail
// and recording user. A non-nil typeFilter restricts the result to one variant.
func (repo *saleRepository) FindAll(ctx context.Context, typeFilter *entity.SaleType) ([]*entity.Sale, error) {
	query := repo.db.WithContext(ctx).
		Preload("Recorder").
		Preload("CashSale").
		Preload("CreditSale").
		Order("created_at DESC")
	if typeFilter != nil {
		query = query.Where("type = ?", typeFilter.String())
	}

	var saleMs []*model.SaleModel
	if err := query.Find(&saleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(saleMs))
	for _, saleM := range saleMs {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, nil
}

// FindByID retrieves a single sale by its id.
func (repo *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel
	err := repo.db.WithContext(ctx).
		Preload("Recorder").
		Preload("CashSale").
		Preload("CreditSale").
		Where("id = ?", id).
		First(&saleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by id")
	}

	return toSaleDomain(&saleM), nil
}

// MarkCreditSalePaid updates the paid flag and payment date on the credit
// detail row. Repeated calls are allowed and last-write-wins: each call
// refreshes the payment date.
func (repo *saleRepository) MarkCreditSalePaid(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CreditSaleModel{}).
		Where("sale_id = ?", id).
		Updates(map[string]any{
			"is_paid":      true,
			"payment_date": time.Now(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark credit sale paid")
	}
	if result.RowsAffected == 0 {
		// No credit detail row: the id is unknown or belongs to a cash sale.
		return nil, repository.ErrSaleNotFound
	}

	return repo.FindByID(ctx, id)
}
