package mockrepo

import (
	"context"

	"wholesale/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSaleRepository mocks repository.SaleRepository.
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	args := m.Called(ctx, sale)

	return args.Error(0)
}

func (m *MockSaleRepository) FindAll(ctx context.Context, typeFilter *entity.SaleType) ([]*entity.Sale, error) {
	args := m.Called(ctx, typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Sale), args.Error(1)
}

func (m *MockSaleRepository) MarkCreditSalePaid(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Sale), args.Error(1)
}
