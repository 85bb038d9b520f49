package mockrepo

import (
	"context"

	"wholesale/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProcurementRepository mocks repository.ProcurementRepository.
type MockProcurementRepository struct {
	mock.Mock
}

func (m *MockProcurementRepository) Create(ctx context.Context, procurement *entity.Procurement) error {
	args := m.Called(ctx, procurement)

	return args.Error(0)
}

func (m *MockProcurementRepository) FindAll(ctx context.Context) ([]*entity.Procurement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Procurement), args.Error(1)
}

func (m *MockProcurementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Procurement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Procurement), args.Error(1)
}
