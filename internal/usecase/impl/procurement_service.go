package impl

import (
	"context"
	"log/slog"
	"time"

	"wholesale/internal/domain/entity"
	domainerrors "wholesale/internal/domain/errors"
	"wholesale/internal/domain/repository"
	"wholesale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// procurementService implements the ProcurementUsecase interface.
type procurementService struct {
	procurementRepo repository.ProcurementRepository
	logger          *slog.Logger
}

// ProcurementServiceParams holds dependencies for procurementService, injected by Fx.
type ProcurementServiceParams struct {
	fx.In

	ProcurementRepo repository.ProcurementRepository
	Logger          *slog.Logger
}

// NewProcurementService is the constructor for procurementService.
func NewProcurementService(params ProcurementServiceParams) usecase.ProcurementUsecase {
	return &procurementService{
		procurementRepo: params.ProcurementRepo,
		logger:          params.Logger,
	}
}

// Create records a procurement. A zero Date is defaulted to now; validation
// has already run in the delivery layer, so fields arrive normalized.
func (srv *procurementService) Create(ctx context.Context, input *usecase.CreateProcurementInput) (*usecase.ProcurementOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	procurement := &entity.Procurement{
		ProduceName:  input.ProduceName,
		ProduceType:  input.ProduceType,
		Date:         date,
		Time:         input.Time,
		Tonnage:      input.Tonnage,
		Cost:         input.Cost,
		DealerName:   input.DealerName,
		Branch:       input.Branch,
		Contact:      input.Contact,
		SellingPrice: input.SellingPrice,
		RecordedBy:   input.RecordedBy,
	}

	if err := srv.procurementRepo.Create(ctx, procurement); err != nil {
		srv.logger.Error("Failed to create procurement", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create procurement")
	}

	srv.logger.Info("Procurement recorded",
		slog.Any("id", procurement.ID),
		slog.String("branch", procurement.Branch.String()),
		slog.Int("tonnage", procurement.Tonnage),
	)

	return toProcurementOutput(procurement), nil
}

// List returns all procurement records, newest first.
func (srv *procurementService) List(ctx context.Context) ([]*usecase.ProcurementOutput, error) {
	records, err := srv.procurementRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list procurements")
	}

	outputs := make([]*usecase.ProcurementOutput, 0, len(records))
	for _, record := range records {
		outputs = append(outputs, toProcurementOutput(record))
	}

	return outputs, nil
}

// Get returns a single procurement record by id.
func (srv *procurementService) Get(ctx context.Context, id uuid.UUID) (*usecase.ProcurementOutput, error) {
	record, err := srv.procurementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProcurementNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("procurement not found")
		}

		return nil, errors.Wrap(err, "failed to get procurement")
	}

	return toProcurementOutput(record), nil
}

func toProcurementOutput(record *entity.Procurement) *usecase.ProcurementOutput {
	output := &usecase.ProcurementOutput{
		ID:           record.ID,
		ProduceName:  record.ProduceName,
		ProduceType:  record.ProduceType,
		Date:         record.Date,
		Time:         record.Time,
		Tonnage:      record.Tonnage,
		Cost:         record.Cost,
		DealerName:   record.DealerName,
		Branch:       record.Branch,
		Contact:      record.Contact,
		SellingPrice: record.SellingPrice,
		CreatedAt:    record.CreatedAt,
	}
	if record.Recorder != nil {
		output.RecordedBy = &usecase.RecordedByOutput{
			Name:  record.Recorder.Name,
			Email: record.Recorder.Email,
		}
	}

	return output
}
