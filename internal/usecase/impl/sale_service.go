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

// saleService implements the SaleUsecase interface.
type saleService struct {
	saleRepo repository.SaleRepository
	logger   *slog.Logger
}

// SaleServiceParams holds dependencies for saleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	SaleRepo repository.SaleRepository
	Logger   *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	return &saleService{
		saleRepo: params.SaleRepo,
		logger:   params.Logger,
	}
}

// RecordCashSale records an immediate sale. A zero Date is defaulted to now.
func (srv *saleService) RecordCashSale(ctx context.Context, input *usecase.RecordCashSaleInput) (*usecase.SaleOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	sale := &entity.Sale{
		Type:       entity.SaleTypeCash,
		RecordedBy: input.RecordedBy,
		Cash: &entity.CashSale{
			ProduceName:    input.ProduceName,
			Tonnage:        input.Tonnage,
			AmountPaid:     input.AmountPaid,
			BuyerName:      input.BuyerName,
			SalesAgentName: input.SalesAgentName,
			Date:           date,
			Time:           input.Time,
		},
	}

	if err := srv.saleRepo.Create(ctx, sale); err != nil {
		srv.logger.Error("Failed to record cash sale", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record cash sale")
	}

	srv.logger.Info("Cash sale recorded", slog.Any("id", sale.ID), slog.Int("tonnage", sale.Cash.Tonnage))

	return toSaleOutput(sale), nil
}

// RecordCreditSale records a deferred-payment sale. It starts unpaid with no
// payment date; a zero DispatchDate is defaulted to now.
func (srv *saleService) RecordCreditSale(ctx context.Context, input *usecase.RecordCreditSaleInput) (*usecase.SaleOutput, error) {
	dispatchDate := input.DispatchDate
	if dispatchDate.IsZero() {
		dispatchDate = time.Now()
	}

	sale := &entity.Sale{
		Type:       entity.SaleTypeCredit,
		RecordedBy: input.RecordedBy,
		Credit: &entity.CreditSale{
			BuyerName:      input.BuyerName,
			NationalID:     input.NationalID,
			Location:       input.Location,
			Contacts:       input.Contacts,
			AmountDue:      input.AmountDue,
			SalesAgentName: input.SalesAgentName,
			DueDate:        input.DueDate,
			ProduceName:    input.ProduceName,
			ProduceType:    input.ProduceType,
			Tonnage:        input.Tonnage,
			DispatchDate:   dispatchDate,
			IsPaid:         false,
			PaymentDate:    nil,
		},
	}

	if err := srv.saleRepo.Create(ctx, sale); err != nil {
		srv.logger.Error("Failed to record credit sale", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record credit sale")
	}

	srv.logger.Info("Credit sale recorded", slog.Any("id", sale.ID), slog.String("buyer", sale.Credit.BuyerName))

	return toSaleOutput(sale), nil
}

// List returns sale records, newest first, optionally restricted to one variant.
func (srv *saleService) List(ctx context.Context, typeFilter *entity.SaleType) ([]*usecase.SaleOutput, error) {
	sales, err := srv.saleRepo.FindAll(ctx, typeFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	outputs := make([]*usecase.SaleOutput, 0, len(sales))
	for _, sale := range sales {
		outputs = append(outputs, toSaleOutput(sale))
	}

	return outputs, nil
}

// Get returns a single sale by id.
func (srv *saleService) Get(ctx context.Context, id uuid.UUID) (*usecase.SaleOutput, error) {
	sale, err := srv.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("sale not found")
		}

		return nil, errors.Wrap(err, "failed to get sale")
	}

	return toSaleOutput(sale), nil
}

// MarkCreditSalePaid flips a credit sale to paid and stamps the payment date.
// Calling it again refreshes the payment date; there is no un-pay transition.
func (srv *saleService) MarkCreditSalePaid(ctx context.Context, id uuid.UUID) (*usecase.SaleOutput, error) {
	sale, err := srv.saleRepo.MarkCreditSalePaid(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("credit sale not found")
		}

		srv.logger.Error("Failed to mark credit sale paid", slog.Any("id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to mark credit sale paid")
	}

	srv.logger.Info("Credit sale marked paid", slog.Any("id", id))

	return toSaleOutput(sale), nil
}

// toSaleOutput projects a sale entity onto its client-facing shape. The
// switch is exhaustive over the sale variants.
func toSaleOutput(sale *entity.Sale) *usecase.SaleOutput {
	output := &usecase.SaleOutput{
		ID:        sale.ID,
		Type:      sale.Type,
		CreatedAt: sale.CreatedAt,
	}
	if sale.Recorder != nil {
		output.RecordedBy = &usecase.RecordedByOutput{
			Name:  sale.Recorder.Name,
			Email: sale.Recorder.Email,
		}
	}

	switch sale.Type {
	case entity.SaleTypeCash:
		output.Cash = &usecase.CashSaleOutput{
			ProduceName:    sale.Cash.ProduceName,
			Tonnage:        sale.Cash.Tonnage,
			AmountPaid:     sale.Cash.AmountPaid,
			BuyerName:      sale.Cash.BuyerName,
			SalesAgentName: sale.Cash.SalesAgentName,
			Date:           sale.Cash.Date,
			Time:           sale.Cash.Time,
		}
	case entity.SaleTypeCredit:
		output.Credit = &usecase.CreditSaleOutput{
			BuyerName:      sale.Credit.BuyerName,
			NationalID:     sale.Credit.NationalID,
			Location:       sale.Credit.Location,
			Contacts:       sale.Credit.Contacts,
			AmountDue:      sale.Credit.AmountDue,
			SalesAgentName: sale.Credit.SalesAgentName,
			DueDate:        sale.Credit.DueDate,
			ProduceName:    sale.Credit.ProduceName,
			ProduceType:    sale.Credit.ProduceType,
			Tonnage:        sale.Credit.Tonnage,
			DispatchDate:   sale.Credit.DispatchDate,
			IsPaid:         sale.Credit.IsPaid,
			PaymentDate:    sale.Credit.PaymentDate,
		}
	}

	return output
}
