package handler

import (
	"log/slog"
	"net/http"

	"wholesale/internal/delivery/http/response"
	httpvalidator "wholesale/internal/delivery/http/validator"
	"wholesale/internal/domain/entity"
	"wholesale/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SaleHandler holds dependencies for sale-related handlers.
type SaleHandler struct {
	uc     usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler, injected by Fx.
func NewSaleHandler(uc usecase.SaleUsecase, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: logger,
	}
}

type recordCashSaleRequest struct {
	ProduceName    string  `json:"produceName" validate:"required,alphanum_space"`
	Tonnage        int     `json:"tonnage" validate:"required,min=1"`
	AmountPaid     float64 `json:"amountPaid" validate:"required,min=10000"`
	BuyerName      string  `json:"buyerName" validate:"required,min=2,alphanum_space"`
	SalesAgentName string  `json:"salesAgentName" validate:"required,min=2,alphanum_space"`
	Date           string  `json:"date" validate:"omitempty,iso_date"`
	Time           string  `json:"time" validate:"required,time_24h"`
}

type recordCreditSaleRequest struct {
	BuyerName      string  `json:"buyerName" validate:"required,min=2,alphanum_space"`
	NationalID     string  `json:"nationalId" validate:"required,national_id"`
	Location       string  `json:"location" validate:"required,min=2,alphanum_space"`
	Contacts       string  `json:"contacts" validate:"required,ug_phone"`
	AmountDue      float64 `json:"amountDue" validate:"required,min=10000"`
	SalesAgentName string  `json:"salesAgentName" validate:"required,min=2,alphanum_space"`
	DueDate        string  `json:"dueDate" validate:"required,iso_date"`
	ProduceName    string  `json:"produceName" validate:"required,alphanum_space"`
	ProduceType    string  `json:"produceType" validate:"required,min=2,alpha_space"`
	Tonnage        int     `json:"tonnage" validate:"required,min=1"`
	DispatchDate   string  `json:"dispatchDate" validate:"omitempty,iso_date"`
}

// RecordCash records a cash sale. The route is restricted to SalesAgents and
// Managers by the role middleware.
func (h *SaleHandler) RecordCash(c echo.Context) error {
	userID, ok := recordedBy(c)
	if !ok {
		return response.Unauthorized(c, "missing authenticated identity")
	}

	var req recordCashSaleRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	input := &usecase.RecordCashSaleInput{
		ProduceName:    req.ProduceName,
		Tonnage:        req.Tonnage,
		AmountPaid:     req.AmountPaid,
		BuyerName:      req.BuyerName,
		SalesAgentName: req.SalesAgentName,
		Time:           req.Time,
		RecordedBy:     userID,
	}
	if req.Date != "" {
		date, err := httpvalidator.ParseISODate(req.Date)
		if err != nil {
			return respondValidation(c, err)
		}
		input.Date = date
	}

	output, err := h.uc.RecordCashSale(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// RecordCredit records a credit sale. New records start unpaid with a nil
// payment date.
func (h *SaleHandler) RecordCredit(c echo.Context) error {
	userID, ok := recordedBy(c)
	if !ok {
		return response.Unauthorized(c, "missing authenticated identity")
	}

	var req recordCreditSaleRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	dueDate, err := httpvalidator.ParseISODate(req.DueDate)
	if err != nil {
		return respondValidation(c, err)
	}

	input := &usecase.RecordCreditSaleInput{
		BuyerName:      req.BuyerName,
		NationalID:     req.NationalID,
		Location:       req.Location,
		Contacts:       req.Contacts,
		AmountDue:      req.AmountDue,
		SalesAgentName: req.SalesAgentName,
		DueDate:        dueDate,
		ProduceName:    req.ProduceName,
		ProduceType:    req.ProduceType,
		Tonnage:        req.Tonnage,
		RecordedBy:     userID,
	}
	if req.DispatchDate != "" {
		dispatchDate, err := httpvalidator.ParseISODate(req.DispatchDate)
		if err != nil {
			return respondValidation(c, err)
		}
		input.DispatchDate = dispatchDate
	}

	output, err := h.uc.RecordCreditSale(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// List returns sale records, optionally filtered with ?type=Cash|Credit.
func (h *SaleHandler) List(c echo.Context) error {
	var typeFilter *entity.SaleType
	if raw := c.QueryParam("type"); raw != "" {
		saleType := entity.SaleType(raw)
		if !saleType.IsValid() {
			return response.ValidationFailed(c, []response.FieldError{{
				Field:   "type",
				Message: "type must be one of: Cash, Credit",
			}})
		}
		typeFilter = &saleType
	}

	outputs, err := h.uc.List(c.Request().Context(), typeFilter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, len(outputs), outputs)
}

// Get returns a single sale record by id.
func (h *SaleHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid sale id")
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// MarkPaid flips a credit sale to paid. Any authenticated user may call it.
// Repeated calls refresh the payment date; there is no un-pay transition.
func (h *SaleHandler) MarkPaid(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid sale id")
	}

	output, err := h.uc.MarkCreditSalePaid(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}
