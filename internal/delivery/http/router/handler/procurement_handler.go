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

// ProcurementHandler holds dependencies for procurement-related handlers.
type ProcurementHandler struct {
	uc     usecase.ProcurementUsecase
	logger *slog.Logger
}

// NewProcurementHandler is the constructor for ProcurementHandler, injected by Fx.
func NewProcurementHandler(uc usecase.ProcurementUsecase, logger *slog.Logger) *ProcurementHandler {
	return &ProcurementHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProcurementRequest struct {
	ProduceName  string  `json:"produceName" validate:"required,alphanum_space"`
	ProduceType  string  `json:"produceType" validate:"required,min=2,alpha_space"`
	Date         string  `json:"date" validate:"omitempty,iso_date"`
	Time         string  `json:"time" validate:"required,time_24h"`
	Tonnage      int     `json:"tonnage" validate:"required,min=100"`
	Cost         float64 `json:"cost" validate:"required,min=10000"`
	DealerName   string  `json:"dealerName" validate:"required,min=2,alphanum_space"`
	Branch       string  `json:"branch" validate:"required,oneof=Maganjo Matugga"`
	Contact      string  `json:"contact" validate:"required,ug_phone"`
	SellingPrice float64 `json:"sellingPrice" validate:"required,min=1000"`
}

// Create records a procurement. The route is restricted to Managers by the
// role middleware; nothing is persisted unless every field passes the rule set.
func (h *ProcurementHandler) Create(c echo.Context) error {
	userID, ok := recordedBy(c)
	if !ok {
		return response.Unauthorized(c, "missing authenticated identity")
	}

	var req createProcurementRequest
	if err := c.Bind(&req); err != nil {
		return respondBindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	input := &usecase.CreateProcurementInput{
		ProduceName:  req.ProduceName,
		ProduceType:  req.ProduceType,
		Time:         req.Time,
		Tonnage:      req.Tonnage,
		Cost:         req.Cost,
		DealerName:   req.DealerName,
		Branch:       entity.Branch(req.Branch),
		Contact:      req.Contact,
		SellingPrice: req.SellingPrice,
		RecordedBy:   userID,
	}
	if req.Date != "" {
		date, err := httpvalidator.ParseISODate(req.Date)
		if err != nil {
			return respondValidation(c, err)
		}
		input.Date = date
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// List returns every procurement record, newest first.
func (h *ProcurementHandler) List(c echo.Context) error {
	outputs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, len(outputs), outputs)
}

// Get returns a single procurement record by id.
func (h *ProcurementHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid procurement id")
	}

	output, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}
