package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"wholesale/internal/delivery/http/middleware"
	httpvalidator "wholesale/internal/delivery/http/validator"
	"wholesale/internal/domain/entity"
	"wholesale/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an echo context with the request validator wired,
// mirroring the production server setup.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = httpvalidator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// authenticate attaches an identity the way the auth middleware does.
func authenticate(c echo.Context, userID uuid.UUID, role entity.Role) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

// violationFieldSet extracts the field names from an errors array response.
func violationFieldSet(t *testing.T, rec *httptest.ResponseRecorder) map[string]bool {
	t.Helper()

	body := decodeBody(t, rec)
	rawErrors, ok := body["errors"].([]any)
	require.True(t, ok, "expected an errors array, got: %s", rec.Body.String())

	fields := make(map[string]bool, len(rawErrors))
	for _, raw := range rawErrors {
		entry, ok := raw.(map[string]any)
		require.True(t, ok)
		field, ok := entry["field"].(string)
		require.True(t, ok)
		fields[field] = true
	}

	return fields
}

// stubProcurementUsecase lets each test pin down exactly the calls it expects.
type stubProcurementUsecase struct {
	create func(ctx context.Context, input *usecase.CreateProcurementInput) (*usecase.ProcurementOutput, error)
	list   func(ctx context.Context) ([]*usecase.ProcurementOutput, error)
	get    func(ctx context.Context, id uuid.UUID) (*usecase.ProcurementOutput, error)
}

func (s *stubProcurementUsecase) Create(ctx context.Context, input *usecase.CreateProcurementInput) (*usecase.ProcurementOutput, error) {
	return s.create(ctx, input)
}

func (s *stubProcurementUsecase) List(ctx context.Context) ([]*usecase.ProcurementOutput, error) {
	return s.list(ctx)
}

func (s *stubProcurementUsecase) Get(ctx context.Context, id uuid.UUID) (*usecase.ProcurementOutput, error) {
	return s.get(ctx, id)
}

type stubSaleUsecase struct {
	recordCash   func(ctx context.Context, input *usecase.RecordCashSaleInput) (*usecase.SaleOutput, error)
	recordCredit func(ctx context.Context, input *usecase.RecordCreditSaleInput) (*usecase.SaleOutput, error)
	list         func(ctx context.Context, typeFilter *entity.SaleType) ([]*usecase.SaleOutput, error)
	get          func(ctx context.Context, id uuid.UUID) (*usecase.SaleOutput, error)
	markPaid     func(ctx context.Context, id uuid.UUID) (*usecase.SaleOutput, error)
}

func (s *stubSaleUsecase) RecordCashSale(ctx context.Context, input *usecase.RecordCashSaleInput) (*usecase.SaleOutput, error) {
	return s.recordCash(ctx, input)
}

func (s *stubSaleUsecase) RecordCreditSale(ctx context.Context, input *usecase.RecordCreditSaleInput) (*usecase.SaleOutput, error) {
	return s.recordCredit(ctx, input)
}

func (s *stubSaleUsecase) List(ctx context.Context, typeFilter *entity.SaleType) ([]*usecase.SaleOutput, error) {
	return s.list(ctx, typeFilter)
}

func (s *stubSaleUsecase) Get(ctx context.Context, id uuid.UUID) (*usecase.SaleOutput, error) {
	return s.get(ctx, id)
}

func (s *stubSaleUsecase) MarkCreditSalePaid(ctx context.Context, id uuid.UUID) (*usecase.SaleOutput, error) {
	return s.markPaid(ctx, id)
}

type stubUserUsecase struct {
	register func(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserOutput, error)
	login    func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
}

func (s *stubUserUsecase) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserOutput, error) {
	return s.register(ctx, input)
}

func (s *stubUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.login(ctx, input)
}
