package usecase

import (
	"context"
	"time"

	"wholesale/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordCashSaleInput carries validated cash-sale fields into the usecase.
// Date is optional; the zero value is defaulted to the time of recording.
type RecordCashSaleInput struct {
	ProduceName    string
	Tonnage        int
	AmountPaid     float64
	BuyerName      string
	SalesAgentName string
	Date           time.Time
	Time           string
	RecordedBy     uuid.UUID
}

// RecordCreditSaleInput carries validated credit-sale fields into the
// usecase. DispatchDate is optional; the zero value is defaulted to the time
// of recording. DueDate is required.
type RecordCreditSaleInput struct {
	BuyerName      string
	NationalID     string
	Location       string
	Contacts       string
	AmountDue      float64
	SalesAgentName string
	DueDate        time.Time
	ProduceName    string
	ProduceType    string
	Tonnage        int
	DispatchDate   time.Time
	RecordedBy     uuid.UUID
}

// CashSaleOutput is the variant payload of a cash sale.
type CashSaleOutput struct {
	ProduceName    string    `json:"produceName"`
	Tonnage        int       `json:"tonnage"`
	AmountPaid     float64   `json:"amountPaid"`
	BuyerName      string    `json:"buyerName"`
	SalesAgentName string    `json:"salesAgentName"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
}

// CreditSaleOutput is the variant payload of a credit sale.
type CreditSaleOutput struct {
	BuyerName      string     `json:"buyerName"`
	NationalID     string     `json:"nationalId"`
	Location       string     `json:"location"`
	Contacts       string     `json:"contacts"`
	AmountDue      float64    `json:"amountDue"`
	SalesAgentName string     `json:"salesAgentName"`
	DueDate        time.Time  `json:"dueDate"`
	ProduceName    string     `json:"produceName"`
	ProduceType    string     `json:"produceType"`
	Tonnage        int        `json:"tonnage"`
	DispatchDate   time.Time  `json:"dispatchDate"`
	IsPaid         bool       `json:"isPaid"`
	PaymentDate    *time.Time `json:"paymentDate"`
}

// SaleOutput is the client-facing shape of a sale record. Exactly one of
// Cash and Credit is set, matching Type.
type SaleOutput struct {
	ID         uuid.UUID         `json:"id"`
	Type       entity.SaleType   `json:"saleType"`
	RecordedBy *RecordedByOutput `json:"recordedBy,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	Cash       *CashSaleOutput   `json:"cashSale,omitempty"`
	Credit     *CreditSaleOutput `json:"creditSale,omitempty"`
}

// SaleUsecase defines the operations available on sale records. Recording is
// restricted to SalesAgents and Managers by the delivery layer; marking a
// credit sale paid is open to any authenticated user.
type SaleUsecase interface {
	RecordCashSale(ctx context.Context, input *RecordCashSaleInput) (*SaleOutput, error)
	RecordCreditSale(ctx context.Context, input *RecordCreditSaleInput) (*SaleOutput, error)
	List(ctx context.Context, typeFilter *entity.SaleType) ([]*SaleOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*SaleOutput, error)
	MarkCreditSalePaid(ctx context.Context, id uuid.UUID) (*SaleOutput, error)
}
