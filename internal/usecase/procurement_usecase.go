package usecase

import (
	"context"
	"time"

	"wholesale/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProcurementInput carries validated procurement fields into the
// usecase. Date is optional; the zero value is defaulted to the time of
// recording.
type CreateProcurementInput struct {
	ProduceName  string
	ProduceType  string
	Date         time.Time
	Time         string
	Tonnage      int
	Cost         float64
	DealerName   string
	Branch       entity.Branch
	Contact      string
	SellingPrice float64
	RecordedBy   uuid.UUID
}

// RecordedByOutput is the minimal projection of the recording user attached
// to read responses.
type RecordedByOutput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProcurementOutput is the client-facing shape of a procurement record.
type ProcurementOutput struct {
	ID           uuid.UUID         `json:"id"`
	ProduceName  string            `json:"produceName"`
	ProduceType  string            `json:"produceType"`
	Date         time.Time         `json:"date"`
	Time         string            `json:"time"`
	Tonnage      int               `json:"tonnage"`
	Cost         float64           `json:"cost"`
	DealerName   string            `json:"dealerName"`
	Branch       entity.Branch     `json:"branch"`
	Contact      string            `json:"contact"`
	SellingPrice float64           `json:"sellingPrice"`
	RecordedBy   *RecordedByOutput `json:"recordedBy,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// ProcurementUsecase defines the operations available on procurement records.
// Creation is restricted to Managers by the delivery layer.
type ProcurementUsecase interface {
	Create(ctx context.Context, input *CreateProcurementInput) (*ProcurementOutput, error)
	List(ctx context.Context) ([]*ProcurementOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*ProcurementOutput, error)
}
