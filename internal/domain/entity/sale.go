package entity

import (
	"time"

	"github.com/google/uuid"
)

// SaleType discriminates the two sale variants.
type SaleType string

const (
	// SaleTypeCash indicates an immediate, fully paid sale.
	SaleTypeCash SaleType = "Cash"
	// SaleTypeCredit indicates a sale with deferred payment.
	SaleTypeCredit SaleType = "Credit"
)

// String returns the string representation of the SaleType.
func (t SaleType) String() string {
	return string(t)
}

// IsValid checks if the SaleType is a valid value.
func (t SaleType) IsValid() bool {
	switch t {
	case SaleTypeCash, SaleTypeCredit:
		return true
	default:
		return false
	}
}

// Sale is a tagged union over the two sale variants. Exactly one of Cash and
// Credit is non-nil, selected by Type. The identity, recording user and
// creation timestamp are shared by both variants.
type Sale struct {
	ID         uuid.UUID   // The unique identifier shared by both variants.
	Type       SaleType    // Discriminant: Cash or Credit.
	RecordedBy uuid.UUID   // The user who recorded this sale.
	Recorder   *RecordedBy // Read-time projection of the recording user.
	CreatedAt  time.Time   // Timestamp of when this record was created.

	Cash   *CashSale   // Set when Type == SaleTypeCash.
	Credit *CreditSale // Set when Type == SaleTypeCredit.
}

// CashSale holds the fields specific to an immediate sale. Immutable after
// creation.
type CashSale struct {
	ProduceName    string    // Name of the produce sold.
	Tonnage        int       // Tonnage sold; minimum 1.
	AmountPaid     float64   // Amount received in UgX; minimum 10000.
	BuyerName      string    // Name of the buyer.
	SalesAgentName string    // Name of the agent who made the sale.
	Date           time.Time // Sale date; defaults to the time of recording.
	Time           string    // Sale time in 24h "HH:MM" form.
}

// CreditSale holds the fields specific to a deferred-payment sale. The only
// mutable state in the system is the IsPaid flag and its PaymentDate.
type CreditSale struct {
	BuyerName      string     // Name of the buyer.
	NationalID     string     // Buyer national ID, 10-15 uppercase alphanumerics.
	Location       string     // Buyer location.
	Contacts       string     // Buyer phone contact, 10-12 digits.
	AmountDue      float64    // Amount owed in UgX; minimum 10000.
	SalesAgentName string     // Name of the agent who made the sale.
	DueDate        time.Time  // Date the payment falls due. Past dates are accepted.
	ProduceName    string     // Name of the produce sold.
	ProduceType    string     // Category of the produce sold.
	Tonnage        int        // Tonnage sold; minimum 1.
	DispatchDate   time.Time  // Dispatch date; defaults to the time of recording.
	IsPaid         bool       // Whether the debt has been settled. Starts false.
	PaymentDate    *time.Time // When the debt was settled; nil while unpaid.
}
