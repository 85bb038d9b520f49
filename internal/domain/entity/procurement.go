package entity

import (
	"time"

	"github.com/google/uuid"
)

// Procurement records produce bought in from a dealer at one of the branches.
// Records are append-only: there is no update or delete path.
//
// SellingPrice and Cost are independent inputs; the system deliberately does
// not enforce any relation between them.
type Procurement struct {
	ID           uuid.UUID  // The unique identifier for the record.
	ProduceName  string     // Name of the produce bought, e.g. "Maize".
	ProduceType  string     // Category of the produce, e.g. "Cereal".
	Date         time.Time  // Procurement date; defaults to the time of recording.
	Time         string     // Procurement time in 24h "HH:MM" form.
	Tonnage      int        // Tonnage bought; minimum 100.
	Cost         float64    // Total cost in UgX; minimum 10000.
	DealerName   string     // Name of the dealer the produce was bought from.
	Branch       Branch     // The branch the produce was delivered to.
	Contact      string     // Dealer phone contact, 10-12 digits.
	SellingPrice float64    // Intended selling price per ton in UgX; minimum 1000.
	RecordedBy   uuid.UUID  // The user who recorded this procurement.
	Recorder     *RecordedBy // Read-time projection of the recording user.
	CreatedAt    time.Time  // Timestamp of when this record was created.
}
