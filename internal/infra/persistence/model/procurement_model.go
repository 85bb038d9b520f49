package model

import (
	"time"

	"github.com/google/uuid"
)

// ProcurementModel mirrors the 'procurements' table. Rows are append-only;
// no update or delete path exists in the application.
type ProcurementModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProduceName  string    `gorm:"type:varchar(100);not null"`
	ProduceType  string    `gorm:"type:varchar(100);not null"`
	Date         time.Time `gorm:"not null"`
	Time         string    `gorm:"type:varchar(5);not null"`
	Tonnage      int       `gorm:"not null"`
	Cost         float64   `gorm:"type:numeric(14,2);not null"`
	DealerName   string    `gorm:"type:varchar(100);not null"`
	Branch       string    `gorm:"type:varchar(20);not null"`
	Contact      string    `gorm:"type:varchar(12);not null"`
	SellingPrice float64   `gorm:"type:numeric(14,2);not null"`
	RecordedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time

	Recorder *UserModel `gorm:"foreignKey:RecordedBy"`
}

// TableName explicitly sets the table name for GORM.
func (ProcurementModel) TableName() string {
	return "procurements"
}
