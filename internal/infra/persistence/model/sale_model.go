package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleModel mirrors the 'sales' table, the shared half of the sale union.
// Exactly one detail row exists per sale, selected by Type.
type SaleModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type       string    `gorm:"type:varchar(10);not null;index"`
	RecordedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time

	Recorder   *UserModel       `gorm:"foreignKey:RecordedBy"`
	CashSale   *CashSaleModel   `gorm:"foreignKey:SaleID"`
	CreditSale *CreditSaleModel `gorm:"foreignKey:SaleID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// CashSaleModel mirrors the 'cash_sales' table. Rows are immutable.
type CashSaleModel struct {
	SaleID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProduceName    string    `gorm:"type:varchar(100);not null"`
	Tonnage        int       `gorm:"not null"`
	AmountPaid     float64   `gorm:"type:numeric(14,2);not null"`
	BuyerName      string    `gorm:"type:varchar(100);not null"`
	SalesAgentName string    `gorm:"type:varchar(100);not null"`
	Date           time.Time `gorm:"not null"`
	Time           string    `gorm:"type:varchar(5);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CashSaleModel) TableName() string {
	return "cash_sales"
}

// CreditSaleModel mirrors the 'credit_sales' table. IsPaid and PaymentDate
// are the only columns in the system that are ever updated.
type CreditSaleModel struct {
	SaleID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerName      string    `gorm:"type:varchar(100);not null"`
	NationalID     string    `gorm:"type:varchar(15);not null"`
	Location       string    `gorm:"type:varchar(100);not null"`
	Contacts       string    `gorm:"type:varchar(12);not null"`
	AmountDue      float64   `gorm:"type:numeric(14,2);not null"`
	SalesAgentName string    `gorm:"type:varchar(100);not null"`
	DueDate        time.Time `gorm:"not null"`
	ProduceName    string    `gorm:"type:varchar(100);not null"`
	ProduceType    string    `gorm:"type:varchar(100);not null"`
	Tonnage        int       `gorm:"not null"`
	DispatchDate   time.Time `gorm:"not null"`
	IsPaid         bool      `gorm:"not null;default:false"`
	PaymentDate    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (CreditSaleModel) TableName() string {
	return "credit_sales"
}
