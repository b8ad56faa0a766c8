package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "PENDING"
	TxnStatusApproved TransactionStatus = "APPROVED"
	TxnStatusDeclined TransactionStatus = "DECLINED"
	TxnStatusFailed   TransactionStatus = "FAILED"
)

// Terminal reports whether the status can never change again.
func (s TransactionStatus) Terminal() bool {
	return s == TxnStatusApproved || s == TxnStatusDeclined || s == TxnStatusFailed
}

// LineItem is one row of a transaction's basket snapshot. Price is captured
// at creation time, decoupled from later catalog edits.
type LineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Transaction records one checkout attempt. Amount and the Items snapshot
// are written once at creation and never recomputed.
type Transaction struct {
	BaseModel
	BasketID *uuid.UUID `gorm:"type:uuid;index"`

	// Basket snapshot as an ordered json array of LineItem.
	Items datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	FullName    string `gorm:"size:255;not null"`
	Email       string `gorm:"size:255;not null;index"`
	PhoneNumber string `gorm:"size:20"`
	Address     string `gorm:"size:255"`
	City        string `gorm:"size:100"`
	State       string `gorm:"size:100"`
	ZipCode     string `gorm:"size:20"`

	// Payment fields are write-only: stored, never echoed in any response.
	CardNumber string `gorm:"size:20" json:"-"`
	ExpiryDate string `gorm:"size:7" json:"-"` // MM/YYYY
	CVV        string `gorm:"size:4" json:"-"`

	Subtotal decimal.Decimal `gorm:"type:numeric(10,2);default:0"`
	Tax      decimal.Decimal `gorm:"type:numeric(10,2);default:0"`
	Amount   decimal.Decimal `gorm:"type:numeric(10,2);not null"`

	Status      TransactionStatus `gorm:"size:20;default:'PENDING';index"`
	Description string            `gorm:"type:text"`

	Basket *Basket `gorm:"foreignKey:BasketID"`
}
