package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BasketStatus string

const (
	BasketStatusOpen      BasketStatus = "OPEN"
	BasketStatusCompleted BasketStatus = "COMPLETED"
)

// Basket accumulates priced line items until a transaction is created from
// it, at which point it flips to COMPLETED and becomes immutable.
type Basket struct {
	BaseModel
	Status         BasketStatus    `gorm:"size:20;default:'OPEN';index"`
	SubtotalAmount decimal.Decimal `gorm:"type:numeric(10,2);default:0"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(10,2);default:0"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(10,2);default:0"`

	// Optimistic concurrency counter; totals writes are guarded by it.
	Version int64 `gorm:"default:0"`

	Items []BasketItem `gorm:"foreignKey:BasketID"`
}

// BasketItem is one (service type, quantity) row. Quantity is always >= 1;
// setting it to zero or below deletes the row.
type BasketItem struct {
	BaseModel
	BasketID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_basket_type;not null"`
	ServiceTypeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_basket_type;not null"`
	Quantity      int       `gorm:"not null"`
}
