package request_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one submitted basket line. Either service_type_id
// (price resolved live from the catalog) or name+price (price captured
// as submitted) must be present.
type LineItemRequest struct {
	ServiceTypeID *uuid.UUID       `json:"service_type_id"`
	Name          string           `json:"name"`
	Price         *decimal.Decimal `json:"price"`
	Quantity      int              `json:"quantity"`
}

// CreateTransactionRequest carries customer fields, write-only payment
// fields and one of: a basket reference, embedded line items, or a bare
// amount.
type CreateTransactionRequest struct {
	BasketID *uuid.UUID        `json:"basket_id"`
	Items    []LineItemRequest `json:"items"`

	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`

	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`

	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
}

type ProcessPaymentRequest struct {
	CardNumber string `json:"card_number"`
}
