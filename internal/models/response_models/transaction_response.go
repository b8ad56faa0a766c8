package response_models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"esale/internal/models/db_models"
)

// TransactionResponse is the only shape a transaction ever leaves the API
// in. Card number, expiry and CVV have no fields here at all.
type TransactionResponse struct {
	ID          uuid.UUID             `json:"id"`
	BasketID    *uuid.UUID            `json:"basket_id,omitempty"`
	Items       []db_models.LineItem  `json:"items"`
	FullName    string                `json:"full_name"`
	Email       string                `json:"email"`
	PhoneNumber string                `json:"phone_number,omitempty"`
	Address     string                `json:"address,omitempty"`
	City        string                `json:"city,omitempty"`
	State       string                `json:"state,omitempty"`
	ZipCode     string                `json:"zip_code,omitempty"`
	Subtotal    decimal.Decimal       `json:"subtotal"`
	Tax         decimal.Decimal       `json:"tax"`
	Amount      decimal.Decimal       `json:"amount"`
	Total       decimal.Decimal       `json:"total"`
	Status      string                `json:"status"`
	Description string                `json:"description,omitempty"`
	CreatedAt   int64                 `json:"created_at"`
}

func NewTransactionResponse(txn *db_models.Transaction) TransactionResponse {
	items := []db_models.LineItem{}
	if len(txn.Items) > 0 {
		// A snapshot that fails to decode renders as an empty list rather
		// than failing the response.
		_ = json.Unmarshal(txn.Items, &items)
	}
	return TransactionResponse{
		ID:          txn.ID,
		BasketID:    txn.BasketID,
		Items:       items,
		FullName:    txn.FullName,
		Email:       txn.Email,
		PhoneNumber: txn.PhoneNumber,
		Address:     txn.Address,
		City:        txn.City,
		State:       txn.State,
		ZipCode:     txn.ZipCode,
		Subtotal:    txn.Subtotal,
		Tax:         txn.Tax,
		Amount:      txn.Amount,
		Total:       txn.Amount,
		Status:      string(txn.Status),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
}

func NewTransactionListResponse(txns []db_models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, NewTransactionResponse(&txns[i]))
	}
	return out
}
