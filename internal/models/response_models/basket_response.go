package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"esale/internal/models/db_models"
)

type BasketItemResponse struct {
	ID            uuid.UUID `json:"id"`
	ServiceTypeID uuid.UUID `json:"service_type_id"`
	Quantity      int       `json:"quantity"`
}

type BasketResponse struct {
	ID        uuid.UUID            `json:"id"`
	Status    string               `json:"status"`
	Items     []BasketItemResponse `json:"items"`
	ItemCount int                  `json:"item_count"`
	Subtotal  decimal.Decimal      `json:"subtotal"`
	Tax       decimal.Decimal      `json:"tax"`
	Total     decimal.Decimal      `json:"total"`
	CreatedAt int64                `json:"created_at"`
}

func NewBasketResponse(basket *db_models.Basket) BasketResponse {
	items := make([]BasketItemResponse, 0, len(basket.Items))
	for _, item := range basket.Items {
		items = append(items, BasketItemResponse{
			ID:            item.ID,
			ServiceTypeID: item.ServiceTypeID,
			Quantity:      item.Quantity,
		})
	}
	return BasketResponse{
		ID:        basket.ID,
		Status:    string(basket.Status),
		Items:     items,
		ItemCount: len(items),
		Subtotal:  basket.SubtotalAmount,
		Tax:       basket.TaxAmount,
		Total:     basket.TotalAmount,
		CreatedAt: basket.CreatedAt,
	}
}

func NewBasketListResponse(baskets []db_models.Basket) []BasketResponse {
	out := make([]BasketResponse, 0, len(baskets))
	for i := range baskets {
		out = append(out, NewBasketResponse(&baskets[i]))
	}
	return out
}
