package request_models

import "github.com/google/uuid"

type AddItemRequest struct {
	TypeID   uuid.UUID `json:"type_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required"`
}

type RemoveItemRequest struct {
	TypeID uuid.UUID `json:"type_id" binding:"required"`
}

type UpdateItemQuantityRequest struct {
	TypeID   uuid.UUID `json:"type_id" binding:"required"`
	Quantity int       `json:"quantity"`
}
