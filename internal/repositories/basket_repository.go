package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"esale/internal/models/db_models"
	"esale/pkg/utils"
)

type BasketRepositoryInterface interface {
	CreateBasket(ctx context.Context, basket *db_models.Basket) error
	GetBasketByID(ctx context.Context, basketID uuid.UUID) (*db_models.Basket, error)
	GetAllBaskets(ctx context.Context) ([]db_models.Basket, error)
	GetItem(ctx context.Context, basketID, typeID uuid.UUID) (*db_models.BasketItem, error)
	CreateItem(ctx context.Context, item *db_models.BasketItem) error
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	SaveTotals(ctx context.Context, basket *db_models.Basket) error
	MarkCompleted(ctx context.Context, basketID uuid.UUID) error
}

func NewBasketRepository(db *gorm.DB) BasketRepositoryInterface {
	return &BasketRepository{db: db}
}

type BasketRepository struct {
	db *gorm.DB
}

func (r *BasketRepository) CreateBasket(ctx context.Context, basket *db_models.Basket) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(basket).Error
	})
}

func (r *BasketRepository) GetBasketByID(ctx context.Context, basketID uuid.UUID) (*db_models.Basket, error) {
	var basket db_models.Basket
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("id = ?", basketID).
		First(&basket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &basket, nil
}

func (r *BasketRepository) GetAllBaskets(ctx context.Context) ([]db_models.Basket, error) {
	var baskets []db_models.Basket
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&baskets).Error
	if err != nil {
		return nil, err
	}
	return baskets, nil
}

func (r *BasketRepository) GetItem(ctx context.Context, basketID, typeID uuid.UUID) (*db_models.BasketItem, error) {
	var item db_models.BasketItem
	err := r.db.WithContext(ctx).
		Where("basket_id = ? AND service_type_id = ?", basketID, typeID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *BasketRepository) CreateItem(ctx context.Context, item *db_models.BasketItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *BasketRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.BasketItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *BasketRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.BasketItem{}, "id = ?", itemID).Error
}

// SaveTotals persists recomputed totals guarded by the basket's version
// counter. A stale version writes zero rows and surfaces ErrConflict.
func (r *BasketRepository) SaveTotals(ctx context.Context, basket *db_models.Basket) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Basket{}).
		Where("id = ? AND version = ?", basket.ID, basket.Version).
		Updates(map[string]interface{}{
			"subtotal_amount": basket.SubtotalAmount,
			"tax_amount":      basket.TaxAmount,
			"total_amount":    basket.TotalAmount,
			"version":         basket.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrConflict
	}
	basket.Version++
	return nil
}

func (r *BasketRepository) MarkCompleted(ctx context.Context, basketID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Basket{}).
		Where("id = ?", basketID).
		Update("status", db_models.BasketStatusCompleted).Error
}
