package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"esale/internal/models/db_models"
	"esale/internal/repositories"
	"esale/pkg/utils"
)

// DefaultTaxRate is applied when no TAX_RATE is configured.
var DefaultTaxRate = decimal.NewFromFloat(0.10)

type BasketServiceInterface interface {
	CreateBasket(ctx context.Context) (*db_models.Basket, error)
	GetBasket(ctx context.Context, basketID uuid.UUID) (*db_models.Basket, error)
	ListBaskets(ctx context.Context) ([]db_models.Basket, error)
	AddItem(ctx context.Context, basketID, typeID uuid.UUID, quantity int) (*db_models.Basket, error)
	RemoveItem(ctx context.Context, basketID, typeID uuid.UUID) (*db_models.Basket, error)
	UpdateItemQuantity(ctx context.Context, basketID, typeID uuid.UUID, quantity int) (*db_models.Basket, error)
}

func NewBasketService(
	basketRepo repositories.BasketRepositoryInterface,
	serviceRepo repositories.ServiceRepositoryInterface,
	taxRate decimal.Decimal,
) BasketServiceInterface {
	return &basketService{
		basketRepo:  basketRepo,
		serviceRepo: serviceRepo,
		taxRate:     taxRate,
	}
}

// Pricing policy: while a basket is OPEN, unit prices are resolved live from
// the catalog on every recompute. Prices are only frozen when a transaction
// snapshots the basket at checkout.
type basketService struct {
	basketRepo  repositories.BasketRepositoryInterface
	serviceRepo repositories.ServiceRepositoryInterface
	taxRate     decimal.Decimal
}

func (s *basketService) CreateBasket(ctx context.Context) (*db_models.Basket, error) {
	basket := &db_models.Basket{
		Status:         db_models.BasketStatusOpen,
		SubtotalAmount: decimal.Zero,
		TaxAmount:      decimal.Zero,
		TotalAmount:    decimal.Zero,
	}
	if err := s.basketRepo.CreateBasket(ctx, basket); err != nil {
		return nil, fmt.Errorf("create basket: %w", err)
	}
	return basket, nil
}

func (s *basketService) GetBasket(ctx context.Context, basketID uuid.UUID) (*db_models.Basket, error) {
	basket, err := s.basketRepo.GetBasketByID(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if basket == nil {
		return nil, fmt.Errorf("basket %s: %w", basketID, utils.ErrNotFound)
	}
	return basket, nil
}

func (s *basketService) ListBaskets(ctx context.Context) ([]db_models.Basket, error) {
	return s.basketRepo.GetAllBaskets(ctx)
}

func (s *basketService) AddItem(ctx context.Context, basketID, typeID uuid.UUID, quantity int) (*db_models.Basket, error) {
	if quantity < 1 {
		return nil, utils.NewValidationError("quantity", "quantity must be at least 1")
	}

	basket, err := s.mutableBasket(ctx, basketID)
	if err != nil {
		return nil, err
	}

	serviceType, err := s.serviceRepo.GetTypeByID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if serviceType == nil {
		return nil, fmt.Errorf("service type %s: %w", typeID, utils.ErrNotFound)
	}

	item, err := s.basketRepo.GetItem(ctx, basketID, typeID)
	if err != nil {
		return nil, err
	}
	if item != nil {
		err = s.basketRepo.UpdateItemQuantity(ctx, item.ID, item.Quantity+quantity)
	} else {
		err = s.basketRepo.CreateItem(ctx, &db_models.BasketItem{
			BasketID:      basketID,
			ServiceTypeID: typeID,
			Quantity:      quantity,
		})
	}
	if err != nil {
		return nil, err
	}

	return s.recomputeTotals(ctx, basket)
}

func (s *basketService) RemoveItem(ctx context.Context, basketID, typeID uuid.UUID) (*db_models.Basket, error) {
	basket, err := s.mutableBasket(ctx, basketID)
	if err != nil {
		return nil, err
	}

	item, err := s.basketRepo.GetItem(ctx, basketID, typeID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("item for type %s: %w", typeID, utils.ErrNotFound)
	}

	if err := s.basketRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, err
	}
	return s.recomputeTotals(ctx, basket)
}

func (s *basketService) UpdateItemQuantity(ctx context.Context, basketID, typeID uuid.UUID, quantity int) (*db_models.Basket, error) {
	basket, err := s.mutableBasket(ctx, basketID)
	if err != nil {
		return nil, err
	}

	item, err := s.basketRepo.GetItem(ctx, basketID, typeID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("item for type %s: %w", typeID, utils.ErrNotFound)
	}

	// Quantity zero or below means the client no longer wants the item.
	if quantity <= 0 {
		err = s.basketRepo.DeleteItem(ctx, item.ID)
	} else {
		err = s.basketRepo.UpdateItemQuantity(ctx, item.ID, quantity)
	}
	if err != nil {
		return nil, err
	}

	return s.recomputeTotals(ctx, basket)
}

func (s *basketService) mutableBasket(ctx context.Context, basketID uuid.UUID) (*db_models.Basket, error) {
	basket, err := s.basketRepo.GetBasketByID(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if basket == nil {
		return nil, fmt.Errorf("basket %s: %w", basketID, utils.ErrNotFound)
	}
	if basket.Status != db_models.BasketStatusOpen {
		return nil, fmt.Errorf("basket %s is already completed: %w", basketID, utils.ErrConflict)
	}
	return basket, nil
}

// recomputeTotals reloads the items and derives subtotal, tax and total with
// exact decimal arithmetic. Items whose service type no longer resolves are
// skipped, not fatal. The write is guarded by the version the basket had
// when this mutation began.
func (s *basketService) recomputeTotals(ctx context.Context, basket *db_models.Basket) (*db_models.Basket, error) {
	fresh, err := s.basketRepo.GetBasketByID(ctx, basket.ID)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, fmt.Errorf("basket %s: %w", basket.ID, utils.ErrNotFound)
	}

	subtotal := decimal.Zero
	for _, item := range fresh.Items {
		serviceType, err := s.serviceRepo.GetTypeByID(ctx, item.ServiceTypeID)
		if err != nil {
			return nil, err
		}
		if serviceType == nil {
			log.Printf("basket %s: skipping unresolvable service type %s", basket.ID, item.ServiceTypeID)
			continue
		}
		subtotal = subtotal.Add(serviceType.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	fresh.SubtotalAmount = subtotal
	fresh.TaxAmount = subtotal.Mul(s.taxRate).Round(2)
	fresh.TotalAmount = fresh.SubtotalAmount.Add(fresh.TaxAmount)
	fresh.Version = basket.Version

	if err := s.basketRepo.SaveTotals(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}
