package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esale/internal/models/db_models"
	"esale/pkg/utils"
)

func newBasketFixture(t *testing.T) (BasketServiceInterface, *fakeBasketRepo, *fakeServiceRepo, *db_models.ServiceType) {
	t.Helper()

	basketRepo := newFakeBasketRepo()
	serviceRepo := newFakeServiceRepo()
	serviceType := serviceRepo.addType(&db_models.ServiceType{
		Name:     "Basic Wash",
		Price:    decimal.RequireFromString("25.00"),
		IsActive: true,
	})

	svc := NewBasketService(basketRepo, serviceRepo, decimal.RequireFromString("0.10"))
	return svc, basketRepo, serviceRepo, serviceType
}

func TestBasketTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("two units at 25.00 give 50.00 subtotal, 5.00 tax, 55.00 total", func(t *testing.T) {
		svc, _, _, serviceType := newBasketFixture(t)

		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)

		basket, err = svc.AddItem(ctx, basket.ID, serviceType.ID, 2)
		require.NoError(t, err)

		assert.True(t, basket.SubtotalAmount.Equal(decimal.RequireFromString("50.00")), "subtotal=%s", basket.SubtotalAmount)
		assert.True(t, basket.TaxAmount.Equal(decimal.RequireFromString("5.00")), "tax=%s", basket.TaxAmount)
		assert.True(t, basket.TotalAmount.Equal(decimal.RequireFromString("55.00")), "total=%s", basket.TotalAmount)
		assert.True(t, basket.TotalAmount.Equal(basket.SubtotalAmount.Add(basket.TaxAmount)))
	})

	t.Run("recomputation without mutation is idempotent", func(t *testing.T) {
		svc, _, _, serviceType := newBasketFixture(t)

		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)
		first, err := svc.AddItem(ctx, basket.ID, serviceType.ID, 3)
		require.NoError(t, err)

		// Re-set the same quantity; the totals must come out identical.
		second, err := svc.UpdateItemQuantity(ctx, basket.ID, serviceType.ID, 3)
		require.NoError(t, err)

		assert.True(t, first.SubtotalAmount.Equal(second.SubtotalAmount))
		assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
		assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
	})

	t.Run("no binary float drift on awkward prices", func(t *testing.T) {
		svc, _, serviceRepo, _ := newBasketFixture(t)
		cheap := serviceRepo.addType(&db_models.ServiceType{
			Name:  "Sticker",
			Price: decimal.RequireFromString("0.10"),
		})

		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)
		basket, err = svc.AddItem(ctx, basket.ID, cheap.ID, 3)
		require.NoError(t, err)

		assert.Equal(t, "0.30", basket.SubtotalAmount.StringFixed(2))
		assert.Equal(t, "0.03", basket.TaxAmount.StringFixed(2))
		assert.Equal(t, "0.33", basket.TotalAmount.StringFixed(2))
	})

	t.Run("unresolvable service type is skipped, not fatal", func(t *testing.T) {
		svc, basketRepo, _, serviceType := newBasketFixture(t)

		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)

		// A row pointing at a type the catalog no longer knows about.
		require.NoError(t, basketRepo.CreateItem(ctx, &db_models.BasketItem{
			BasketID:      basket.ID,
			ServiceTypeID: uuid.New(),
			Quantity:      5,
		}))

		basket, err = svc.AddItem(ctx, basket.ID, serviceType.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "25.00", basket.SubtotalAmount.StringFixed(2))
	})
}

func TestBasketMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("adding the same type twice accumulates quantity", func(t *testing.T) {
		svc, _, _, serviceType := newBasketFixture(t)

		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, basket.ID, serviceType.ID, 1)
		require.NoError(t, err)
		basket, err = svc.AddItem(ctx, basket.ID, serviceType.ID, 2)
		require.NoError(t, err)

		require.Len(t, basket.Items, 1)
		assert.Equal(t, 3, basket.Items[0].Quantity)
	})

	t.Run("quantity zero or below deletes the item", func(t *testing.T) {
		svc, _, _, serviceType := newBasketFixture(t)

		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, basket.ID, serviceType.ID, 2)
		require.NoError(t, err)

		basket, err = svc.UpdateItemQuantity(ctx, basket.ID, serviceType.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, basket.Items)
		assert.True(t, basket.TotalAmount.IsZero())
	})

	t.Run("remove item recomputes totals", func(t *testing.T) {
		svc, _, serviceRepo, serviceType := newBasketFixture(t)
		other := serviceRepo.addType(&db_models.ServiceType{
			Name:  "Deluxe Wash",
			Price: decimal.RequireFromString("40.00"),
		})

		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, basket.ID, serviceType.ID, 1)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, basket.ID, other.ID, 1)
		require.NoError(t, err)

		basket, err = svc.RemoveItem(ctx, basket.ID, other.ID)
		require.NoError(t, err)
		assert.Equal(t, "25.00", basket.SubtotalAmount.StringFixed(2))
	})

	t.Run("add with non-positive quantity is a validation error", func(t *testing.T) {
		svc, _, _, serviceType := newBasketFixture(t)
		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)

		_, err = svc.AddItem(ctx, basket.ID, serviceType.ID, 0)
		var v *utils.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Contains(t, v.Fields, "quantity")
	})

	t.Run("unknown service type on add is not-found", func(t *testing.T) {
		svc, _, _, _ := newBasketFixture(t)
		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)

		_, err = svc.AddItem(ctx, basket.ID, uuid.New(), 1)
		assert.True(t, errors.Is(err, utils.ErrNotFound))
	})

	t.Run("unknown basket is not-found", func(t *testing.T) {
		svc, _, _, serviceType := newBasketFixture(t)
		_, err := svc.AddItem(ctx, uuid.New(), serviceType.ID, 1)
		assert.True(t, errors.Is(err, utils.ErrNotFound))
	})

	t.Run("completed basket rejects mutation with conflict", func(t *testing.T) {
		svc, basketRepo, _, serviceType := newBasketFixture(t)

		basket, err := svc.CreateBasket(ctx)
		require.NoError(t, err)
		require.NoError(t, basketRepo.MarkCompleted(ctx, basket.ID))

		_, err = svc.AddItem(ctx, basket.ID, serviceType.ID, 1)
		assert.True(t, errors.Is(err, utils.ErrConflict))
	})
}
