package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"esale/internal/models/db_models"
	"esale/pkg/utils"
)

// In-memory stand-ins for the gorm repositories. They reproduce the
// conventions the real ones follow: nil result on not-found, version-guarded
// totals writes.

type fakeServiceRepo struct {
	services map[uuid.UUID]*db_models.Service
	types    map[uuid.UUID]*db_models.ServiceType
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{
		services: map[uuid.UUID]*db_models.Service{},
		types:    map[uuid.UUID]*db_models.ServiceType{},
	}
}

func (f *fakeServiceRepo) addType(t *db_models.ServiceType) *db_models.ServiceType {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.types[t.ID] = t
	return t
}

func (f *fakeServiceRepo) GetAllServices(ctx context.Context) ([]db_models.Service, error) {
	out := make([]db_models.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeServiceRepo) GetServiceByID(ctx context.Context, id uuid.UUID) (*db_models.Service, error) {
	if s, ok := f.services[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeServiceRepo) GetAllTypes(ctx context.Context) ([]db_models.ServiceType, error) {
	out := make([]db_models.ServiceType, 0, len(f.types))
	for _, t := range f.types {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeServiceRepo) GetTypeByID(ctx context.Context, id uuid.UUID) (*db_models.ServiceType, error) {
	if t, ok := f.types[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

type fakeBasketRepo struct {
	baskets map[uuid.UUID]*db_models.Basket
	items   map[uuid.UUID][]*db_models.BasketItem // keyed by basket id
}

func newFakeBasketRepo() *fakeBasketRepo {
	return &fakeBasketRepo{
		baskets: map[uuid.UUID]*db_models.Basket{},
		items:   map[uuid.UUID][]*db_models.BasketItem{},
	}
}

func (f *fakeBasketRepo) CreateBasket(ctx context.Context, basket *db_models.Basket) error {
	if basket.ID == uuid.Nil {
		basket.ID = uuid.New()
	}
	basket.CreatedAt = time.Now().Unix()
	f.baskets[basket.ID] = basket
	return nil
}

func (f *fakeBasketRepo) GetBasketByID(ctx context.Context, id uuid.UUID) (*db_models.Basket, error) {
	b, ok := f.baskets[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	cp.Items = nil
	for _, item := range f.items[id] {
		cp.Items = append(cp.Items, *item)
	}
	return &cp, nil
}

func (f *fakeBasketRepo) GetAllBaskets(ctx context.Context) ([]db_models.Basket, error) {
	out := make([]db_models.Basket, 0, len(f.baskets))
	for id := range f.baskets {
		b, _ := f.GetBasketByID(ctx, id)
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBasketRepo) GetItem(ctx context.Context, basketID, typeID uuid.UUID) (*db_models.BasketItem, error) {
	for _, item := range f.items[basketID] {
		if item.ServiceTypeID == typeID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBasketRepo) CreateItem(ctx context.Context, item *db_models.BasketItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now().Unix()
	f.items[item.BasketID] = append(f.items[item.BasketID], item)
	return nil
}

func (f *fakeBasketRepo) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	for _, items := range f.items {
		for _, item := range items {
			if item.ID == itemID {
				item.Quantity = quantity
				return nil
			}
		}
	}
	return utils.ErrNotFound
}

func (f *fakeBasketRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	for basketID, items := range f.items {
		for i, item := range items {
			if item.ID == itemID {
				f.items[basketID] = append(items[:i], items[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeBasketRepo) SaveTotals(ctx context.Context, basket *db_models.Basket) error {
	stored, ok := f.baskets[basket.ID]
	if !ok {
		return utils.ErrNotFound
	}
	if stored.Version != basket.Version {
		return utils.ErrConflict
	}
	stored.SubtotalAmount = basket.SubtotalAmount
	stored.TaxAmount = basket.TaxAmount
	stored.TotalAmount = basket.TotalAmount
	stored.Version++
	basket.Version++
	return nil
}

func (f *fakeBasketRepo) MarkCompleted(ctx context.Context, basketID uuid.UUID) error {
	stored, ok := f.baskets[basketID]
	if !ok {
		return utils.ErrNotFound
	}
	stored.Status = db_models.BasketStatusCompleted
	return nil
}

type fakeTransactionRepo struct {
	txns map[uuid.UUID]*db_models.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txns: map[uuid.UUID]*db_models.Transaction{}}
}

func (f *fakeTransactionRepo) CreateTransaction(ctx context.Context, txn *db_models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	txn.CreatedAt = time.Now().Unix()
	cp := *txn
	f.txns[txn.ID] = &cp
	return nil
}

func (f *fakeTransactionRepo) GetTransactionByID(ctx context.Context, id uuid.UUID) (*db_models.Transaction, error) {
	if t, ok := f.txns[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTransactionRepo) ListTransactions(ctx context.Context, status, email string) ([]db_models.Transaction, error) {
	out := []db_models.Transaction{}
	for _, t := range f.txns {
		if status != "" && string(t.Status) != status {
			continue
		}
		if email != "" && t.Email != email {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TransactionStatus, description string) error {
	t, ok := f.txns[id]
	if !ok {
		return utils.ErrNotFound
	}
	t.Status = status
	t.Description = description
	return nil
}

type fakeNotifier struct {
	notified []db_models.TransactionStatus
	err      error
}

func (f *fakeNotifier) NotifyTransaction(txn *db_models.Transaction) error {
	f.notified = append(f.notified, txn.Status)
	return f.err
}

type fakeMailService struct {
	to       []string
	subjects []string
	data     []ReceiptData
	err      error
}

func (f *fakeMailService) SendTransactionReceipt(to, subject string, data ReceiptData) error {
	f.to = append(f.to, to)
	f.subjects = append(f.subjects, subject)
	f.data = append(f.data, data)
	return f.err
}
