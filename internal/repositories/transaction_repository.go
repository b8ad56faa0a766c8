package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"esale/internal/models/db_models"
)

type TransactionRepositoryInterface interface {
	CreateTransaction(ctx context.Context, txn *db_models.Transaction) error
	GetTransactionByID(ctx context.Context, txnID uuid.UUID) (*db_models.Transaction, error)
	ListTransactions(ctx context.Context, status, email string) ([]db_models.Transaction, error)
	UpdateStatus(ctx context.Context, txnID uuid.UUID, status db_models.TransactionStatus, description string) error
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

type TransactionRepository struct {
	db *gorm.DB
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(txn).Error
	})
}

func (r *TransactionRepository) GetTransactionByID(ctx context.Context, txnID uuid.UUID) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).Preload("Basket.Items").Where("id = ?", txnID).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, status, email string) ([]db_models.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Transaction{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if email != "" {
		query = query.Where("email = ?", email)
	}

	var txns []db_models.Transaction
	if err := query.Order("created_at DESC").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *TransactionRepository) UpdateStatus(ctx context.Context, txnID uuid.UUID, status db_models.TransactionStatus, description string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ?", txnID).
		Updates(map[string]interface{}{
			"status":      status,
			"description": description,
		}).Error
}
