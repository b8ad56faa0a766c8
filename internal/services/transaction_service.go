package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"esale/internal/models/db_models"
	"esale/internal/models/request_models"
	"esale/internal/repositories"
	"esale/pkg/utils"
)

type TransactionServiceInterface interface {
	Checkout(ctx context.Context, req *request_models.CreateTransactionRequest) (*db_models.Transaction, error)
	ProcessPayment(ctx context.Context, txnID uuid.UUID, cardNumber string) (*db_models.Transaction, error)
	GetTransaction(ctx context.Context, txnID uuid.UUID) (*db_models.Transaction, error)
	ListTransactions(ctx context.Context, status, email string) ([]db_models.Transaction, error)
	SendNotification(ctx context.Context, txnID uuid.UUID) error
}

func NewTransactionService(
	txnRepo repositories.TransactionRepositoryInterface,
	basketRepo repositories.BasketRepositoryInterface,
	serviceRepo repositories.ServiceRepositoryInterface,
	notifier NotificationServiceInterface,
	taxRate decimal.Decimal,
) TransactionServiceInterface {
	return &transactionService{
		txnRepo:     txnRepo,
		basketRepo:  basketRepo,
		serviceRepo: serviceRepo,
		notifier:    notifier,
		taxRate:     taxRate,
	}
}

type transactionService struct {
	txnRepo     repositories.TransactionRepositoryInterface
	basketRepo  repositories.BasketRepositoryInterface
	serviceRepo repositories.ServiceRepositoryInterface
	notifier    NotificationServiceInterface
	taxRate     decimal.Decimal
}

const (
	noteDeclined       = "[Transaction Declined]"
	noteGatewayFailure = "[Gateway Failure]"
)

// Checkout validates the submitted fields, snapshots the basket, derives the
// amount, resolves payment through the simulator and persists the result.
// Declined and gateway-failure outcomes return the persisted transaction
// together with a sentinel error so callers can signal the right class.
func (s *transactionService) Checkout(ctx context.Context, req *request_models.CreateTransactionRequest) (*db_models.Transaction, error) {
	v := &utils.ValidationError{}

	cleanCard := ""
	if req.CardNumber != "" {
		var err error
		cleanCard, err = ValidateCardNumber(req.CardNumber)
		if err != nil {
			v.Add("card_number", err.Error())
		}
	}
	if req.ExpiryDate != "" {
		if err := ValidateExpiryDate(req.ExpiryDate, time.Now()); err != nil {
			v.Add("expiry_date", err.Error())
		}
	}
	if req.CVV != "" {
		if err := ValidateCVV(req.CVV); err != nil {
			v.Add("cvv", err.Error())
		}
	}

	items, subtotal, tax, amount, err := s.resolveAmount(ctx, req, v)
	if err != nil {
		return nil, err
	}
	if v.HasErrors() {
		return nil, v
	}

	snapshot, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal basket snapshot: %w", err)
	}

	txn := &db_models.Transaction{
		BasketID:    req.BasketID,
		Items:       snapshot,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		CardNumber:  cleanCard,
		ExpiryDate:  req.ExpiryDate,
		CVV:         req.CVV,
		Subtotal:    subtotal,
		Tax:         tax,
		Amount:      amount,
		Status:      db_models.TxnStatusPending,
		Description: req.Description,
	}

	var outcomeErr error
	if cleanCard != "" {
		outcomeErr = s.applyOutcome(txn, SimulatePayment(cleanCard))
	}

	if err := s.txnRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	// The basket is frozen once a checkout has been recorded against it.
	if req.BasketID != nil {
		if err := s.basketRepo.MarkCompleted(ctx, *req.BasketID); err != nil {
			log.Printf("transaction %s: failed to mark basket %s completed: %v", txn.ID, *req.BasketID, err)
		}
	}

	s.dispatchNotification(txn)

	return txn, outcomeErr
}

// ProcessPayment resolves a still-PENDING transaction. Processing twice is a
// conflict; the first terminal status never changes.
func (s *transactionService) ProcessPayment(ctx context.Context, txnID uuid.UUID, cardNumber string) (*db_models.Transaction, error) {
	txn, err := s.txnRepo.GetTransactionByID(ctx, txnID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, fmt.Errorf("transaction %s: %w", txnID, utils.ErrNotFound)
	}
	if txn.Status != db_models.TxnStatusPending {
		return nil, fmt.Errorf("transaction has already been processed: %w", utils.ErrConflict)
	}

	card := cardNumber
	if card == "" {
		card = txn.CardNumber
	}
	if card == "" {
		return nil, utils.NewValidationError("card_number", "card number is required for payment processing")
	}
	cleanCard, err := ValidateCardNumber(card)
	if err != nil {
		return nil, utils.NewValidationError("card_number", err.Error())
	}

	outcomeErr := s.applyOutcome(txn, SimulatePayment(cleanCard))

	if err := s.txnRepo.UpdateStatus(ctx, txn.ID, txn.Status, txn.Description); err != nil {
		return nil, fmt.Errorf("update transaction status: %w", err)
	}

	s.dispatchNotification(txn)

	return txn, outcomeErr
}

func (s *transactionService) GetTransaction(ctx context.Context, txnID uuid.UUID) (*db_models.Transaction, error) {
	txn, err := s.txnRepo.GetTransactionByID(ctx, txnID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, fmt.Errorf("transaction %s: %w", txnID, utils.ErrNotFound)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, status, email string) ([]db_models.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx, status, email)
}

func (s *transactionService) SendNotification(ctx context.Context, txnID uuid.UUID) error {
	txn, err := s.txnRepo.GetTransactionByID(ctx, txnID)
	if err != nil {
		return err
	}
	if txn == nil {
		return fmt.Errorf("transaction %s: %w", txnID, utils.ErrNotFound)
	}
	return s.notifier.NotifyTransaction(txn)
}

// resolveAmount derives subtotal, tax and amount from whichever basket
// representation the request carries. Precedence: basket reference, then
// embedded line items, then a bare client-supplied amount.
func (s *transactionService) resolveAmount(
	ctx context.Context,
	req *request_models.CreateTransactionRequest,
	v *utils.ValidationError,
) ([]db_models.LineItem, decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	zero := decimal.Zero

	switch {
	case req.BasketID != nil:
		basket, err := s.basketRepo.GetBasketByID(ctx, *req.BasketID)
		if err != nil {
			return nil, zero, zero, zero, err
		}
		if basket == nil {
			return nil, zero, zero, zero, fmt.Errorf("basket %s: %w", *req.BasketID, utils.ErrNotFound)
		}
		if basket.Status != db_models.BasketStatusOpen {
			return nil, zero, zero, zero, fmt.Errorf("basket %s already checked out: %w", *req.BasketID, utils.ErrConflict)
		}

		items := make([]db_models.LineItem, 0, len(basket.Items))
		for _, item := range basket.Items {
			serviceType, err := s.serviceRepo.GetTypeByID(ctx, item.ServiceTypeID)
			if err != nil {
				return nil, zero, zero, zero, err
			}
			if serviceType == nil {
				log.Printf("checkout: skipping unresolvable service type %s in basket %s", item.ServiceTypeID, basket.ID)
				continue
			}
			items = append(items, db_models.LineItem{
				Name:     serviceType.Name,
				Price:    serviceType.Price,
				Quantity: item.Quantity,
			})
		}

		subtotal := basket.SubtotalAmount
		tax := basket.TaxAmount
		return items, subtotal, tax, subtotal.Add(tax), nil

	case len(req.Items) > 0:
		items := make([]db_models.LineItem, 0, len(req.Items))
		subtotal := decimal.Zero
		for i, line := range req.Items {
			if line.Quantity < 1 {
				v.Add(fmt.Sprintf("items[%d].quantity", i), "quantity must be at least 1")
				continue
			}

			var resolved db_models.LineItem
			switch {
			case line.ServiceTypeID != nil:
				serviceType, err := s.serviceRepo.GetTypeByID(ctx, *line.ServiceTypeID)
				if err != nil {
					return nil, zero, zero, zero, err
				}
				if serviceType == nil {
					log.Printf("checkout: skipping unresolvable service type %s", *line.ServiceTypeID)
					continue
				}
				resolved = db_models.LineItem{Name: serviceType.Name, Price: serviceType.Price, Quantity: line.Quantity}
			case line.Name != "" && line.Price != nil:
				resolved = db_models.LineItem{Name: line.Name, Price: *line.Price, Quantity: line.Quantity}
			default:
				v.Add(fmt.Sprintf("items[%d]", i), "line item needs either service_type_id or name and price")
				continue
			}

			items = append(items, resolved)
			subtotal = subtotal.Add(resolved.Price.Mul(decimal.NewFromInt(int64(resolved.Quantity))))
		}

		tax := subtotal.Mul(s.taxRate).Round(2)
		return items, subtotal, tax, subtotal.Add(tax), nil

	default:
		if req.Amount == nil {
			v.Add("amount", "amount is required when no basket is attached")
			return nil, zero, zero, zero, nil
		}
		// Client-supplied amounts are taken as-is, tax included.
		return []db_models.LineItem{}, *req.Amount, zero, *req.Amount, nil
	}
}

// applyOutcome moves the transaction to its terminal status and returns the
// sentinel error matching the outcome class, nil when approved.
func (s *transactionService) applyOutcome(txn *db_models.Transaction, outcome PaymentOutcome) error {
	switch outcome {
	case OutcomeDeclined:
		txn.Status = db_models.TxnStatusDeclined
		txn.Description = annotate(txn.Description, noteDeclined)
		return fmt.Errorf("payment declined: %w", utils.ErrPaymentDeclined)
	case OutcomeGatewayFailure:
		txn.Status = db_models.TxnStatusFailed
		txn.Description = annotate(txn.Description, noteGatewayFailure)
		return fmt.Errorf("gateway failure - payment could not be processed: %w", utils.ErrGatewayFailure)
	default:
		txn.Status = db_models.TxnStatusApproved
		return nil
	}
}

// dispatchNotification is best-effort: checkout success never depends on the
// email going out.
func (s *transactionService) dispatchNotification(txn *db_models.Transaction) {
	if !txn.Status.Terminal() {
		return
	}
	if err := s.notifier.NotifyTransaction(txn); err != nil {
		log.Printf("transaction %s: failed to send notification email: %v", txn.ID, err)
	}
}

func annotate(description, note string) string {
	if description == "" {
		return note
	}
	return description + " " + note
}
