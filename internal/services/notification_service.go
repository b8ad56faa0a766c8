package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"esale/internal/models/db_models"
)

type NotificationServiceInterface interface {
	NotifyTransaction(txn *db_models.Transaction) error
}

func NewTransactionNotifier(mail IMailService) NotificationServiceInterface {
	return &transactionNotifier{mail: mail}
}

// transactionNotifier picks the status-appropriate receipt and dispatches it
// to the transaction's customer email.
type transactionNotifier struct {
	mail IMailService
}

func (n *transactionNotifier) NotifyTransaction(txn *db_models.Transaction) error {
	shortID := txn.ID.String()[:8]

	var subject, title, intro string
	switch txn.Status {
	case db_models.TxnStatusApproved:
		subject = fmt.Sprintf("Payment Approved - Order #%s", shortID)
		title = "Payment Approved"
		intro = fmt.Sprintf("Hi %s, your payment went through. Here is a summary of your order.", txn.FullName)
	case db_models.TxnStatusDeclined, db_models.TxnStatusFailed:
		subject = fmt.Sprintf("Payment Failed - Order #%s", shortID)
		title = "Payment Failed"
		intro = fmt.Sprintf("Hi %s, unfortunately we could not process your payment. No charge was made. You can retry with a different payment method.", txn.FullName)
	default:
		log.Printf("transaction %s: no email template for status %s", txn.ID, txn.Status)
		return nil
	}

	data := ReceiptData{
		Title:    title,
		Intro:    intro,
		OrderID:  shortID,
		Items:    receiptItems(txn),
		Subtotal: txn.Subtotal.StringFixed(2),
		Tax:      txn.Tax.StringFixed(2),
		Total:    txn.Amount.StringFixed(2),
	}

	if err := n.mail.SendTransactionReceipt(txn.Email, subject, data); err != nil {
		return fmt.Errorf("send receipt to %s: %w", txn.Email, err)
	}
	log.Printf("transaction %s: receipt email sent to %s", txn.ID, txn.Email)
	return nil
}

// receiptItems projects the jsonb snapshot into the view the templates
// expect, with all line math precomputed.
func receiptItems(txn *db_models.Transaction) []ReceiptItem {
	var lines []db_models.LineItem
	if len(txn.Items) > 0 {
		if err := json.Unmarshal(txn.Items, &lines); err != nil {
			log.Printf("transaction %s: unreadable items snapshot: %v", txn.ID, err)
			return nil
		}
	}

	items := make([]ReceiptItem, 0, len(lines))
	for _, line := range lines {
		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, ReceiptItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price.StringFixed(2),
			LineTotal: lineTotal.StringFixed(2),
		})
	}
	return items
}
