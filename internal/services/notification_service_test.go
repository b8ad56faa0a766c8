package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esale/internal/models/db_models"
)

func receiptTxn(t *testing.T, status db_models.TransactionStatus) *db_models.Transaction {
	t.Helper()

	snapshot, err := json.Marshal([]db_models.LineItem{
		{Name: "Basic Wash", Price: decimal.RequireFromString("25.00"), Quantity: 2},
		{Name: "Air Freshener", Price: decimal.RequireFromString("2.50"), Quantity: 1},
	})
	require.NoError(t, err)

	txn := &db_models.Transaction{
		Items:    snapshot,
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Subtotal: decimal.RequireFromString("52.50"),
		Tax:      decimal.RequireFromString("5.25"),
		Amount:   decimal.RequireFromString("57.75"),
		Status:   status,
	}
	txn.ID = uuid.New()
	return txn
}

func TestNotifyTransaction(t *testing.T) {
	t.Run("approved transaction gets the approval receipt", func(t *testing.T) {
		mail := &fakeMailService{}
		notifier := NewTransactionNotifier(mail)
		txn := receiptTxn(t, db_models.TxnStatusApproved)

		require.NoError(t, notifier.NotifyTransaction(txn))

		require.Len(t, mail.subjects, 1)
		assert.Equal(t, "ada@example.com", mail.to[0])
		assert.Equal(t, "Payment Approved - Order #"+txn.ID.String()[:8], mail.subjects[0])

		data := mail.data[0]
		assert.Equal(t, "Payment Approved", data.Title)
		assert.True(t, strings.HasPrefix(data.Intro, "Hi Ada Lovelace"))
		assert.Equal(t, "52.50", data.Subtotal)
		assert.Equal(t, "5.25", data.Tax)
		assert.Equal(t, "57.75", data.Total)

		require.Len(t, data.Items, 2)
		assert.Equal(t, "Basic Wash", data.Items[0].Name)
		assert.Equal(t, "25.00", data.Items[0].UnitPrice)
		assert.Equal(t, "50.00", data.Items[0].LineTotal)
		assert.Equal(t, "2.50", data.Items[1].LineTotal)
	})

	t.Run("declined and failed share the failure template", func(t *testing.T) {
		for _, status := range []db_models.TransactionStatus{db_models.TxnStatusDeclined, db_models.TxnStatusFailed} {
			mail := &fakeMailService{}
			notifier := NewTransactionNotifier(mail)
			txn := receiptTxn(t, status)

			require.NoError(t, notifier.NotifyTransaction(txn))
			require.Len(t, mail.subjects, 1)
			assert.Equal(t, "Payment Failed - Order #"+txn.ID.String()[:8], mail.subjects[0])
			assert.Contains(t, mail.data[0].Intro, "No charge was made")
		}
	})

	t.Run("pending transaction sends nothing", func(t *testing.T) {
		mail := &fakeMailService{}
		notifier := NewTransactionNotifier(mail)

		require.NoError(t, notifier.NotifyTransaction(receiptTxn(t, db_models.TxnStatusPending)))
		assert.Empty(t, mail.to)
	})

	t.Run("mail failure is surfaced with the recipient", func(t *testing.T) {
		mail := &fakeMailService{err: errors.New("connection refused")}
		notifier := NewTransactionNotifier(mail)

		err := notifier.NotifyTransaction(receiptTxn(t, db_models.TxnStatusApproved))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ada@example.com")
	})

	t.Run("empty snapshot still renders totals", func(t *testing.T) {
		mail := &fakeMailService{}
		notifier := NewTransactionNotifier(mail)

		txn := receiptTxn(t, db_models.TxnStatusApproved)
		txn.Items = nil

		require.NoError(t, notifier.NotifyTransaction(txn))
		require.Len(t, mail.data, 1)
		assert.Empty(t, mail.data[0].Items)
		assert.Equal(t, "57.75", mail.data[0].Total)
	})
}
