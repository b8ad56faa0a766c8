package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esale/internal/models/request_models"
	"esale/internal/models/response_models"
	"esale/internal/services"
	"esale/pkg/utils"
)

type TransactionsController struct {
	txnService services.TransactionServiceInterface
}

func NewTransactionsController(txnService services.TransactionServiceInterface) *TransactionsController {
	return &TransactionsController{txnService: txnService}
}

// CreateTransactionHandler runs checkout. Declined and gateway-failure
// outcomes still return the persisted transaction so the client can
// reconcile id and status from the error body.
func (tc *TransactionsController) CreateTransactionHandler(c *gin.Context) {
	var req request_models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	txn, err := tc.txnService.Checkout(c.Request.Context(), &req)
	switch {
	case err == nil:
		utils.RespondSuccess(c, http.StatusCreated, response_models.NewTransactionResponse(txn), "Transaction created")
	case errors.Is(err, utils.ErrPaymentDeclined):
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Payment declined", response_models.NewTransactionResponse(txn))
	case errors.Is(err, utils.ErrGatewayFailure):
		utils.RespondErrorWithData(c, http.StatusBadGateway, "Gateway failure - payment could not be processed", response_models.NewTransactionResponse(txn))
	default:
		utils.HandleServiceError(c, err)
	}
}

func (tc *TransactionsController) ProcessPaymentHandler(c *gin.Context) {
	txnID, ok := tc.transactionID(c)
	if !ok {
		return
	}

	// Body is optional; it may override the stored card number.
	var req request_models.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	txn, err := tc.txnService.ProcessPayment(c.Request.Context(), txnID, req.CardNumber)
	switch {
	case err == nil:
		utils.RespondSuccess(c, http.StatusOK, response_models.NewTransactionResponse(txn), "Payment approved successfully")
	case errors.Is(err, utils.ErrPaymentDeclined):
		utils.RespondErrorWithData(c, http.StatusBadRequest, "Payment declined", response_models.NewTransactionResponse(txn))
	case errors.Is(err, utils.ErrGatewayFailure):
		utils.RespondErrorWithData(c, http.StatusInternalServerError, "Gateway failure - payment could not be processed", response_models.NewTransactionResponse(txn))
	default:
		utils.HandleServiceError(c, err)
	}
}

func (tc *TransactionsController) ListTransactionsHandler(c *gin.Context) {
	status := c.Query("status")
	email := c.Query("email")

	txns, err := tc.txnService.ListTransactions(c.Request.Context(), status, email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewTransactionListResponse(txns), "Fetched transactions successfully")
}

func (tc *TransactionsController) GetTransactionHandler(c *gin.Context) {
	txnID, ok := tc.transactionID(c)
	if !ok {
		return
	}

	txn, err := tc.txnService.GetTransaction(c.Request.Context(), txnID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, response_models.NewTransactionResponse(txn), "Fetched transaction successfully")
}

func (tc *TransactionsController) SendEmailNotificationHandler(c *gin.Context) {
	txnID, ok := tc.transactionID(c)
	if !ok {
		return
	}

	if err := tc.txnService.SendNotification(c.Request.Context(), txnID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to send notification email")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "Notification email dispatched")
}

func (tc *TransactionsController) transactionID(c *gin.Context) (uuid.UUID, bool) {
	txnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction id")
		return uuid.Nil, false
	}
	return txnID, true
}
