package handlers

import (
	"net/http"

	"travelbackend/internal/http/middleware"
	"travelbackend/internal/services"
	"travelbackend/internal/utils"

	"github.com/gin-gonic/gin"
)

// TransactionHandler is the admin view over payments and refunds.
type TransactionHandler struct {
	Service services.TransactionService
}

type createPaymentRequest struct {
	BookingID     int64   `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// POST /api/transactions
func (h TransactionHandler) Create(c *gin.Context) {
	var req createPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	txn, err := h.Service.CreatePayment(services.CreatePaymentInput{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "transactions", "create", "identifier="+txn.Identifier)
	c.JSON(http.StatusCreated, gin.H{"transaction": transactionJSON(txn)})
}

// GET /api/transactions?status=&booking_id=
func (h TransactionHandler) List(c *gin.Context) {
	txns, err := h.Service.ListTransactions(c.Query("status"), c.Query("booking_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactionsJSON(txns)})
}

// GET /api/transactions/:id
func (h TransactionHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	txn, err := h.Service.GetTransaction(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transactionJSON(txn)})
}

type updateTransactionStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/transactions/:id/status
func (h TransactionHandler) UpdateStatus(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req updateTransactionStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	txn, err := h.Service.UpdateStatus(id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "transactions", "update_status", "identifier="+txn.Identifier)
	c.JSON(http.StatusOK, gin.H{"transaction": transactionJSON(txn)})
}
