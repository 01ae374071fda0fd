package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fibra/internal/shared/logger"
	"fibra/internal/shared/utils"
)

// PaymentHandler handles out-of-band payment reports
type PaymentHandler struct {
	log *slog.Logger
}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{
		log: logger.WithComponent("payment_handler"),
	}
}

type reportPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"`
}

// Report handles POST /payments/report. The report is acknowledged with a
// tracking reference; reconciliation against the invoice ledger happens in a
// back-office process, not here.
func (h *PaymentHandler) Report(c *gin.Context) {
	var req reportPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "el monto y la fecha del pago son obligatorios")
		return
	}

	if _, err := time.Parse(time.DateOnly, req.Date); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "la fecha del pago es inválida")
		return
	}

	reference := uuid.NewString()
	h.log.Info("payment reported",
		"reference", reference,
		"amount", utils.FormatAmountARS(req.Amount),
		"date", req.Date)

	c.JSON(http.StatusOK, operationResponse{
		Success: true,
		Message: fmt.Sprintf("Hemos recibido tu información de pago (ref. %s). Se procesará en las próximas 24hs hábiles.", reference),
	})
}
