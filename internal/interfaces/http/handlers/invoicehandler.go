package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fibra/internal/infrastructure/persistence"
	"fibra/internal/shared/logger"
	"fibra/internal/shared/utils"
)

// InvoiceHandler handles invoice listing
type InvoiceHandler struct {
	store *persistence.Store
	log   *slog.Logger
}

func NewInvoiceHandler(store *persistence.Store) *InvoiceHandler {
	return &InvoiceHandler{
		store: store,
		log:   logger.WithComponent("invoice_handler"),
	}
}

// List handles GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.store.Invoices(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list invoices", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}
