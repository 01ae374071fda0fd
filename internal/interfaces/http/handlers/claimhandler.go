package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "fibra/internal/domain/portal"
	"fibra/internal/infrastructure/persistence"
	"fibra/internal/shared/id"
	"fibra/internal/shared/logger"
	"fibra/internal/shared/utils"
)

// ClaimHandler handles claim listing and creation
type ClaimHandler struct {
	store *persistence.Store
	log   *slog.Logger
}

func NewClaimHandler(store *persistence.Store) *ClaimHandler {
	return &ClaimHandler{
		store: store,
		log:   logger.WithComponent("claim_handler"),
	}
}

// List handles GET /claims
func (h *ClaimHandler) List(c *gin.Context) {
	claims, err := h.store.Claims(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list claims", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, claims)
}

type createClaimRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Create handles POST /claims. The server assigns id, date, and the initial
// open status.
func (h *ClaimHandler) Create(c *gin.Context) {
	var req createClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "el tipo y la descripción del reclamo son obligatorios")
		return
	}

	claimID, err := id.NewClaimID()
	if err != nil {
		h.log.Error("failed to generate claim id", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error en la respuesta del servidor")
		return
	}

	claim := domain.Claim{
		ID:          claimID,
		Date:        time.Now().Format(time.DateOnly),
		Type:        req.Type,
		Description: req.Description,
		Status:      domain.ClaimStatusOpen,
	}

	if err := h.store.CreateClaim(c.Request.Context(), claim); err != nil {
		h.log.Error("failed to create claim", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.log.Info("claim created", "claim_id", claim.ID, "type", claim.Type)
	c.JSON(http.StatusCreated, claim)
}
