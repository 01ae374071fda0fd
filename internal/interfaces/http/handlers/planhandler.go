package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "fibra/internal/domain/portal"
	"fibra/internal/infrastructure/persistence"
	"fibra/internal/shared/errors"
	"fibra/internal/shared/logger"
	"fibra/internal/shared/utils"
)

// PlanHandler handles plan catalog requests
type PlanHandler struct {
	store *persistence.Store
	log   *slog.Logger
}

func NewPlanHandler(store *persistence.Store) *PlanHandler {
	return &PlanHandler{
		store: store,
		log:   logger.WithComponent("plan_handler"),
	}
}

// List handles GET /plans
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.store.Plans(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list plans", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Current handles GET /plans/current. A dangling plan reference falls back to
// the first catalog entry instead of failing.
func (h *PlanHandler) Current(c *gin.Context) {
	account, ok := currentAccount(c, h.store)
	if !ok {
		return
	}

	plans, err := h.store.Plans(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list plans", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if len(plans) == 0 {
		utils.ErrorResponse(c, http.StatusNotFound, "plan no encontrado")
		return
	}

	if plan := domain.FindPlan(plans, account.PlanID); plan != nil {
		c.JSON(http.StatusOK, plan)
		return
	}
	c.JSON(http.StatusOK, plans[0])
}

type changePlanRequest struct {
	NewPlanID int `json:"newPlanId" binding:"required"`
}

type operationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Change handles POST /plans/change
func (h *PlanHandler) Change(c *gin.Context) {
	var req changePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	account, ok := currentAccount(c, h.store)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.PlanByID(ctx, req.NewPlanID); err != nil {
		if errors.IsNotFoundError(err) {
			utils.ErrorResponse(c, http.StatusNotFound, "plan no encontrado")
			return
		}
		h.log.Error("failed to load plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.store.UpdateAccountPlan(ctx, account.ID, req.NewPlanID); err != nil {
		h.log.Error("failed to change plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.log.Info("plan changed", "account_id", account.ID, "plan_id", req.NewPlanID)
	c.JSON(http.StatusOK, operationResponse{
		Success: true,
		Message: "Tu plan se actualizará en el próximo ciclo de facturación.",
	})
}
