package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "fibra/internal/domain/portal"
	"fibra/internal/infrastructure/auth"
	"fibra/internal/infrastructure/persistence"
	"fibra/internal/shared/errors"
	"fibra/internal/shared/logger"
	"fibra/internal/shared/utils"
)

const invalidCredentialsMessage = "Número de Cliente o Contraseña incorrectos."

// AuthHandler handles login requests
type AuthHandler struct {
	store      *persistence.Store
	jwtService *auth.JWTService
	log        *slog.Logger
}

func NewAuthHandler(store *persistence.Store, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		store:      store,
		jwtService: jwtService,
		log:        logger.WithComponent("auth_handler"),
	}
}

type loginRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, invalidCredentialsMessage)
		return
	}

	account, err := h.store.AccountByClientNumber(c.Request.Context(), req.ClientID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			utils.ErrorResponse(c, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}
		h.log.Error("account lookup failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !h.store.VerifyPassword(account, req.Password) {
		h.log.Warn("rejected login", "client_id", req.ClientID)
		utils.ErrorResponse(c, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	}

	token, err := h.jwtService.Generate(account.ID)
	if err != nil {
		h.log.Error("failed to issue token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error en la respuesta del servidor")
		return
	}

	h.log.Info("session issued", "client_id", req.ClientID)
	c.JSON(http.StatusOK, loginResponse{User: account.ToEntity(), Token: token})
}
