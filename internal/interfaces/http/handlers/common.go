package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fibra/internal/infrastructure/persistence"
	"fibra/internal/interfaces/http/middleware"
	"fibra/internal/shared/utils"
)

// currentAccount resolves the authenticated account from the request context.
// It writes the error response itself when resolution fails.
func currentAccount(c *gin.Context, store *persistence.Store) (*persistence.Account, bool) {
	userID, exists := c.Get(middleware.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "falta el token de autorización")
		return nil, false
	}

	id, ok := userID.(string)
	if !ok {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error en la respuesta del servidor")
		return nil, false
	}

	account, err := store.AccountByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, false
	}
	return account, true
}
