package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fibra/internal/infrastructure/persistence"
	"fibra/internal/shared/logger"
	"fibra/internal/shared/utils"
)

// NewsHandler handles the news feed
type NewsHandler struct {
	store *persistence.Store
	log   *slog.Logger
}

func NewNewsHandler(store *persistence.Store) *NewsHandler {
	return &NewsHandler{
		store: store,
		log:   logger.WithComponent("news_handler"),
	}
}

// List handles GET /news. Bodies are markdown; with ?format=html each item's
// content is replaced by sanitized HTML.
func (h *NewsHandler) List(c *gin.Context) {
	news, err := h.store.News(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list news", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if c.Query("format") == "html" {
		for i := range news {
			html, err := utils.RenderMarkdown(news[i].Content)
			if err != nil {
				h.log.Error("failed to render news item", "news_id", news[i].ID, "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "Error en la respuesta del servidor")
				return
			}
			news[i].Content = html
		}
	}

	c.JSON(http.StatusOK, news)
}
