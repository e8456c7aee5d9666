package api

import (
	"net/http"

	resdto "stand-ledger/internal/handler/dto/response"
	"stand-ledger/internal/handler/httperr"
	"stand-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List catalog items
// @Description Get the stand's menu
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ItemResponse
// @Failure 500 {object} httperr.Response
// @Router /api/items [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	views, err := h.q.ListItems(c.Request.Context())
	if err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	res, err := resdto.FromItemViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render items", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
