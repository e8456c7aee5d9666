package api

import (
	"net/http"

	reqdto "stand-ledger/internal/handler/dto/request"
	resdto "stand-ledger/internal/handler/dto/response"
	"stand-ledger/internal/handler/httperr"
	"stand-ledger/internal/handler/middleware"
	"stand-ledger/internal/usecase/commands"
	"stand-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	cmds commands.SaleCommands
	q    queries.SaleQueries
}

func NewSaleHandler(cmds commands.SaleCommands, q queries.SaleQueries) *SaleHandler {
	return &SaleHandler{cmds: cmds, q: q}
}

// @Summary List sales
// @Description Get every ledger record in insertion order
// @Tags sales
// @Produce json
// @Success 200 {array} resdto.SaleResponse
// @Router /api/sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	views, err := h.q.ListSales(c.Request.Context())
	if err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleViews(views))
}

// @Summary Record direct sales
// @Description Append counter sales to the ledger as one batch
// @Tags sales
// @Accept json
// @Produce json
// @Param request body []reqdto.SaleLine true "Sale lines"
// @Success 201 {object} resdto.RecordSalesResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/sales [post]
func (h *SaleHandler) RecordSales(c *gin.Context) {
	var lines []reqdto.SaleLine
	if err := c.ShouldBindJSON(&lines); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if len(lines) == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrNoSaleLines, "No sales data provided", nil)
		return
	}
	inputs, err := reqdto.ToInputs(lines)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.RecordDirectSales(c.Request.Context(), inputs)
	if err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.NewRecordSalesResponse(result.RecordIDs, result.Total.Number()))
}

// @Summary Sales summary
// @Description Totals, remaining investment and per-item sales, recomputed from the ledger
// @Tags sales
// @Produce json
// @Success 200 {object} resdto.SummaryResponse
// @Failure 500 {object} httperr.Response
// @Router /api/summary [get]
func (h *SaleHandler) GetSummary(c *gin.Context) {
	view, err := h.q.GetSummary(c.Request.Context())
	if err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummaryView(view))
}

// @Summary Clear sales history
// @Description Remove every ledger record. The initial investment is kept.
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ClearSalesResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/clear-sales [post]
func (h *SaleHandler) ClearSales(c *gin.Context) {
	removed, err := h.cmds.ClearSalesHistory(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ClearSalesResponse{
		Success: true,
		Message: "Sales history and summary cleared",
		Removed: removed,
	})
}
