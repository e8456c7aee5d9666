package api

import (
	"net/http"
	"strconv"

	reqdto "stand-ledger/internal/handler/dto/request"
	resdto "stand-ledger/internal/handler/dto/response"
	"stand-ledger/internal/handler/httperr"
	"stand-ledger/internal/handler/middleware"
	"stand-ledger/internal/usecase/commands"
	"stand-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Submit customer order
// @Description Queue a customer order for staff approval
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerOrderRequest true "Customer order"
// @Success 201 {object} resdto.SubmitOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/customer-order [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req reqdto.CustomerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.SubmitOrder(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.SubmitOrderResponse{
		Success:     true,
		OrderID:     result.OrderID.String(),
		TotalAmount: result.TotalAmount.Number(),
	})
}

// @Summary List pending orders
// @Description Orders awaiting a decision, oldest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PendingOrderResponse
// @Failure 401 {object} httperr.Response
// @Router /api/pending-orders [get]
func (h *OrderHandler) ListPending(c *gin.Context) {
	views, err := h.q.ListPending(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPendingOrderViews(views))
}

// @Summary Approve order
// @Description Move a pending order into the ledger
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/approve-order/{id} [post]
func (h *OrderHandler) Approve(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.cmds.ApproveOrder(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Reject order
// @Description Remove a pending order without touching the ledger
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reject-order/{id} [post]
func (h *OrderHandler) Reject(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.cmds.RejectOrder(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary List order decisions
// @Description Most recent approvals and rejections first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max results (default 50, max 200)"
// @Success 200 {array} resdto.DecisionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/order-decisions [get]
func (h *OrderHandler) ListDecisions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	views, err := h.q.ListDecisions(c.Request.Context(), middleware.GetActor(c), limit)
	if err != nil {
		httperr.AbortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecisionViews(views))
}

func orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return uuid.Nil, false
	}
	return id, true
}
