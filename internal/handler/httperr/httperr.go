package httperr

import (
	"net/http"

	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/commands"
	"stand-ledger/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps a core error to its HTTP status and a client-safe message.
// Reconciliation failures are checked before partial approval since they carry both marks.
func StatusFor(err error) (int, string) {
	switch {
	case errs.Is(err, commands.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, commands.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errs.Is(err, shared.ErrStaffRequired):
		return http.StatusForbidden, "Staff session required"
	case errs.Is(err, commands.ErrReconciliationRequired):
		return http.StatusInternalServerError, "Approval needs manual reconciliation"
	case errs.Is(err, commands.ErrPartialApproval):
		return http.StatusConflict, "Approval did not complete, the order is still pending"
	case errs.Is(err, shared.ErrInvestmentUnavailable):
		return http.StatusInternalServerError, "Initial investment is unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// AbortWithCoreError aborts with the status StatusFor picks. Validation errors expose their text.
func AbortWithCoreError(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	var detail any
	if status == http.StatusBadRequest {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}
