//go:build unit

package httperr

import (
	"net/http"
	"testing"

	"stand-ledger/internal/pkg/errs"
	"stand-ledger/internal/usecase/commands"
	"stand-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	partial := errs.Mark(errs.New("append failed"), commands.ErrPartialApproval)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.Mark(errs.New("quantity"), commands.ErrValidation), http.StatusBadRequest},
		{"not found", errs.Mark(errs.New("gone"), commands.ErrOrderNotFound), http.StatusNotFound},
		{"staff", shared.ErrStaffRequired, http.StatusForbidden},
		{"partial approval", partial, http.StatusConflict},
		{"reconciliation", errs.Mark(partial, commands.ErrReconciliationRequired), http.StatusInternalServerError},
		{"investment", errs.Mark(errs.New("missing"), shared.ErrInvestmentUnavailable), http.StatusInternalServerError},
		{"storage", errs.Mark(errs.New("db down"), shared.ErrStorage), http.StatusInternalServerError},
		{"unknown", errs.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := StatusFor(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, msg)
		})
	}
}
