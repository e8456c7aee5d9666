package commands

import (
	"stand-ledger/internal/pkg/errs"
)

var (
	ErrValidation    = errs.New("validation failed")
	ErrOrderNotFound = errs.New("pending order not found")
	// ErrPartialApproval: the approval did not land in the ledger and the order is back in the queue.
	ErrPartialApproval = errs.New("approval could not be completed")
	// ErrReconciliationRequired: the order could neither be approved nor re-queued. Details are in the ERROR log.
	ErrReconciliationRequired = errs.New("approval requires manual reconciliation")
)
