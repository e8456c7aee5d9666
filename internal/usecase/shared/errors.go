package shared

import (
	"stand-ledger/internal/domain/staff"
	"stand-ledger/internal/pkg/errs"
)

// Errors shared by the command and query sides.
var (
	ErrStaffRequired         = errs.New("staff session required")
	ErrStorage               = errs.New("storage operation failed")
	ErrInvestmentUnavailable = errs.New("initial investment is unavailable")
)

func RequireStaff(actor staff.Actor) error {
	if !actor.IsStaff() {
		return ErrStaffRequired
	}
	return nil
}

// StorageError marks err as a storage failure unless it already carries a sentinel of its own.
func StorageError(err error, msg string, known ...error) error {
	if err == nil {
		return nil
	}
	if errs.IsAny(err, known...) {
		return err
	}
	return errs.Mark(errs.Wrap(err, msg), ErrStorage)
}
