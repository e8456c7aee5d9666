package queries

import (
	"context"
	"errors"
	"log/slog"
)

// degradable reports whether a failed collection read may be served as an empty collection.
// Cancellation belongs to the caller and is returned as is.
func degradable(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func logDegraded(logger *slog.Logger, collection string, err error) {
	logger.Error("collection unreadable, serving it as empty",
		"collection", collection,
		"error", err.Error())
}
