package wizard

import (
	"context"

	"laundrybook/models"
)

// SessionService manages the stateful booking wizard: one session per
// in-progress booking, mutated only through these operations.
type SessionService interface {
	Start(ctx context.Context) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Update(ctx context.Context, sessionID string, update models.DraftUpdate) (*models.BookingSession, error)
	Advance(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	AddService(ctx context.Context, sessionID, itemID string, washType models.WashType) (*models.BookingSession, error)
	RemoveService(ctx context.Context, sessionID, itemID string) (*models.BookingSession, error)
	Cancel(ctx context.Context, sessionID string) error
}
