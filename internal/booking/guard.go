package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

// Store is the slice of booking persistence the guard needs.
type Store interface {
	FindMatching(ctx context.Context, email, treatment, date string) ([]models.Booking, error)
	Insert(ctx context.Context, b *models.Booking) error
}

// ConflictError reports an existing booking for the same email, treatment and
// date.
type ConflictError struct {
	Treatment       string
	AppointmentDate string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("You already have a booking for %s on %s", e.Treatment, e.AppointmentDate)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

type Guard struct {
	store Store
}

func NewGuard(s Store) *Guard {
	return &Guard{store: s}
}

// TryCreate inserts candidate unless a booking with the same email, treatment
// and appointment date already exists, in which case it returns a
// *ConflictError and writes nothing.
//
// The lookup and the insert are not atomic. Two concurrent identical requests
// can both pass the lookup; only a unique index on the booking key (see
// store.BookingKeyIndex) prevents the second insert, and that duplicate-key
// failure is reported as the same conflict.
func (g *Guard) TryCreate(ctx context.Context, candidate *models.Booking) (*models.Booking, error) {
	existing, err := g.store.FindMatching(ctx, candidate.Email, candidate.Treatment, candidate.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("lookup existing bookings: %w", err)
	}
	if len(existing) > 0 {
		return nil, conflictFor(candidate)
	}

	if err := g.store.Insert(ctx, candidate); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, conflictFor(candidate)
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return candidate, nil
}

func conflictFor(b *models.Booking) *ConflictError {
	return &ConflictError{Treatment: b.Treatment, AppointmentDate: b.AppointmentDate}
}
