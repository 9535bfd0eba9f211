package services

import (
	"context"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

// CreatePayment records a ledger entry with whatever status the caller
// supplies. This is a raw insert: it does not verify that the student holds
// a room, and it is also how settlement is represented, since existing
// entries are never modified.
func (s *Store) CreatePayment(ctx context.Context, input domain.PaymentInput) (domain.Payment, error) {
	if err := input.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return domain.Payment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payment := domain.Payment{
		ID:        s.newID(),
		StudentID: input.StudentID,
		RoomID:    input.RoomID,
		Amount:    input.Amount,
		Timestamp: s.now(),
		Month:     input.Month,
		Year:      input.Year,
		Status:    input.Status,
	}
	s.state.Payments = append(s.state.Payments, payment)
	s.persist(ctx)
	s.notifier.Success("Payment successful")
	return payment, nil
}
