package domain

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Payment is an append-only ledger entry. Rows are never updated; settling a
// pending month means recording a fresh paid entry, and the latest entry for
// a student is whichever comes last in insertion order.
type Payment struct {
	ID        string        `json:"id"`
	StudentID string        `json:"student_id"`
	RoomID    string        `json:"room_id"`
	Amount    float64       `json:"amount"`
	Timestamp time.Time     `json:"timestamp"`
	Month     string        `json:"month"`
	Year      int           `json:"year"`
	Status    PaymentStatus `json:"status"`
}

type PaymentInput struct {
	StudentID string        `validate:"required"`
	RoomID    string        `validate:"required"`
	Amount    float64       `validate:"gte=0"`
	Month     string        `validate:"required"`
	Year      int           `validate:"required"`
	Status    PaymentStatus `validate:"required,oneof=pending paid"`
}

func (i PaymentInput) Validate() error {
	return validateStruct(i)
}
