package domain

import "time"

// Payment records are owned by the payment collaborator. When a booking is
// charged up front the core mints the record and keeps its reference on the
// rental; everything beyond the reference stays with the collaborator.

type PaymentRecordStatus string

const (
	PaymentRecordStatusPending   PaymentRecordStatus = "pending"
	PaymentRecordStatusCompleted PaymentRecordStatus = "completed"
	PaymentRecordStatusFailed    PaymentRecordStatus = "failed"
	PaymentRecordStatusRefunded  PaymentRecordStatus = "refunded"
)

type Payment struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	RentalID      string              `json:"rental_id"`
	PaymentMethod string              `json:"payment_method"`
	Amount        float64             `json:"amount"`
	TransactionID string              `json:"transaction_id"`
	Status        PaymentRecordStatus `json:"status"`
	PaymentDate   time.Time           `json:"payment_date"`
	CreatedAt     time.Time           `json:"created_at"`
}
