package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusConfirmed, RentalStatusActive,
		RentalStatusCompleted, RentalStatusCancelled:
		return true
	}
	return false
}

// Blocking reports whether a rental in this status counts against vehicle
// availability.
func (s RentalStatus) Blocking() bool {
	return s == RentalStatusConfirmed || s == RentalStatusActive
}

// rentalTransitions is the customer-facing transition table. Admin status
// updates bypass it for operational corrections.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending:   {RentalStatusConfirmed, RentalStatusCancelled},
	RentalStatusConfirmed: {RentalStatusActive, RentalStatusCancelled},
	RentalStatusActive:    {RentalStatusCompleted},
	RentalStatusCompleted: {},
	RentalStatusCancelled: {},
}

func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	for _, allowed := range rentalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// RentalRating is set at most once, only on a completed rental.
type RentalRating struct {
	Score  int32     `json:"score"`
	Review string    `json:"review"`
	Date   time.Time `json:"date"`
}

type Rental struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	VehicleID       string        `json:"vehicle_id"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	TotalAmount     float64       `json:"total_amount"`
	SecurityDeposit float64       `json:"security_deposit"`
	Insurance       bool          `json:"insurance"`
	InsuranceAmount float64       `json:"insurance_amount"`
	RentalStatus    RentalStatus  `json:"rental_status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentID       string        `json:"payment_id,omitempty"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Rating          *RentalRating `json:"rating,omitempty"`
	// Payment is the collaborator's settlement record, echoed on booking
	// responses. Only its ID is persisted with the rental.
	Payment *Payment `json:"payment,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
