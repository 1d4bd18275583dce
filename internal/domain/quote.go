package domain

import "time"

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusSent, QuoteStatusAccepted,
		QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// Terminal reports whether no further customer-facing transition is possible.
func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected || s == QuoteStatusExpired
}

// CustomerInfo identifies a guest requester. A quote references either a
// user or guest customer info, never both and never neither.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (c CustomerInfo) Complete() bool {
	return c.Name != "" && c.Email != "" && c.Phone != ""
}

type AdditionalServices struct {
	Insurance        bool `json:"insurance"`
	GPS              bool `json:"gps"`
	ChildSeat        bool `json:"child_seat"`
	AdditionalDriver bool `json:"additional_driver"`
}

// PriceBreakdown is the Pricing Calculator output stored on a quote.
// All monetary fields are non-negative and rounded to cents. The security
// deposit is a refundable hold and is excluded from TotalAmount.
type PriceBreakdown struct {
	BaseAmount               float64 `json:"base_amount"`
	AdditionalServicesAmount float64 `json:"additional_services_amount"`
	InsuranceAmount          float64 `json:"insurance_amount"`
	Taxes                    float64 `json:"taxes"`
	SecurityDeposit          float64 `json:"security_deposit"`
	TotalAmount              float64 `json:"total_amount"`
}

type RentalPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type Quote struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id,omitempty"`
	CustomerInfo       *CustomerInfo      `json:"customer_info,omitempty"`
	VehicleID          string             `json:"vehicle_id"`
	RentalPeriod       RentalPeriod       `json:"rental_period"`
	AdditionalServices AdditionalServices `json:"additional_services"`
	SpecialRequests    string             `json:"special_requests,omitempty"`
	Pricing            PriceBreakdown     `json:"pricing"`
	Status             QuoteStatus        `json:"status"`
	ValidUntil         time.Time          `json:"valid_until"`
	AdminNotes         string             `json:"admin_notes,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// Acceptable reports whether the quote can still be converted into a rental
// at the given instant. Only admin-sent, unexpired quotes qualify.
func (q *Quote) Acceptable(now time.Time) bool {
	return q.Status == QuoteStatusSent && !q.ValidUntil.Before(now)
}
