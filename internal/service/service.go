package service

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/availability"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

// CreateQuoteInput carries everything needed to request a new quote.
// Either UserID or CustomerInfo must identify the requester.
type CreateQuoteInput struct {
	UserID             string
	CustomerInfo       domain.CustomerInfo
	VehicleID          string
	StartDate          time.Time
	EndDate            time.Time
	AdditionalServices domain.AdditionalServices
	SpecialRequests    string
}

// CustomPricing holds admin overrides for individual pricing fields.
// Nil fields leave the existing breakdown value untouched.
type CustomPricing struct {
	BaseAmount               *float64 `json:"base_amount,omitempty"`
	AdditionalServicesAmount *float64 `json:"additional_services_amount,omitempty"`
	InsuranceAmount          *float64 `json:"insurance_amount,omitempty"`
	Taxes                    *float64 `json:"taxes,omitempty"`
	SecurityDeposit          *float64 `json:"security_deposit,omitempty"`
	TotalAmount              *float64 `json:"total_amount,omitempty"`
}

// QuoteService manages the quote lifecycle from request to acceptance.
type QuoteService interface {
	Create(ctx context.Context, input CreateQuoteInput) (*domain.Quote, error)
	Get(ctx context.Context, userID string, isAdmin bool, quoteID string) (*domain.Quote, error)
	ListMine(ctx context.Context, userID string, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error)
	ListAll(ctx context.Context, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error)
	AdminUpdateStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, pricing *CustomPricing, adminNotes string) (*domain.Quote, error)
	Accept(ctx context.Context, userID string, quoteID string) (*domain.Rental, error)
	ExpireStale(ctx context.Context) (int64, error)
}

// CreateRentalInput carries a direct booking request.
type CreateRentalInput struct {
	UserID          string
	VehicleID       string
	StartDate       time.Time
	EndDate         time.Time
	Insurance       bool
	SpecialRequests string
	// Confirmed books the rental immediately as confirmed and paid.
	// When false the rental is created pending for later review.
	Confirmed bool
}

// RentalService manages the rental lifecycle.
type RentalService interface {
	Create(ctx context.Context, input CreateRentalInput) (*domain.Rental, error)
	Get(ctx context.Context, userID string, isAdmin bool, rentalID string) (*domain.Rental, error)
	ListMine(ctx context.Context, userID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error)
	ListAll(ctx context.Context, filter repository.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error)
	Cancel(ctx context.Context, userID string, rentalID string) (*domain.Rental, error)
	AdminUpdateStatus(ctx context.Context, rentalID string, status domain.RentalStatus, notes string) (*domain.Rental, error)
	Rate(ctx context.Context, userID string, rentalID string, score int32, review string) (*domain.Rental, error)
	CheckAvailability(ctx context.Context, vehicleID string, start, end time.Time) (*availability.Result, error)
}

// ReportData holds the rows for one report type. Only the slice
// matching Type is populated.
type ReportData struct {
	Type     domain.ReportType         `json:"type"`
	Rentals  []domain.RentalReportRow  `json:"rentals,omitempty"`
	Vehicles []domain.VehicleReportRow `json:"vehicles,omitempty"`
	Users    []domain.UserReportRow    `json:"users,omitempty"`
}

// ReportService produces dashboard aggregates and exportable reports.
type ReportService interface {
	Dashboard(ctx context.Context, from, to *time.Time) (*domain.DashboardData, error)
	Report(ctx context.Context, reportType domain.ReportType, from, to *time.Time) (*ReportData, error)
	ExportCSV(data *ReportData) (string, error)
}

// EmailService sends customer-facing notifications. Failures are logged
// by callers and never abort the triggering operation.
type EmailService interface {
	SendQuoteCreated(ctx context.Context, email, name string, quote *domain.Quote) error
	SendQuoteStatusUpdate(ctx context.Context, email, name string, quote *domain.Quote) error
	SendRentalConfirmation(ctx context.Context, email, name string, rental *domain.Rental) error
	SendRentalCancellation(ctx context.Context, email, name string, rental *domain.Rental) error
	SendRentalStatusUpdate(ctx context.Context, email, name string, rental *domain.Rental) error
}

// VehicleLocker serializes booking attempts per vehicle.
type VehicleLocker interface {
	AcquireVehicleLock(ctx context.Context, vehicleID string, ttl time.Duration) (bool, error)
	ReleaseVehicleLock(ctx context.Context, vehicleID string) error
}

// DashboardCache caches the unfiltered dashboard payload.
type DashboardCache interface {
	GetDashboard(ctx context.Context) (*domain.DashboardData, error)
	SetDashboard(ctx context.Context, data *domain.DashboardData) error
}
