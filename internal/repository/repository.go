package repository

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, onlyAvailable bool, page, pageSize int32) ([]domain.Vehicle, int32, error)
	// RecomputeRating refreshes the vehicle's aggregate rating from its
	// rated rentals in a single statement, so concurrent raters cannot
	// lose updates.
	RecomputeRating(ctx context.Context, vehicleID string) (*domain.VehicleRating, error)
}

type RentalFilter struct {
	Status    domain.RentalStatus
	UserID    string
	VehicleID string
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error
	// SetRating stores the rating only if the rental is completed and
	// unrated; it reports whether the write happened.
	SetRating(ctx context.Context, id string, rating *domain.RentalRating) (bool, error)
	// ListBlocking returns the rentals whose status makes their interval
	// count against the vehicle's availability (confirmed or active).
	ListBlocking(ctx context.Context, vehicleID string) ([]domain.Rental, error)
	ListByUser(ctx context.Context, userID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error)
	List(ctx context.Context, filter RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	Update(ctx context.Context, quote *domain.Quote) error
	ListByUser(ctx context.Context, userID string, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error)
	List(ctx context.Context, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error)
	// AcceptWithRental flips the quote to accepted and creates the rental
	// as one transaction. The status flip is conditional on the quote
	// still being sent and unexpired at the transactional snapshot, so an
	// accept cannot race the expiry sweep; a lost race surfaces as a
	// ConflictError.
	AcceptWithRental(ctx context.Context, quoteID string, now time.Time, rental *domain.Rental) error
	// ExpireStale marks every sent quote past its validity as expired and
	// returns how many changed. Safe to re-run.
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ReportRepository serves the read-only reporting rollups. It never writes.
type ReportRepository interface {
	DashboardOverview(ctx context.Context, from, to *time.Time) (*domain.DashboardOverview, error)
	MonthlyRollup(ctx context.Context, since time.Time, maxBuckets int) ([]domain.MonthlyStat, error)
	VehicleTypeDistribution(ctx context.Context) ([]domain.VehicleTypeCount, error)
	RentalRows(ctx context.Context, from, to *time.Time) ([]domain.RentalReportRow, error)
	VehicleRows(ctx context.Context) ([]domain.VehicleReportRow, error)
	UserRows(ctx context.Context, from, to *time.Time) ([]domain.UserReportRow, error)
	// RecentRentals and RecentUsers feed the dashboard's activity feed,
	// newest first.
	RecentRentals(ctx context.Context, limit int) ([]domain.RentalReportRow, error)
	RecentUsers(ctx context.Context, limit int) ([]domain.User, error)
}
