package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context, onlyAvailable bool, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, onlyAvailable, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}
func (m *MockVehicleRepo) RecomputeRating(ctx context.Context, vehicleID string) (*domain.VehicleRating, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleRating), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockRentalRepo) SetRating(ctx context.Context, id string, rating *domain.RentalRating) (bool, error) {
	args := m.Called(ctx, id, rating)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) ListBlocking(ctx context.Context, vehicleID string) ([]domain.Rental, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByUser(ctx context.Context, userID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) List(ctx context.Context, filter repository.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

// MockQuoteRepo
type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}
func (m *MockQuoteRepo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) Update(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}
func (m *MockQuoteRepo) ListByUser(ctx context.Context, userID string, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Quote), args.Get(1).(int32), args.Error(2)
}
func (m *MockQuoteRepo) List(ctx context.Context, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Quote), args.Get(1).(int32), args.Error(2)
}
func (m *MockQuoteRepo) AcceptWithRental(ctx context.Context, quoteID string, now time.Time, rental *domain.Rental) error {
	args := m.Called(ctx, quoteID, now, rental)
	return args.Error(0)
}
func (m *MockQuoteRepo) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) DashboardOverview(ctx context.Context, from, to *time.Time) (*domain.DashboardOverview, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardOverview), args.Error(1)
}
func (m *MockReportRepo) MonthlyRollup(ctx context.Context, since time.Time, maxBuckets int) ([]domain.MonthlyStat, error) {
	args := m.Called(ctx, since, maxBuckets)
	return args.Get(0).([]domain.MonthlyStat), args.Error(1)
}
func (m *MockReportRepo) VehicleTypeDistribution(ctx context.Context) ([]domain.VehicleTypeCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleTypeCount), args.Error(1)
}
func (m *MockReportRepo) RentalRows(ctx context.Context, from, to *time.Time) ([]domain.RentalReportRow, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.RentalReportRow), args.Error(1)
}
func (m *MockReportRepo) VehicleRows(ctx context.Context) ([]domain.VehicleReportRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleReportRow), args.Error(1)
}
func (m *MockReportRepo) UserRows(ctx context.Context, from, to *time.Time) ([]domain.UserReportRow, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.UserReportRow), args.Error(1)
}
func (m *MockReportRepo) RecentRentals(ctx context.Context, limit int) ([]domain.RentalReportRow, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.RentalReportRow), args.Error(1)
}
func (m *MockReportRepo) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendQuoteCreated(ctx context.Context, email, name string, quote *domain.Quote) error {
	args := m.Called(ctx, email, name, quote)
	return args.Error(0)
}
func (m *MockEmailService) SendQuoteStatusUpdate(ctx context.Context, email, name string, quote *domain.Quote) error {
	args := m.Called(ctx, email, name, quote)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, email, name string, rental *domain.Rental) error {
	args := m.Called(ctx, email, name, rental)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalCancellation(ctx context.Context, email, name string, rental *domain.Rental) error {
	args := m.Called(ctx, email, name, rental)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalStatusUpdate(ctx context.Context, email, name string, rental *domain.Rental) error {
	args := m.Called(ctx, email, name, rental)
	return args.Error(0)
}

// MockVehicleLocker
type MockVehicleLocker struct {
	mock.Mock
}

func (m *MockVehicleLocker) AcquireVehicleLock(ctx context.Context, vehicleID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, vehicleID, ttl)
	return args.Bool(0), args.Error(1)
}
func (m *MockVehicleLocker) ReleaseVehicleLock(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

// MockDashboardCache
type MockDashboardCache struct {
	mock.Mock
}

func (m *MockDashboardCache) GetDashboard(ctx context.Context) (*domain.DashboardData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardData), args.Error(1)
}
func (m *MockDashboardCache) SetDashboard(ctx context.Context, data *domain.DashboardData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
