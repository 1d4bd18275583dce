package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"vehicle-rental-backend/internal/availability"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/service"
)

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Create(ctx context.Context, input service.CreateQuoteInput) (*domain.Quote, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) Get(ctx context.Context, userID string, isAdmin bool, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, userID, isAdmin, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) ListMine(ctx context.Context, userID string, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Quote), args.Get(1).(int32), args.Error(2)
}
func (m *MockQuoteService) ListAll(ctx context.Context, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Quote), args.Get(1).(int32), args.Error(2)
}
func (m *MockQuoteService) AdminUpdateStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, pricing *service.CustomPricing, adminNotes string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, status, pricing, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) Accept(ctx context.Context, userID string, quoteID string) (*domain.Rental, error) {
	args := m.Called(ctx, userID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockQuoteService) ExpireStale(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Create(ctx context.Context, input service.CreateRentalInput) (*domain.Rental, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Get(ctx context.Context, userID string, isAdmin bool, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, userID, isAdmin, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListMine(ctx context.Context, userID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalService) ListAll(ctx context.Context, filter repository.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalService) Cancel(ctx context.Context, userID string, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, userID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) AdminUpdateStatus(ctx context.Context, rentalID string, status domain.RentalStatus, notes string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Rate(ctx context.Context, userID string, rentalID string, score int32, review string) (*domain.Rental, error) {
	args := m.Called(ctx, userID, rentalID, score, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CheckAvailability(ctx context.Context, vehicleID string, start, end time.Time) (*availability.Result, error) {
	args := m.Called(ctx, vehicleID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*availability.Result), args.Error(1)
}

// MockReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Dashboard(ctx context.Context, from, to *time.Time) (*domain.DashboardData, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardData), args.Error(1)
}
func (m *MockReportService) Report(ctx context.Context, reportType domain.ReportType, from, to *time.Time) (*service.ReportData, error) {
	args := m.Called(ctx, reportType, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReportData), args.Error(1)
}
func (m *MockReportService) ExportCSV(data *service.ReportData) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}
