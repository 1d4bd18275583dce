package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vehicle-rental-backend/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newQuoteServiceForTest(now time.Time) (QuoteService, *MockQuoteRepo, *MockRentalRepo, *MockVehicleRepo, *MockUserRepo, *MockEmailService, *MockVehicleLocker) {
	quoteRepo := new(MockQuoteRepo)
	rentalRepo := new(MockRentalRepo)
	vehicleRepo := new(MockVehicleRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	locker := new(MockVehicleLocker)
	svc := NewQuoteService(quoteRepo, rentalRepo, vehicleRepo, userRepo, emailSvc, locker, 10*time.Second, fixedClock(now))
	return svc, quoteRepo, rentalRepo, vehicleRepo, userRepo, emailSvc, locker
}

func TestQuoteService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	vehicle := &domain.Vehicle{
		ID:          "veh-1",
		Type:        domain.VehicleTypeCar,
		PricePerDay: 100,
		IsActive:    true,
		IsAvailable: true,
	}

	t.Run("Success for registered user", func(t *testing.T) {
		svc, quoteRepo, _, vehicleRepo, userRepo, emailSvc, _ := newQuoteServiceForTest(now)
		vehicleRepo.On("GetByID", ctx, "veh-1").Return(vehicle, nil)
		quoteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Quote")).Return(nil)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1", Email: "u@test.com", FirstName: "Uma", LastName: "Ng"}, nil)
		emailSvc.On("SendQuoteCreated", ctx, "u@test.com", "Uma Ng", mock.AnythingOfType("*domain.Quote")).Return(nil)

		quote, err := svc.Create(ctx, CreateQuoteInput{
			UserID:    "user-1",
			VehicleID: "veh-1",
			StartDate: now.Add(24 * time.Hour),
			EndDate:   now.Add(72 * time.Hour),
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusPending, quote.Status)
		assert.Equal(t, now.Add(QuoteValidity), quote.ValidUntil)
		assert.Nil(t, quote.CustomerInfo)
		// 2 days at 100/day plus 10% tax
		assert.Equal(t, 220.0, quote.Pricing.TotalAmount)
		assert.Equal(t, 500.0, quote.Pricing.SecurityDeposit)
	})

	t.Run("Success for guest with customer info", func(t *testing.T) {
		svc, quoteRepo, _, vehicleRepo, _, emailSvc, _ := newQuoteServiceForTest(now)
		vehicleRepo.On("GetByID", ctx, "veh-1").Return(vehicle, nil)
		quoteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Quote")).Return(nil)
		emailSvc.On("SendQuoteCreated", ctx, "g@test.com", "Guest", mock.AnythingOfType("*domain.Quote")).Return(nil)

		quote, err := svc.Create(ctx, CreateQuoteInput{
			CustomerInfo: domain.CustomerInfo{Name: "Guest", Email: "g@test.com", Phone: "555-0100"},
			VehicleID:    "veh-1",
			StartDate:    now.Add(24 * time.Hour),
			EndDate:      now.Add(48 * time.Hour),
		})
		assert.NoError(t, err)
		assert.NotNil(t, quote.CustomerInfo)
		assert.Equal(t, "g@test.com", quote.CustomerInfo.Email)
	})

	t.Run("Rejects guest with incomplete customer info", func(t *testing.T) {
		svc, _, _, _, _, _, _ := newQuoteServiceForTest(now)
		_, err := svc.Create(ctx, CreateQuoteInput{
			CustomerInfo: domain.CustomerInfo{Name: "Guest", Email: "g@test.com"},
			VehicleID:    "veh-1",
			StartDate:    now.Add(24 * time.Hour),
			EndDate:      now.Add(48 * time.Hour),
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Rejects start date in the past", func(t *testing.T) {
		svc, _, _, _, _, _, _ := newQuoteServiceForTest(now)
		_, err := svc.Create(ctx, CreateQuoteInput{
			UserID:    "user-1",
			VehicleID: "veh-1",
			StartDate: now.Add(-time.Hour),
			EndDate:   now.Add(48 * time.Hour),
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Rejects inverted date range", func(t *testing.T) {
		svc, _, _, _, _, _, _ := newQuoteServiceForTest(now)
		_, err := svc.Create(ctx, CreateQuoteInput{
			UserID:    "user-1",
			VehicleID: "veh-1",
			StartDate: now.Add(48 * time.Hour),
			EndDate:   now.Add(24 * time.Hour),
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Deactivated vehicle reads as not found", func(t *testing.T) {
		svc, _, _, vehicleRepo, _, _, _ := newQuoteServiceForTest(now)
		inactive := *vehicle
		inactive.IsActive = false
		vehicleRepo.On("GetByID", ctx, "veh-1").Return(&inactive, nil)

		_, err := svc.Create(ctx, CreateQuoteInput{
			UserID:    "user-1",
			VehicleID: "veh-1",
			StartDate: now.Add(24 * time.Hour),
			EndDate:   now.Add(48 * time.Hour),
		})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestQuoteService_AdminUpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	quote := func() *domain.Quote {
		return &domain.Quote{
			ID:        "q-1",
			UserID:    "user-1",
			VehicleID: "veh-1",
			Status:    domain.QuoteStatusPending,
			Pricing: domain.PriceBreakdown{
				BaseAmount:      200,
				Taxes:           20,
				SecurityDeposit: 500,
				TotalAmount:     220,
			},
			ValidUntil: now.Add(QuoteValidity),
		}
	}

	t.Run("Custom pricing overrides only supplied fields", func(t *testing.T) {
		svc, quoteRepo, _, _, userRepo, emailSvc, _ := newQuoteServiceForTest(now)
		quoteRepo.On("GetByID", ctx, "q-1").Return(quote(), nil)
		quoteRepo.On("Update", ctx, mock.AnythingOfType("*domain.Quote")).Return(nil)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1", Email: "u@test.com", FirstName: "Uma", LastName: "Ng"}, nil)
		emailSvc.On("SendQuoteStatusUpdate", ctx, "u@test.com", "Uma Ng", mock.AnythingOfType("*domain.Quote")).Return(nil)

		base := 180.0
		total := 198.0
		updated, err := svc.AdminUpdateStatus(ctx, "q-1", domain.QuoteStatusSent, &CustomPricing{
			BaseAmount:  &base,
			TotalAmount: &total,
		}, "loyalty discount")
		assert.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusSent, updated.Status)
		assert.Equal(t, 180.0, updated.Pricing.BaseAmount)
		assert.Equal(t, 198.0, updated.Pricing.TotalAmount)
		// Untouched fields keep their computed values.
		assert.Equal(t, 20.0, updated.Pricing.Taxes)
		assert.Equal(t, 500.0, updated.Pricing.SecurityDeposit)
		assert.Equal(t, "loyalty discount", updated.AdminNotes)
	})

	t.Run("Rejects unknown status", func(t *testing.T) {
		svc, _, _, _, _, _, _ := newQuoteServiceForTest(now)
		_, err := svc.AdminUpdateStatus(ctx, "q-1", domain.QuoteStatus("negotiating"), nil, "")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Accepted quote cannot be reopened", func(t *testing.T) {
		svc, quoteRepo, _, _, _, _, _ := newQuoteServiceForTest(now)
		accepted := quote()
		accepted.Status = domain.QuoteStatusAccepted
		quoteRepo.On("GetByID", ctx, "q-1").Return(accepted, nil)

		_, err := svc.AdminUpdateStatus(ctx, "q-1", domain.QuoteStatusSent, nil, "")
		assert.True(t, domain.IsConflict(err))
		quoteRepo.AssertNotCalled(t, "Update", ctx, mock.AnythingOfType("*domain.Quote"))
	})
}

func TestQuoteService_Accept(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sentQuote := func() *domain.Quote {
		return &domain.Quote{
			ID:        "q-1",
			UserID:    "user-1",
			VehicleID: "veh-1",
			RentalPeriod: domain.RentalPeriod{
				StartDate: now.Add(48 * time.Hour),
				EndDate:   now.Add(96 * time.Hour),
			},
			AdditionalServices: domain.AdditionalServices{Insurance: true},
			Pricing: domain.PriceBreakdown{
				BaseAmount:      200,
				InsuranceAmount: 30,
				Taxes:           23,
				SecurityDeposit: 500,
				TotalAmount:     253,
			},
			Status:     domain.QuoteStatusSent,
			ValidUntil: now.Add(48 * time.Hour),
		}
	}

	t.Run("Success creates confirmed paid rental", func(t *testing.T) {
		svc, quoteRepo, rentalRepo, _, userRepo, emailSvc, locker := newQuoteServiceForTest(now)
		quoteRepo.On("GetByID", ctx, "q-1").Return(sentQuote(), nil)
		locker.On("AcquireVehicleLock", ctx, "veh-1", 10*time.Second).Return(true, nil)
		locker.On("ReleaseVehicleLock", ctx, "veh-1").Return(nil)
		rentalRepo.On("ListBlocking", ctx, "veh-1").Return([]domain.Rental{}, nil)
		quoteRepo.On("AcceptWithRental", ctx, "q-1", now, mock.AnythingOfType("*domain.Rental")).Return(nil)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1", Email: "u@test.com", FirstName: "Uma", LastName: "Ng"}, nil)
		emailSvc.On("SendRentalConfirmation", ctx, "u@test.com", "Uma Ng", mock.AnythingOfType("*domain.Rental")).Return(nil)

		rental, err := svc.Accept(ctx, "user-1", "q-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusConfirmed, rental.RentalStatus)
		assert.Equal(t, domain.PaymentStatusPaid, rental.PaymentStatus)
		assert.Equal(t, 253.0, rental.TotalAmount)
		assert.True(t, rental.Insurance)
		assert.NotEmpty(t, rental.PaymentID)
		assert.Equal(t, 253.0, rental.Payment.Amount)
		locker.AssertCalled(t, "ReleaseVehicleLock", ctx, "veh-1")
	})

	t.Run("Expired quote conflicts", func(t *testing.T) {
		svc, quoteRepo, _, _, _, _, _ := newQuoteServiceForTest(now)
		expired := sentQuote()
		expired.ValidUntil = now.Add(-time.Hour)
		quoteRepo.On("GetByID", ctx, "q-1").Return(expired, nil)

		_, err := svc.Accept(ctx, "user-1", "q-1")
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Pending quote conflicts", func(t *testing.T) {
		svc, quoteRepo, _, _, _, _, _ := newQuoteServiceForTest(now)
		pending := sentQuote()
		pending.Status = domain.QuoteStatusPending
		quoteRepo.On("GetByID", ctx, "q-1").Return(pending, nil)

		_, err := svc.Accept(ctx, "user-1", "q-1")
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Other customer is forbidden", func(t *testing.T) {
		svc, quoteRepo, _, _, _, _, _ := newQuoteServiceForTest(now)
		quoteRepo.On("GetByID", ctx, "q-1").Return(sentQuote(), nil)

		_, err := svc.Accept(ctx, "user-2", "q-1")
		assert.True(t, domain.IsForbidden(err))
	})

	t.Run("Vehicle booked since quoting conflicts", func(t *testing.T) {
		svc, quoteRepo, rentalRepo, _, _, _, locker := newQuoteServiceForTest(now)
		quoteRepo.On("GetByID", ctx, "q-1").Return(sentQuote(), nil)
		locker.On("AcquireVehicleLock", ctx, "veh-1", 10*time.Second).Return(true, nil)
		locker.On("ReleaseVehicleLock", ctx, "veh-1").Return(nil)
		rentalRepo.On("ListBlocking", ctx, "veh-1").Return([]domain.Rental{{
			ID:        "r-9",
			VehicleID: "veh-1",
			StartDate: now.Add(72 * time.Hour),
			EndDate:   now.Add(120 * time.Hour),
		}}, nil)

		_, err := svc.Accept(ctx, "user-1", "q-1")
		assert.True(t, domain.IsConflict(err))
		quoteRepo.AssertNotCalled(t, "AcceptWithRental", ctx, "q-1", now, mock.Anything)
	})

	t.Run("Contended vehicle lock conflicts", func(t *testing.T) {
		svc, quoteRepo, _, _, _, _, locker := newQuoteServiceForTest(now)
		quoteRepo.On("GetByID", ctx, "q-1").Return(sentQuote(), nil)
		locker.On("AcquireVehicleLock", ctx, "veh-1", 10*time.Second).Return(false, nil)

		_, err := svc.Accept(ctx, "user-1", "q-1")
		assert.True(t, domain.IsConflict(err))
	})
}

func TestQuoteService_ExpireStale(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, quoteRepo, _, _, _, _, _ := newQuoteServiceForTest(now)
	quoteRepo.On("ExpireStale", ctx, now).Return(int64(3), nil)

	expired, err := svc.ExpireStale(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), expired)
}
