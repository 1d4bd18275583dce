package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vehicle-rental-backend/internal/availability"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/pricing"
	"vehicle-rental-backend/internal/repository"
)

// QuoteValidity is how long a sent quote stays acceptable.
const QuoteValidity = 7 * 24 * time.Hour

type quoteService struct {
	quoteRepo   repository.QuoteRepository
	rentalRepo  repository.RentalRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	locker      VehicleLocker
	lockTTL     time.Duration
	now         func() time.Time
}

func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	locker VehicleLocker,
	lockTTL time.Duration,
	now func() time.Time,
) QuoteService {
	if now == nil {
		now = time.Now
	}
	return &quoteService{
		quoteRepo:   quoteRepo,
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		locker:      locker,
		lockTTL:     lockTTL,
		now:         now,
	}
}

func (s *quoteService) Create(ctx context.Context, input CreateQuoteInput) (*domain.Quote, error) {
	if input.UserID == "" && !input.CustomerInfo.Complete() {
		return nil, domain.NewValidationError("either a user or complete customer info (name, email, phone) is required")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, domain.NewValidationError("end date must be after start date")
	}
	now := s.now()
	if input.StartDate.Before(now) {
		return nil, domain.NewValidationError("start date cannot be in the past")
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsActive {
		return nil, domain.NewNotFoundError("vehicle", input.VehicleID)
	}

	quote := &domain.Quote{
		ID:                 uuid.New().String(),
		UserID:             input.UserID,
		VehicleID:          input.VehicleID,
		RentalPeriod:       domain.RentalPeriod{StartDate: input.StartDate, EndDate: input.EndDate},
		AdditionalServices: input.AdditionalServices,
		SpecialRequests:    input.SpecialRequests,
		Pricing:            pricing.Quote(vehicle, input.StartDate, input.EndDate, input.AdditionalServices),
		Status:             domain.QuoteStatusPending,
		ValidUntil:         now.Add(QuoteValidity),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if input.UserID == "" {
		info := input.CustomerInfo
		quote.CustomerInfo = &info
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	if email, name := s.recipient(ctx, quote); email != "" {
		_ = s.emailSvc.SendQuoteCreated(ctx, email, name, quote)
	}
	return quote, nil
}

func (s *quoteService) Get(ctx context.Context, userID string, isAdmin bool, quoteID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && quote.UserID != userID {
		return nil, domain.NewForbiddenError("quote belongs to another customer")
	}
	return quote, nil
}

func (s *quoteService) ListMine(ctx context.Context, userID string, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error) {
	return s.quoteRepo.ListByUser(ctx, userID, status, page, pageSize)
}

func (s *quoteService) ListAll(ctx context.Context, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error) {
	return s.quoteRepo.List(ctx, status, page, pageSize)
}

func (s *quoteService) AdminUpdateStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, custom *CustomPricing, adminNotes string) (*domain.Quote, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("invalid quote status: %s", status)
	}

	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Status.Terminal() {
		return nil, domain.NewConflictError("quote is already %s", quote.Status)
	}

	quote.Status = status
	if adminNotes != "" {
		quote.AdminNotes = adminNotes
	}
	if custom != nil {
		applyCustomPricing(&quote.Pricing, custom)
	}
	quote.UpdatedAt = s.now()

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	if email, name := s.recipient(ctx, quote); email != "" {
		_ = s.emailSvc.SendQuoteStatusUpdate(ctx, email, name, quote)
	}
	return quote, nil
}

// applyCustomPricing overrides only the fields the admin supplied.
func applyCustomPricing(p *domain.PriceBreakdown, custom *CustomPricing) {
	if custom.BaseAmount != nil {
		p.BaseAmount = *custom.BaseAmount
	}
	if custom.AdditionalServicesAmount != nil {
		p.AdditionalServicesAmount = *custom.AdditionalServicesAmount
	}
	if custom.InsuranceAmount != nil {
		p.InsuranceAmount = *custom.InsuranceAmount
	}
	if custom.Taxes != nil {
		p.Taxes = *custom.Taxes
	}
	if custom.SecurityDeposit != nil {
		p.SecurityDeposit = *custom.SecurityDeposit
	}
	if custom.TotalAmount != nil {
		p.TotalAmount = *custom.TotalAmount
	}
}

// Accept converts a sent, unexpired quote into a confirmed rental. The
// availability re-check and the quote flip run under the vehicle lock and
// a single transaction, so two accepts for overlapping dates cannot both
// win.
func (s *quoteService) Accept(ctx context.Context, userID string, quoteID string) (*domain.Rental, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.UserID == "" || quote.UserID != userID {
		return nil, domain.NewForbiddenError("quote belongs to another customer")
	}

	now := s.now()
	if !quote.Acceptable(now) {
		return nil, domain.NewConflictError("quote is no longer valid or has already been accepted")
	}

	acquired, err := s.locker.AcquireVehicleLock(ctx, quote.VehicleID, s.lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, domain.NewConflictError("vehicle is being booked by another customer, please retry")
	}
	defer func() { _ = s.locker.ReleaseVehicleLock(ctx, quote.VehicleID) }()

	blocking, err := s.rentalRepo.ListBlocking(ctx, quote.VehicleID)
	if err != nil {
		return nil, err
	}
	if availability.Check(quote.RentalPeriod.StartDate, quote.RentalPeriod.EndDate, toIntervals(blocking)).Conflict {
		return nil, domain.NewConflictError("vehicle is no longer available for the selected dates")
	}

	rental := &domain.Rental{
		ID:              uuid.New().String(),
		UserID:          userID,
		VehicleID:       quote.VehicleID,
		StartDate:       quote.RentalPeriod.StartDate,
		EndDate:         quote.RentalPeriod.EndDate,
		TotalAmount:     quote.Pricing.TotalAmount,
		SecurityDeposit: quote.Pricing.SecurityDeposit,
		Insurance:       quote.AdditionalServices.Insurance,
		InsuranceAmount: quote.Pricing.InsuranceAmount,
		RentalStatus:    domain.RentalStatusConfirmed,
		PaymentStatus:   domain.PaymentStatusPaid,
		SpecialRequests: quote.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	attachPayment(rental, now)

	if err := s.quoteRepo.AcceptWithRental(ctx, quoteID, now, rental); err != nil {
		return nil, err
	}

	if email, name := s.recipient(ctx, quote); email != "" {
		_ = s.emailSvc.SendRentalConfirmation(ctx, email, name, rental)
	}
	return rental, nil
}

func (s *quoteService) ExpireStale(ctx context.Context) (int64, error) {
	return s.quoteRepo.ExpireStale(ctx, s.now())
}

// recipient resolves who gets notified about a quote: the owning user's
// account email, or the guest contact captured on the quote.
func (s *quoteService) recipient(ctx context.Context, quote *domain.Quote) (email, name string) {
	if quote.UserID != "" {
		user, err := s.userRepo.GetByID(ctx, quote.UserID)
		if err != nil {
			return "", ""
		}
		return user.Email, user.FullName()
	}
	if quote.CustomerInfo != nil {
		return quote.CustomerInfo.Email, quote.CustomerInfo.Name
	}
	return "", ""
}

func toIntervals(rentals []domain.Rental) []availability.BlockingInterval {
	intervals := make([]availability.BlockingInterval, 0, len(rentals))
	for _, r := range rentals {
		intervals = append(intervals, availability.BlockingInterval{
			RentalID:  r.ID,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
		})
	}
	return intervals
}
