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

type rentalService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
	locker       VehicleLocker
	lockTTL      time.Duration
	cancelWindow time.Duration
	now          func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	locker VehicleLocker,
	lockTTL time.Duration,
	cancelWindow time.Duration,
	now func() time.Time,
) RentalService {
	if now == nil {
		now = time.Now
	}
	return &rentalService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
		locker:       locker,
		lockTTL:      lockTTL,
		cancelWindow: cancelWindow,
		now:          now,
	}
}

func (s *rentalService) Create(ctx context.Context, input CreateRentalInput) (*domain.Rental, error) {
	if input.UserID == "" {
		return nil, domain.NewValidationError("user is required")
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
	if !vehicle.IsAvailable {
		return nil, domain.NewConflictError("vehicle is not available for booking")
	}

	// Serialize the availability check and the insert per vehicle so two
	// concurrent bookings for overlapping dates cannot both pass the check.
	acquired, err := s.locker.AcquireVehicleLock(ctx, input.VehicleID, s.lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, domain.NewConflictError("vehicle is being booked by another customer, please retry")
	}
	defer func() { _ = s.locker.ReleaseVehicleLock(ctx, input.VehicleID) }()

	blocking, err := s.rentalRepo.ListBlocking(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if availability.Check(input.StartDate, input.EndDate, toIntervals(blocking)).Conflict {
		return nil, domain.NewConflictError("vehicle is already booked for the selected dates")
	}

	breakdown := pricing.Quote(vehicle, input.StartDate, input.EndDate,
		domain.AdditionalServices{Insurance: input.Insurance})

	rental := &domain.Rental{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		VehicleID:       input.VehicleID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		TotalAmount:     breakdown.TotalAmount,
		SecurityDeposit: breakdown.SecurityDeposit,
		Insurance:       input.Insurance,
		InsuranceAmount: breakdown.InsuranceAmount,
		RentalStatus:    domain.RentalStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Confirmed {
		rental.RentalStatus = domain.RentalStatusConfirmed
		rental.PaymentStatus = domain.PaymentStatusPaid
		attachPayment(rental, now)
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	if user, err := s.userRepo.GetByID(ctx, input.UserID); err == nil {
		_ = s.emailSvc.SendRentalConfirmation(ctx, user.Email, user.FullName(), rental)
	}
	return rental, nil
}

// attachPayment mints the settlement record for a booking charged in full
// at confirmation time and puts its reference on the rental.
func attachPayment(rental *domain.Rental, now time.Time) {
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		UserID:        rental.UserID,
		RentalID:      rental.ID,
		PaymentMethod: "card",
		Amount:        rental.TotalAmount,
		TransactionID: uuid.New().String(),
		Status:        domain.PaymentRecordStatusCompleted,
		PaymentDate:   now,
		CreatedAt:     now,
	}
	rental.PaymentID = payment.ID
	rental.Payment = payment
}

func (s *rentalService) Get(ctx context.Context, userID string, isAdmin bool, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && rental.UserID != userID {
		return nil, domain.NewForbiddenError("rental belongs to another customer")
	}
	return rental, nil
}

func (s *rentalService) ListMine(ctx context.Context, userID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.ListByUser(ctx, userID, status, page, pageSize)
}

func (s *rentalService) ListAll(ctx context.Context, filter repository.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.List(ctx, filter, page, pageSize)
}

// Cancel lets the owning customer back out of a rental that has not
// started, with at least the configured lead time before pickup.
func (s *rentalService) Cancel(ctx context.Context, userID string, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != userID {
		return nil, domain.NewForbiddenError("rental belongs to another customer")
	}
	if !rental.RentalStatus.CanTransitionTo(domain.RentalStatusCancelled) {
		return nil, domain.NewConflictError("a %s rental cannot be cancelled", rental.RentalStatus)
	}
	if rental.StartDate.Sub(s.now()) < s.cancelWindow {
		return nil, domain.NewConflictError("rentals can only be cancelled at least %d hours before the start date",
			int(s.cancelWindow.Hours()))
	}

	if err := s.rentalRepo.UpdateStatus(ctx, rentalID, domain.RentalStatusCancelled); err != nil {
		return nil, err
	}
	rental.RentalStatus = domain.RentalStatusCancelled
	rental.UpdatedAt = s.now()

	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		_ = s.emailSvc.SendRentalCancellation(ctx, user.Email, user.FullName(), rental)
	}
	return rental, nil
}

// AdminUpdateStatus sets any valid status without consulting the
// customer-facing transition table, for operational corrections.
func (s *rentalService) AdminUpdateStatus(ctx context.Context, rentalID string, status domain.RentalStatus, notes string) (*domain.Rental, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("invalid rental status: %s", status)
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if err := s.rentalRepo.UpdateStatus(ctx, rentalID, status); err != nil {
		return nil, err
	}
	rental.RentalStatus = status
	if notes != "" {
		rental.Notes = notes
	}
	rental.UpdatedAt = s.now()

	if user, err := s.userRepo.GetByID(ctx, rental.UserID); err == nil {
		_ = s.emailSvc.SendRentalStatusUpdate(ctx, user.Email, user.FullName(), rental)
	}
	return rental, nil
}

func (s *rentalService) Rate(ctx context.Context, userID string, rentalID string, score int32, review string) (*domain.Rental, error) {
	if score < 1 || score > 5 {
		return nil, domain.NewValidationError("rating score must be between 1 and 5")
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.UserID != userID {
		return nil, domain.NewForbiddenError("rental belongs to another customer")
	}

	rating := &domain.RentalRating{Score: score, Review: review, Date: s.now()}
	stored, err := s.rentalRepo.SetRating(ctx, rentalID, rating)
	if err != nil {
		return nil, err
	}
	if !stored {
		return nil, domain.NewConflictError("only completed rentals can be rated, and only once")
	}
	rental.Rating = rating

	if _, err := s.vehicleRepo.RecomputeRating(ctx, rental.VehicleID); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) CheckAvailability(ctx context.Context, vehicleID string, start, end time.Time) (*availability.Result, error) {
	if !end.After(start) {
		return nil, domain.NewValidationError("end date must be after start date")
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsActive {
		return nil, domain.NewNotFoundError("vehicle", vehicleID)
	}

	blocking, err := s.rentalRepo.ListBlocking(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	result := availability.Check(start, end, toIntervals(blocking))
	return &result, nil
}
