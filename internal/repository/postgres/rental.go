package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, user_id, vehicle_id, start_date, end_date, total_amount, security_deposit,
	insurance, insurance_amount, rental_status, payment_status, payment_id, special_requests, notes,
	rating_score, rating_review, rating_date, created_at, updated_at`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (id, user_id, vehicle_id, start_date, end_date, total_amount,
	          security_deposit, insurance, insurance_amount, rental_status, payment_status,
	          payment_id, special_requests, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	now := time.Now()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		rt.ID, rt.UserID, rt.VehicleID, rt.StartDate, rt.EndDate, rt.TotalAmount,
		rt.SecurityDeposit, rt.Insurance, rt.InsuranceAmount, rt.RentalStatus, rt.PaymentStatus,
		nullString(rt.PaymentID), rt.SpecialRequests, rt.Notes, rt.CreatedAt, rt.UpdatedAt)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("rental", id)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error {
	query := `UPDATE rentals SET rental_status=$1, updated_at=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("rental", id)
	}
	return nil
}

// SetRating writes the rating only when the rental is completed and not yet
// rated; the condition runs in the same statement as the write, so a second
// rater cannot slip in between check and set.
func (r *rentalRepository) SetRating(ctx context.Context, id string, rating *domain.RentalRating) (bool, error) {
	query := `UPDATE rentals SET rating_score=$1, rating_review=$2, rating_date=$3, updated_at=$4
	          WHERE id=$5 AND rental_status='completed' AND rating_score IS NULL`
	res, err := r.db.ExecContext(ctx, query, rating.Score, rating.Review, rating.Date, time.Now(), id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *rentalRepository) ListBlocking(ctx context.Context, vehicleID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE vehicle_id = $1 AND rental_status IN ('confirmed', 'active')`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int32, error) {
	return r.List(ctx, repository.RentalFilter{UserID: userID, Status: status}, page, pageSize)
}

func (r *rentalRepository) List(ctx context.Context, filter repository.RentalFilter, page, pageSize int32) ([]domain.Rental, int32, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.VehicleID != "" {
		args = append(args, filter.VehicleID)
		where += fmt.Sprintf(" AND vehicle_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND rental_status = $%d", len(args))
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	// Computed in int64 so an out-of-range page cannot wrap into a
	// negative offset.
	offset := (int64(page) - 1) * int64(pageSize)
	query := `SELECT ` + rentalColumns + ` FROM rentals` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rentals, err := collectRentals(rows)
	if err != nil {
		return nil, 0, err
	}
	return rentals, count, nil
}

func collectRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var (
		paymentID    sql.NullString
		ratingScore  sql.NullInt32
		ratingReview sql.NullString
		ratingDate   sql.NullTime
	)
	err := row.Scan(&rt.ID, &rt.UserID, &rt.VehicleID, &rt.StartDate, &rt.EndDate,
		&rt.TotalAmount, &rt.SecurityDeposit, &rt.Insurance, &rt.InsuranceAmount,
		&rt.RentalStatus, &rt.PaymentStatus, &paymentID, &rt.SpecialRequests, &rt.Notes,
		&ratingScore, &ratingReview, &ratingDate, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rt.PaymentID = paymentID.String
	if ratingScore.Valid {
		rt.Rating = &domain.RentalRating{
			Score:  ratingScore.Int32,
			Review: ratingReview.String,
			Date:   ratingDate.Time,
		}
	}
	return rt, nil
}
