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

type quoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(db *sql.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

const quoteColumns = `id, user_id, customer_name, customer_email, customer_phone, vehicle_id,
	start_date, end_date, insurance, gps, child_seat, additional_driver, special_requests,
	base_amount, additional_services_amount, insurance_amount, taxes, security_deposit, total_amount,
	status, valid_until, admin_notes, created_at, updated_at`

func (r *quoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	query := `INSERT INTO quotes (id, user_id, customer_name, customer_email, customer_phone, vehicle_id,
	          start_date, end_date, insurance, gps, child_seat, additional_driver, special_requests,
	          base_amount, additional_services_amount, insurance_amount, taxes, security_deposit, total_amount,
	          status, valid_until, admin_notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now

	var name, email, phone string
	if q.CustomerInfo != nil {
		name, email, phone = q.CustomerInfo.Name, q.CustomerInfo.Email, q.CustomerInfo.Phone
	}
	_, err := r.db.ExecContext(ctx, query,
		q.ID, nullString(q.UserID), name, email, phone, q.VehicleID,
		q.RentalPeriod.StartDate, q.RentalPeriod.EndDate,
		q.AdditionalServices.Insurance, q.AdditionalServices.GPS,
		q.AdditionalServices.ChildSeat, q.AdditionalServices.AdditionalDriver,
		q.SpecialRequests,
		q.Pricing.BaseAmount, q.Pricing.AdditionalServicesAmount, q.Pricing.InsuranceAmount,
		q.Pricing.Taxes, q.Pricing.SecurityDeposit, q.Pricing.TotalAmount,
		q.Status, q.ValidUntil, q.AdminNotes, q.CreatedAt, q.UpdatedAt)
	return err
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	q, err := scanQuote(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", id)
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *quoteRepository) Update(ctx context.Context, q *domain.Quote) error {
	query := `UPDATE quotes SET status=$1, base_amount=$2, additional_services_amount=$3,
	          insurance_amount=$4, taxes=$5, security_deposit=$6, total_amount=$7,
	          admin_notes=$8, updated_at=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query,
		q.Status, q.Pricing.BaseAmount, q.Pricing.AdditionalServicesAmount,
		q.Pricing.InsuranceAmount, q.Pricing.Taxes, q.Pricing.SecurityDeposit,
		q.Pricing.TotalAmount, q.AdminNotes, time.Now(), q.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("quote", q.ID)
	}
	return nil
}

func (r *quoteRepository) ListByUser(ctx context.Context, userID string, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error) {
	return r.list(ctx, userID, status, page, pageSize)
}

func (r *quoteRepository) List(ctx context.Context, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error) {
	return r.list(ctx, "", status, page, pageSize)
}

func (r *quoteRepository) list(ctx context.Context, userID string, status domain.QuoteStatus, page, pageSize int32) ([]domain.Quote, int32, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if userID != "" {
		args = append(args, userID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM quotes`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	// Computed in int64 so an out-of-range page cannot wrap into a
	// negative offset.
	offset := (int64(page) - 1) * int64(pageSize)
	query := `SELECT ` + quoteColumns + ` FROM quotes` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, 0, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, count, rows.Err()
}

// AcceptWithRental performs the quote→rental conversion as one transaction.
// The quote flip is conditional on (status = sent AND valid_until >= now) at
// the transactional snapshot, which makes accept and the expiry sweep
// mutually exclusive per quote: whichever commits first wins, the loser
// sees zero affected rows.
func (r *quoteRepository) AcceptWithRental(ctx context.Context, quoteID string, now time.Time, rental *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE quotes SET status='accepted', updated_at=$1 WHERE id=$2 AND status='sent' AND valid_until >= $3`,
		now, quoteID, now)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewConflictError("quote is no longer valid or has already been accepted")
	}

	rental.CreatedAt = now
	rental.UpdatedAt = now
	_, err = tx.ExecContext(ctx,
		`INSERT INTO rentals (id, user_id, vehicle_id, start_date, end_date, total_amount,
		 security_deposit, insurance, insurance_amount, rental_status, payment_status,
		 payment_id, special_requests, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		rental.ID, rental.UserID, rental.VehicleID, rental.StartDate, rental.EndDate,
		rental.TotalAmount, rental.SecurityDeposit, rental.Insurance, rental.InsuranceAmount,
		rental.RentalStatus, rental.PaymentStatus, nullString(rental.PaymentID),
		rental.SpecialRequests, rental.Notes, rental.CreatedAt, rental.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *quoteRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE quotes SET status='expired', updated_at=$1 WHERE status='sent' AND valid_until < $2`,
		now, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	q := &domain.Quote{}
	var (
		userID sql.NullString
		name   string
		email  string
		phone  string
	)
	err := row.Scan(&q.ID, &userID, &name, &email, &phone, &q.VehicleID,
		&q.RentalPeriod.StartDate, &q.RentalPeriod.EndDate,
		&q.AdditionalServices.Insurance, &q.AdditionalServices.GPS,
		&q.AdditionalServices.ChildSeat, &q.AdditionalServices.AdditionalDriver,
		&q.SpecialRequests,
		&q.Pricing.BaseAmount, &q.Pricing.AdditionalServicesAmount, &q.Pricing.InsuranceAmount,
		&q.Pricing.Taxes, &q.Pricing.SecurityDeposit, &q.Pricing.TotalAmount,
		&q.Status, &q.ValidUntil, &q.AdminNotes, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	q.UserID = userID.String
	if q.UserID == "" && (name != "" || email != "" || phone != "") {
		q.CustomerInfo = &domain.CustomerInfo{Name: name, Email: email, Phone: phone}
	}
	return q, nil
}
