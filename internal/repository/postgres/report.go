package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) DashboardOverview(ctx context.Context, from, to *time.Time) (*domain.DashboardOverview, error) {
	o := &domain.DashboardOverview{}

	userWhere := `WHERE role = 'customer'`
	userArgs := []interface{}{}
	if from != nil && to != nil {
		userWhere += ` AND created_at >= $1 AND created_at <= $2`
		userArgs = append(userArgs, *from, *to)
	}
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users `+userWhere, userArgs...).Scan(&o.TotalUsers); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles WHERE is_active = true`).Scan(&o.TotalVehicles); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE rental_status = 'active'`).Scan(&o.ActiveRentals); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM quotes WHERE status = 'pending'`).Scan(&o.PendingQuotes); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles WHERE is_active = true AND is_available = true`).Scan(&o.AvailableVehicles); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *reportRepository) MonthlyRollup(ctx context.Context, since time.Time, maxBuckets int) ([]domain.MonthlyStat, error) {
	query := `SELECT EXTRACT(YEAR FROM created_at)::int AS year,
	                 EXTRACT(MONTH FROM created_at)::int AS month,
	                 count(*) AS rentals,
	                 COALESCE(sum(total_amount), 0) AS revenue
	          FROM rentals
	          WHERE created_at >= $1
	          GROUP BY 1, 2
	          ORDER BY 1, 2
	          LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, since, maxBuckets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.MonthlyStat
	for rows.Next() {
		var s domain.MonthlyStat
		if err := rows.Scan(&s.Year, &s.Month, &s.Rentals, &s.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *reportRepository) VehicleTypeDistribution(ctx context.Context) ([]domain.VehicleTypeCount, error) {
	query := `SELECT type, count(*) FROM vehicles WHERE is_active = true GROUP BY type ORDER BY type`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.VehicleTypeCount
	for rows.Next() {
		var c domain.VehicleTypeCount
		if err := rows.Scan(&c.Type, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *reportRepository) RentalRows(ctx context.Context, from, to *time.Time) ([]domain.RentalReportRow, error) {
	query := `SELECT r.id, u.first_name || ' ' || u.last_name, u.email,
	                 v.make, v.model, v.year, v.type,
	                 r.start_date, r.end_date, r.total_amount, r.rental_status
	          FROM rentals r
	          JOIN users u ON u.id = r.user_id
	          JOIN vehicles v ON v.id = r.vehicle_id`
	args := []interface{}{}
	if from != nil && to != nil {
		query += ` WHERE r.created_at >= $1 AND r.created_at <= $2`
		args = append(args, *from, *to)
	}
	query += ` ORDER BY r.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RentalReportRow
	for rows.Next() {
		var row domain.RentalReportRow
		if err := rows.Scan(&row.RentalID, &row.UserName, &row.UserEmail,
			&row.VehicleMake, &row.VehicleModel, &row.VehicleYear, &row.VehicleType,
			&row.StartDate, &row.EndDate, &row.TotalAmount, &row.RentalStatus); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *reportRepository) RecentRentals(ctx context.Context, limit int) ([]domain.RentalReportRow, error) {
	query := `SELECT r.id, u.first_name || ' ' || u.last_name, u.email,
	                 v.make, v.model, v.year, v.type,
	                 r.start_date, r.end_date, r.total_amount, r.rental_status
	          FROM rentals r
	          JOIN users u ON u.id = r.user_id
	          JOIN vehicles v ON v.id = r.vehicle_id
	          ORDER BY r.created_at DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RentalReportRow
	for rows.Next() {
		var row domain.RentalReportRow
		if err := rows.Scan(&row.RentalID, &row.UserName, &row.UserEmail,
			&row.VehicleMake, &row.VehicleModel, &row.VehicleYear, &row.VehicleType,
			&row.StartDate, &row.EndDate, &row.TotalAmount, &row.RentalStatus); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *reportRepository) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	query := `SELECT id, first_name, last_name, email, phone, role, created_at, updated_at
	          FROM users
	          WHERE role = 'customer'
	          ORDER BY created_at DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone,
			&u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *reportRepository) VehicleRows(ctx context.Context) ([]domain.VehicleReportRow, error) {
	query := `SELECT v.id, v.make, v.model, v.year, v.type, v.is_available,
	                 count(r.id) AS total_rentals,
	                 COALESCE(sum(r.total_amount), 0) AS total_revenue,
	                 v.rating_average
	          FROM vehicles v
	          LEFT JOIN rentals r ON r.vehicle_id = v.id
	          GROUP BY v.id, v.make, v.model, v.year, v.type, v.is_available, v.rating_average
	          ORDER BY v.make, v.model`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.VehicleReportRow
	for rows.Next() {
		var row domain.VehicleReportRow
		if err := rows.Scan(&row.VehicleID, &row.Make, &row.Model, &row.Year, &row.Type,
			&row.IsAvailable, &row.TotalRentals, &row.TotalRevenue, &row.AverageRating); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *reportRepository) UserRows(ctx context.Context, from, to *time.Time) ([]domain.UserReportRow, error) {
	query := `SELECT u.id, u.first_name, u.last_name, u.email, u.phone, u.created_at,
	                 count(r.id) AS total_rentals,
	                 COALESCE(sum(r.total_amount), 0) AS total_spent
	          FROM users u
	          LEFT JOIN rentals r ON r.user_id = u.id
	          WHERE u.role = 'customer'`
	args := []interface{}{}
	if from != nil && to != nil {
		query += ` AND u.created_at >= $1 AND u.created_at <= $2`
		args = append(args, *from, *to)
	}
	query += ` GROUP BY u.id, u.first_name, u.last_name, u.email, u.phone, u.created_at
	           ORDER BY u.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UserReportRow
	for rows.Next() {
		var row domain.UserReportRow
		if err := rows.Scan(&row.UserID, &row.FirstName, &row.LastName, &row.Email, &row.Phone,
			&row.CreatedAt, &row.TotalRentals, &row.TotalSpent); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
