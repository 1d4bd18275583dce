package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, make, model, year, type, registration_number, location, description,
	price_per_day, price_per_hour, engine, transmission, fuel_type, seating_capacity, color,
	is_available, is_active, rating_average, rating_count, created_at, updated_at`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (id, make, model, year, type, registration_number, location, description,
	          price_per_day, price_per_hour, engine, transmission, fuel_type, seating_capacity, color,
	          is_available, is_active, rating_average, rating_count, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.Make, v.Model, v.Year, v.Type, v.RegistrationNumber, v.Location, v.Description,
		v.PricePerDay, v.PricePerHour,
		v.Specifications.Engine, v.Specifications.Transmission, v.Specifications.FuelType,
		v.Specifications.SeatingCapacity, v.Specifications.Color,
		v.IsAvailable, v.IsActive, v.Rating.Average, v.Rating.Count, v.CreatedAt, v.UpdatedAt)
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("vehicle", id)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET make=$1, model=$2, year=$3, type=$4, location=$5, description=$6,
	          price_per_day=$7, price_per_hour=$8, is_available=$9, is_active=$10, updated_at=$11
	          WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query,
		v.Make, v.Model, v.Year, v.Type, v.Location, v.Description,
		v.PricePerDay, v.PricePerHour, v.IsAvailable, v.IsActive, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE vehicles SET is_active=false, updated_at=$1 WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("vehicle", id)
	}
	return nil
}

func (r *vehicleRepository) List(ctx context.Context, onlyAvailable bool, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	where := `WHERE is_active = true`
	if onlyAvailable {
		where += ` AND is_available = true`
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles `+where).Scan(&count); err != nil {
		return nil, 0, err
	}

	// Computed in int64 so an out-of-range page cannot wrap into a
	// negative offset.
	offset := (int64(page) - 1) * int64(pageSize)
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, count, rows.Err()
}

// RecomputeRating refreshes the aggregate from rated rentals in one UPDATE,
// so concurrent raters on the same vehicle cannot lose each other's writes.
func (r *vehicleRepository) RecomputeRating(ctx context.Context, vehicleID string) (*domain.VehicleRating, error) {
	query := `UPDATE vehicles v SET
	            rating_average = COALESCE(agg.avg_score, 0),
	            rating_count   = COALESCE(agg.cnt, 0),
	            updated_at     = $2
	          FROM (
	            SELECT ROUND(AVG(rating_score)::numeric, 1) AS avg_score, COUNT(*) AS cnt
	            FROM rentals
	            WHERE vehicle_id = $1 AND rating_score IS NOT NULL
	          ) agg
	          WHERE v.id = $1
	          RETURNING v.rating_average, v.rating_count`
	rating := &domain.VehicleRating{}
	err := r.db.QueryRowContext(ctx, query, vehicleID, time.Now()).Scan(&rating.Average, &rating.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("vehicle", vehicleID)
	}
	if err != nil {
		return nil, err
	}
	return rating, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := row.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.Type, &v.RegistrationNumber,
		&v.Location, &v.Description, &v.PricePerDay, &v.PricePerHour,
		&v.Specifications.Engine, &v.Specifications.Transmission, &v.Specifications.FuelType,
		&v.Specifications.SeatingCapacity, &v.Specifications.Color,
		&v.IsAvailable, &v.IsActive, &v.Rating.Average, &v.Rating.Count,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}
