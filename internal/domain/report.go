package domain

import "time"

type ReportType string

const (
	ReportTypeRentals  ReportType = "rentals"
	ReportTypeVehicles ReportType = "vehicles"
	ReportTypeUsers    ReportType = "users"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportTypeRentals, ReportTypeVehicles, ReportTypeUsers:
		return true
	}
	return false
}

// DashboardOverview is the admin landing-page counter set.
type DashboardOverview struct {
	TotalUsers        int64 `json:"total_users"`
	TotalVehicles     int64 `json:"total_vehicles"`
	ActiveRentals     int64 `json:"active_rentals"`
	PendingQuotes     int64 `json:"pending_quotes"`
	AvailableVehicles int64 `json:"available_vehicles"`
}

// DashboardData is the full admin dashboard payload.
type DashboardData struct {
	Overview            DashboardOverview  `json:"overview"`
	MonthlyStats        []MonthlyStat      `json:"monthly_stats"`
	VehicleDistribution []VehicleTypeCount `json:"vehicle_distribution"`
	RecentRentals       []RentalReportRow  `json:"recent_rentals"`
	RecentUsers         []User             `json:"recent_users"`
}

// MonthlyStat is one bucket of the trailing-year rental rollup.
type MonthlyStat struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Rentals int64   `json:"rentals"`
	Revenue float64 `json:"revenue"`
}

// VehicleTypeCount is one bucket of the active-vehicle type distribution.
type VehicleTypeCount struct {
	Type  VehicleType `json:"type"`
	Count int64       `json:"count"`
}

// RentalReportRow is a flat rental listing row with identifying user and
// vehicle fields, as exported by the rentals report.
type RentalReportRow struct {
	RentalID     string       `json:"rental_id"`
	UserName     string       `json:"user_name"`
	UserEmail    string       `json:"user_email"`
	VehicleMake  string       `json:"vehicle_make"`
	VehicleModel string       `json:"vehicle_model"`
	VehicleYear  int32        `json:"vehicle_year"`
	VehicleType  VehicleType  `json:"vehicle_type"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	TotalAmount  float64      `json:"total_amount"`
	RentalStatus RentalStatus `json:"rental_status"`
}

// VehicleReportRow aggregates per-vehicle rental activity.
type VehicleReportRow struct {
	VehicleID     string      `json:"vehicle_id"`
	Make          string      `json:"make"`
	Model         string      `json:"model"`
	Year          int32       `json:"year"`
	Type          VehicleType `json:"type"`
	IsAvailable   bool        `json:"is_available"`
	TotalRentals  int64       `json:"total_rentals"`
	TotalRevenue  float64     `json:"total_revenue"`
	AverageRating float64     `json:"average_rating"`
}

// UserReportRow aggregates per-customer rental activity.
type UserReportRow struct {
	UserID       string    `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	TotalRentals int64     `json:"total_rentals"`
	TotalSpent   float64   `json:"total_spent"`
}
