package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

const (
	// RollupWindow is the trailing window of the monthly rental rollup.
	RollupWindow = 365 * 24 * time.Hour
	// RollupMaxBuckets caps the rollup at one year of months.
	RollupMaxBuckets = 12
	// RecentActivityLimit is how many newest rentals and users the
	// dashboard activity feed shows.
	RecentActivityLimit = 5
)

type reportService struct {
	reportRepo repository.ReportRepository
	cache      DashboardCache
	now        func() time.Time
}

func NewReportService(reportRepo repository.ReportRepository, cache DashboardCache, now func() time.Time) ReportService {
	if now == nil {
		now = time.Now
	}
	return &reportService{reportRepo: reportRepo, cache: cache, now: now}
}

// Dashboard assembles the admin landing-page aggregates. The unfiltered
// payload is served from cache when fresh; date-filtered requests always
// hit the database.
func (s *reportService) Dashboard(ctx context.Context, from, to *time.Time) (*domain.DashboardData, error) {
	filtered := from != nil || to != nil
	if !filtered && s.cache != nil {
		if cached, err := s.cache.GetDashboard(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	overview, err := s.reportRepo.DashboardOverview(ctx, from, to)
	if err != nil {
		return nil, err
	}
	monthly, err := s.reportRepo.MonthlyRollup(ctx, s.now().Add(-RollupWindow), RollupMaxBuckets)
	if err != nil {
		return nil, err
	}
	distribution, err := s.reportRepo.VehicleTypeDistribution(ctx)
	if err != nil {
		return nil, err
	}
	recentRentals, err := s.reportRepo.RecentRentals(ctx, RecentActivityLimit)
	if err != nil {
		return nil, err
	}
	recentUsers, err := s.reportRepo.RecentUsers(ctx, RecentActivityLimit)
	if err != nil {
		return nil, err
	}

	data := &domain.DashboardData{
		Overview:            *overview,
		MonthlyStats:        monthly,
		VehicleDistribution: distribution,
		RecentRentals:       recentRentals,
		RecentUsers:         recentUsers,
	}
	if !filtered && s.cache != nil {
		_ = s.cache.SetDashboard(ctx, data)
	}
	return data, nil
}

func (s *reportService) Report(ctx context.Context, reportType domain.ReportType, from, to *time.Time) (*ReportData, error) {
	if !reportType.Valid() {
		return nil, domain.NewValidationError("invalid report type: %s", reportType)
	}

	data := &ReportData{Type: reportType}
	var err error
	switch reportType {
	case domain.ReportTypeRentals:
		data.Rentals, err = s.reportRepo.RentalRows(ctx, from, to)
	case domain.ReportTypeVehicles:
		data.Vehicles, err = s.reportRepo.VehicleRows(ctx)
	case domain.ReportTypeUsers:
		data.Users, err = s.reportRepo.UserRows(ctx, from, to)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ExportCSV renders a report as CSV. A report with no rows renders as the
// empty string. Otherwise the header row carries the field names, and values
// containing commas, quotes, or newlines are quote-wrapped with embedded
// quotes doubled.
func (s *reportService) ExportCSV(data *ReportData) (string, error) {
	switch data.Type {
	case domain.ReportTypeRentals:
		rows := make([][]any, 0, len(data.Rentals))
		for _, r := range data.Rentals {
			rows = append(rows, []any{
				r.RentalID, r.UserName, r.UserEmail, r.VehicleMake, r.VehicleModel,
				r.VehicleYear, r.VehicleType, r.StartDate, r.EndDate, r.TotalAmount, r.RentalStatus,
			})
		}
		return renderCSV([]string{
			"rental_id", "user_name", "user_email", "vehicle_make", "vehicle_model",
			"vehicle_year", "vehicle_type", "start_date", "end_date", "total_amount", "rental_status",
		}, rows), nil
	case domain.ReportTypeVehicles:
		rows := make([][]any, 0, len(data.Vehicles))
		for _, v := range data.Vehicles {
			rows = append(rows, []any{
				v.VehicleID, v.Make, v.Model, v.Year, v.Type, v.IsAvailable,
				v.TotalRentals, v.TotalRevenue, v.AverageRating,
			})
		}
		return renderCSV([]string{
			"vehicle_id", "make", "model", "year", "type", "is_available",
			"total_rentals", "total_revenue", "average_rating",
		}, rows), nil
	case domain.ReportTypeUsers:
		rows := make([][]any, 0, len(data.Users))
		for _, u := range data.Users {
			rows = append(rows, []any{
				u.UserID, u.FirstName, u.LastName, u.Email, u.Phone,
				u.CreatedAt, u.TotalRentals, u.TotalSpent,
			})
		}
		return renderCSV([]string{
			"user_id", "first_name", "last_name", "email", "phone",
			"created_at", "total_rentals", "total_spent",
		}, rows), nil
	}
	return "", domain.NewValidationError("invalid report type: %s", data.Type)
}

// renderCSV writes the header only when there is at least one row; an empty
// report is the empty string.
func renderCSV(headers []string, rows [][]any) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	b.WriteByte('\n')
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = escapeCSV(formatCSVValue(v))
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatCSVValue flattens one cell. Slices join with "; "; structs and
// maps embed as JSON; times render as RFC 3339.
func formatCSVValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case []string:
		return strings.Join(val, "; ")
	case domain.VehicleType:
		return string(val)
	case domain.RentalStatus:
		return string(val)
	case domain.QuoteStatus:
		return string(val)
	default:
		if encoded, err := json.Marshal(val); err == nil {
			return string(encoded)
		}
		return fmt.Sprintf("%v", val)
	}
}

// escapeCSV quote-wraps a cell that contains a comma, quote, or newline,
// doubling any embedded quotes.
func escapeCSV(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
