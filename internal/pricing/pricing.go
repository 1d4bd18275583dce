// Package pricing computes the monetary terms of a rental or quote. It is
// the single pricing implementation for both the direct booking flow and
// the quote flow; direct callers take Breakdown.TotalAmount.
package pricing

import (
	"math"
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Per-day add-on rates. Fixed business constants, not configuration.
const (
	InsuranceRatePerDay        = 15.0
	GPSRatePerDay              = 5.0
	ChildSeatRatePerDay        = 8.0
	AdditionalDriverRatePerDay = 10.0

	// TaxRate applies to base plus add-ons.
	TaxRate = 0.10

	// Security deposits by vehicle type. Refundable holds, excluded from
	// the total.
	CarDeposit   = 500.0
	OtherDeposit = 200.0
)

// Days returns the number of billable days for the interval. Partial days
// round up, with a minimum of one day.
func Days(start, end time.Time) int {
	d := end.Sub(start)
	days := int(math.Ceil(d.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// Quote prices the interval for the vehicle with the selected add-ons.
// It is a pure function of its arguments; identical inputs always produce
// an identical breakdown.
func Quote(vehicle *domain.Vehicle, start, end time.Time, addons domain.AdditionalServices) domain.PriceBreakdown {
	days := float64(Days(start, end))

	baseAmount := days * vehicle.PricePerDay

	var additionalServicesAmount float64
	if addons.Insurance {
		additionalServicesAmount += days * InsuranceRatePerDay
	}
	if addons.GPS {
		additionalServicesAmount += days * GPSRatePerDay
	}
	if addons.ChildSeat {
		additionalServicesAmount += days * ChildSeatRatePerDay
	}
	if addons.AdditionalDriver {
		additionalServicesAmount += days * AdditionalDriverRatePerDay
	}

	var insuranceAmount float64
	if addons.Insurance {
		insuranceAmount = days * InsuranceRatePerDay
	}

	subtotal := baseAmount + additionalServicesAmount
	taxes := Round2(subtotal * TaxRate)

	deposit := OtherDeposit
	if vehicle.Type == domain.VehicleTypeCar {
		deposit = CarDeposit
	}

	return domain.PriceBreakdown{
		BaseAmount:               baseAmount,
		AdditionalServicesAmount: additionalServicesAmount,
		InsuranceAmount:          insuranceAmount,
		Taxes:                    taxes,
		SecurityDeposit:          deposit,
		TotalAmount:              Round2(subtotal + taxes),
	}
}

// Round2 rounds to two decimal places, half away from zero on the cent.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
