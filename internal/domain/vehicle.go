package domain

import "time"

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeVan        VehicleType = "van"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeSUV        VehicleType = "suv"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeTruck, VehicleTypeVan, VehicleTypeMotorcycle, VehicleTypeSUV:
		return true
	}
	return false
}

// VehicleRating is the aggregate over all rated rentals of a vehicle.
type VehicleRating struct {
	Average float64 `json:"average"`
	Count   int32   `json:"count"`
}

type VehicleSpecifications struct {
	Engine          string `json:"engine,omitempty"`
	Transmission    string `json:"transmission,omitempty"`
	FuelType        string `json:"fuel_type,omitempty"`
	SeatingCapacity int32  `json:"seating_capacity,omitempty"`
	Color           string `json:"color,omitempty"`
}

type Vehicle struct {
	ID                 string                `json:"id"`
	Make               string                `json:"make"`
	Model              string                `json:"model"`
	Year               int32                 `json:"year"`
	Type               VehicleType           `json:"type"`
	RegistrationNumber string                `json:"registration_number"`
	Location           string                `json:"location"`
	Description        string                `json:"description"`
	PricePerDay        float64               `json:"price_per_day"`
	PricePerHour       float64               `json:"price_per_hour"`
	Specifications     VehicleSpecifications `json:"specifications"`
	IsAvailable        bool                  `json:"is_available"`
	// IsActive is the soft-delete flag; inactive vehicles never appear in
	// availability checks, quotes or reports.
	IsActive  bool          `json:"is_active"`
	Rating    VehicleRating `json:"rating"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
