package postgres

import (
	"database/sql"

	"vehicle-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VehicleRepository
	repository.RentalRepository
	repository.QuoteRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		VehicleRepository: NewVehicleRepository(db),
		RentalRepository:  NewRentalRepository(db),
		QuoteRepository:   NewQuoteRepository(db),
		ReportRepository:  NewReportRepository(db),
	}
}
