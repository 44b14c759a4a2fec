package db

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Appointment{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Overlapping [start_time, end_time) ranges are rejected by the
	// database itself, so two booking transactions racing past the
	// conflict check can never both commit. Booting without this
	// constraint would silently reopen the race, so failure to install
	// it is fatal.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create btree_gist extension")
	}
	err = db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            tstzrange(start_time, end_time, '[)') WITH &&
        )
    `).Error
	if err != nil && !isDuplicateObject(err) {
		log.Fatal().Err(err).Msg("failed to add overlap constraint")
	}

	return db
}

// Postgres error codes for objects that already exist; the overlap
// constraint hits these on every restart after the first.
const (
	duplicateObject = "42710"
	duplicateTable  = "42P07"
)

func isDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == duplicateObject || pgErr.Code == duplicateTable
	}
	return false
}
