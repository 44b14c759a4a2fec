package main

import (
	"flag"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
	dbpkg "github.com/Lis-Kacper/BeautySaloon/internal/db"
	"github.com/Lis-Kacper/BeautySaloon/internal/logging"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

// Creates (or re-keys) a dashboard admin account. Safe to run twice.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal().Msg("-password is required")
	}

	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	admin := models.Admin{
		Username:     models.NormalizeUsername(*username),
		PasswordHash: string(hashed),
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash"}),
	}).Create(&admin).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create admin")
	}

	log.Info().Str("username", admin.Username).Msg("admin user ready")
}
