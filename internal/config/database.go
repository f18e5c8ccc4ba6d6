package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"apnedoctors/resume-verifier/internal/models"
)

func InitDatabase(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Verification{},
		&models.MedicalExpert{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedMedicalExperts(db, log); err != nil {
		return nil, err
	}

	log.Info("database connected and migrated")

	return db, nil
}

// seedMedicalExperts inserts a sample reviewer contact when the table is
// empty so a fresh install can schedule interviews out of the box.
func seedMedicalExperts(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.MedicalExpert{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count medical experts: %w", err)
	}

	if count > 0 {
		return nil
	}

	sample := &models.MedicalExpert{
		CandidateID: "DOC123",
		Email:       "expert@example.com",
	}
	if err := db.Create(sample).Error; err != nil {
		return fmt.Errorf("failed to seed medical experts: %w", err)
	}

	log.Info("seeded sample medical expert data")
	return nil
}
