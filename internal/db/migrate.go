package db

import (
	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
)

// Migrate runs database migrations. Unique indexes created here (CNPJ, CPF,
// plate, the per-owner document name pairs) are the concurrency-correctness
// mechanism for parallel uploads, so migrations must run before serving.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Company{},
		&model.Driver{},
		&model.Vehicle{},
		&model.CompanyDocument{},
		&model.DriverDocument{},
		&model.VehicleDocument{},
		&model.AlertConfig{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
