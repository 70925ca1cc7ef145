package database

import (
	"fmt"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/model"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in migration order
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Motorista{},
		&model.Caminhao{},
		&model.Tarefa{},
	}
}

// AutoMigrate creates or updates the tables and then the secondary indexes
func AutoMigrate(db *gorm.DB) error {
	start := time.Now()

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	OptimizedIndexes(db)

	logger.GetLogger().Info("Database migrated",
		zap.Duration("migration_time", time.Since(start)),
	)
	return nil
}
