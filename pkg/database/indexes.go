package database

import (
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// secondaryIndexes back the list and statistics queries. Single-column and
// unique indexes live on the models so the constraint names stay stable.
var secondaryIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_tarefas_status_prioridade ON tarefas(status, prioridade) WHERE deleted_at IS NULL;",
	"CREATE INDEX IF NOT EXISTS idx_motoristas_ativo ON motoristas(ativo) WHERE deleted_at IS NULL;",
	"CREATE INDEX IF NOT EXISTS idx_users_email_ativo ON users(email) WHERE ativo = true AND deleted_at IS NULL;",
}

var analyzedTables = []string{"users", "motoristas", "caminhoes", "tarefas"}

// OptimizedIndexes creates the secondary indexes and refreshes planner
// statistics. Failures are logged and skipped.
func OptimizedIndexes(db *gorm.DB) {
	created := 0
	for _, indexSQL := range secondaryIndexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			logger.GetLogger().Warn("Failed to create index",
				zap.String("sql", indexSQL),
				zap.Error(err),
			)
			continue
		}
		created++
	}

	for _, table := range analyzedTables {
		if err := db.Exec("ANALYZE " + table + ";").Error; err != nil {
			logger.GetLogger().Warn("Failed to analyze table",
				zap.String("table", table),
				zap.Error(err),
			)
		}
	}

	logger.GetLogger().Info("Secondary indexes ensured",
		zap.Int("created", created),
		zap.Int("total", len(secondaryIndexes)),
	)
}
