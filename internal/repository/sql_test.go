package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// statementLog records every statement a dry-run session would have sent
type statementLog struct {
	mu   sync.Mutex
	sqls []string
}

func (l *statementLog) record(tx *gorm.DB) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sqls = append(l.sqls, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
}

func (l *statementLog) last(t *testing.T) string {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	require.NotEmpty(t, l.sqls)
	return l.sqls[len(l.sqls)-1]
}

// newDryRunDB builds PostgreSQL statements without opening a connection
func newDryRunDB(t *testing.T) (*gorm.DB, *statementLog) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=transportadora dbname=transportadora sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormLogger.Discard,
	})
	require.NoError(t, err)

	log := &statementLog{}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", log.record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:record_update", log.record))
	return db, log
}

func TestUserRepository_FindActiveByEmailFiltersInactive(t *testing.T) {
	db, log := newDryRunDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindActiveByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)

	sql := log.last(t)
	assert.Contains(t, sql, `FROM "users"`)
	assert.Contains(t, sql, "email = 'ana@example.com' AND ativo = true")
	assert.Contains(t, sql, `"users"."deleted_at" IS NULL`)
}

func TestUserRepository_LookupsIgnoreActiveFlag(t *testing.T) {
	db, log := newDryRunDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.NotContains(t, log.last(t), "ativo")

	_, err = repo.FindByCPF(ctx, "123.456.789-01")
	require.NoError(t, err)
	assert.Contains(t, log.last(t), "cpf = '123.456.789-01'")
	assert.NotContains(t, log.last(t), "ativo")
}

func TestUserRepository_TouchLastActivityReportsMissingRow(t *testing.T) {
	db, log := newDryRunDB(t)
	repo := NewUserRepository(db)

	// a dry run affects no rows, which is what an unknown id looks like
	err := repo.TouchLastActivity(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	sql := log.last(t)
	assert.Contains(t, sql, `UPDATE "users" SET "ultimo_acesso"=`)
	assert.Contains(t, sql, "WHERE id = 42")
}

func TestUpdatesStampUpdatedAt(t *testing.T) {
	db, log := newDryRunDB(t)
	ctx := context.Background()
	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	motorista := &model.Motorista{Nome: "João", CPF: "11122233344", CNH: "12345678901"}
	motorista.ID, motorista.UpdatedAt = 7, stale
	_ = NewMotoristaRepository(db).Update(ctx, motorista)
	assert.True(t, motorista.UpdatedAt.After(stale))
	assert.Contains(t, log.last(t), `"updated_at"=`)

	caminhao := &model.Caminhao{Placa: "ABC1234", Modelo: "FH 540", Ano: 2020}
	caminhao.ID, caminhao.UpdatedAt = 7, stale
	_ = NewCaminhaoRepository(db).Update(ctx, caminhao)
	assert.True(t, caminhao.UpdatedAt.After(stale))

	tarefa := &model.Tarefa{Titulo: "Entrega", Status: "pendente", Prioridade: "media"}
	tarefa.ID, tarefa.UpdatedAt = 7, stale
	_ = NewTarefaRepository(db).Update(ctx, tarefa)
	assert.True(t, tarefa.UpdatedAt.After(stale))
}
