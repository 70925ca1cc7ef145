package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/model"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"gorm.io/gorm"
)

type TarefaRepository struct {
	db *gorm.DB
}

func NewTarefaRepository(db *gorm.DB) *TarefaRepository {
	return &TarefaRepository{db: db}
}

func (r *TarefaRepository) List(ctx context.Context) ([]model.Tarefa, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "ListTarefas")

	start := time.Now()
	var tarefas []model.Tarefa
	err := r.db.WithContext(ctx).Order("id DESC").Find(&tarefas).Error
	duration := time.Since(start)

	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list tarefas").
			Duration(duration).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Tarefas listed").
		Int("count", len(tarefas)).
		Duration(duration).
		Log()

	return tarefas, nil
}

func (r *TarefaRepository) FindByID(ctx context.Context, id uint) (*model.Tarefa, error) {
	var tarefa model.Tarefa
	if err := r.db.WithContext(ctx).First(&tarefa, id).Error; err != nil {
		return nil, err
	}
	return &tarefa, nil
}

func (r *TarefaRepository) Create(ctx context.Context, tarefa *model.Tarefa) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "CreateTarefa")

	start := time.Now()
	err := r.db.WithContext(ctx).Create(tarefa).Error
	duration := time.Since(start)

	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create tarefa").
			String("titulo", tarefa.Titulo).
			Duration(duration).
			Err(err).
			Log()
		return classifyError(err)
	}

	logger.InfoWithContext(ctx, "Tarefa created").
		Uint("tarefa_id", tarefa.ID).
		Duration(duration).
		Log()

	return nil
}

// Update overwrites every editable column, including nulls
func (r *TarefaRepository) Update(ctx context.Context, tarefa *model.Tarefa) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "UpdateTarefa")

	tarefa.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&model.Tarefa{}).Where("id = ?", tarefa.ID).Updates(map[string]interface{}{
		"updated_at":    tarefa.UpdatedAt,
		"titulo":        tarefa.Titulo,
		"descricao":     tarefa.Descricao,
		"status":        tarefa.Status,
		"prioridade":    tarefa.Prioridade,
		"motorista_id":  tarefa.MotoristaID,
		"caminhao_id":   tarefa.CaminhaoID,
		"data_prevista": tarefa.DataPrevista,
		"origem":        tarefa.Origem,
		"destino":       tarefa.Destino,
	})
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update tarefa").
			Uint("tarefa_id", tarefa.ID).
			Err(result.Error).
			Log()
		return classifyError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TarefaRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "UpdateTarefaStatus")

	result := r.db.WithContext(ctx).Model(&model.Tarefa{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update tarefa status").
			Uint("tarefa_id", id).
			String("status", status).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TarefaRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "DeleteTarefa")

	result := r.db.WithContext(ctx).Delete(&model.Tarefa{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete tarefa").
			Uint("tarefa_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
