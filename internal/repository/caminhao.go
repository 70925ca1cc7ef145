package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/model"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"gorm.io/gorm"
)

type CaminhaoRepository struct {
	db *gorm.DB
}

func NewCaminhaoRepository(db *gorm.DB) *CaminhaoRepository {
	return &CaminhaoRepository{db: db}
}

func (r *CaminhaoRepository) List(ctx context.Context) ([]model.Caminhao, error) {
	var caminhoes []model.Caminhao
	if err := r.db.WithContext(ctx).Order("placa ASC").Find(&caminhoes).Error; err != nil {
		logger.ErrorWithContext(ctxutil.WithFunction(ctx, "repository", "ListCaminhoes"), "Failed to list caminhoes").
			Err(err).
			Log()
		return nil, err
	}
	return caminhoes, nil
}

func (r *CaminhaoRepository) FindByID(ctx context.Context, id uint) (*model.Caminhao, error) {
	var caminhao model.Caminhao
	if err := r.db.WithContext(ctx).First(&caminhao, id).Error; err != nil {
		return nil, err
	}
	return &caminhao, nil
}

func (r *CaminhaoRepository) Create(ctx context.Context, caminhao *model.Caminhao) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "CreateCaminhao")

	start := time.Now()
	err := r.db.WithContext(ctx).Create(caminhao).Error
	duration := time.Since(start)

	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create caminhao").
			String("placa", caminhao.Placa).
			Duration(duration).
			Err(err).
			Log()
		return classifyError(err)
	}

	logger.InfoWithContext(ctx, "Caminhao created").
		Uint("caminhao_id", caminhao.ID).
		Duration(duration).
		Log()

	return nil
}

func (r *CaminhaoRepository) Update(ctx context.Context, caminhao *model.Caminhao) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "UpdateCaminhao")

	caminhao.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&model.Caminhao{}).Where("id = ?", caminhao.ID).Updates(map[string]interface{}{
		"updated_at":    caminhao.UpdatedAt,
		"placa":         caminhao.Placa,
		"modelo":        caminhao.Modelo,
		"ano":           caminhao.Ano,
		"capacidade_kg": caminhao.CapacidadeKg,
		"status":        caminhao.Status,
	})
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update caminhao").
			Uint("caminhao_id", caminhao.ID).
			Err(result.Error).
			Log()
		return classifyError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CaminhaoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Caminhao{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CaminhaoRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Caminhao{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
