package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/model"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"gorm.io/gorm"
)

type MotoristaRepository struct {
	db *gorm.DB
}

func NewMotoristaRepository(db *gorm.DB) *MotoristaRepository {
	return &MotoristaRepository{db: db}
}

func (r *MotoristaRepository) List(ctx context.Context) ([]model.Motorista, error) {
	var motoristas []model.Motorista
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&motoristas).Error; err != nil {
		logger.ErrorWithContext(ctxutil.WithFunction(ctx, "repository", "ListMotoristas"), "Failed to list motoristas").
			Err(err).
			Log()
		return nil, err
	}
	return motoristas, nil
}

func (r *MotoristaRepository) FindByID(ctx context.Context, id uint) (*model.Motorista, error) {
	var motorista model.Motorista
	if err := r.db.WithContext(ctx).First(&motorista, id).Error; err != nil {
		return nil, err
	}
	return &motorista, nil
}

func (r *MotoristaRepository) Create(ctx context.Context, motorista *model.Motorista) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "CreateMotorista")

	start := time.Now()
	err := r.db.WithContext(ctx).Create(motorista).Error
	duration := time.Since(start)

	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create motorista").
			Duration(duration).
			Err(err).
			Log()
		return classifyError(err)
	}

	logger.InfoWithContext(ctx, "Motorista created").
		Uint("motorista_id", motorista.ID).
		Duration(duration).
		Log()

	return nil
}

func (r *MotoristaRepository) Update(ctx context.Context, motorista *model.Motorista) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "UpdateMotorista")

	motorista.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&model.Motorista{}).Where("id = ?", motorista.ID).Updates(map[string]interface{}{
		"updated_at": motorista.UpdatedAt,
		"nome":       motorista.Nome,
		"cpf":        motorista.CPF,
		"cnh":        motorista.CNH,
		"telefone":   motorista.Telefone,
		"ativo":      motorista.Ativo,
	})
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update motorista").
			Uint("motorista_id", motorista.ID).
			Err(result.Error).
			Log()
		return classifyError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MotoristaRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Motorista{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MotoristaRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Motorista{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
