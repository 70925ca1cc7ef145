package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/dto"
	"github.com/Payphone-Digital/transportadora/internal/model"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"gorm.io/gorm"
)

type EstatisticaRepository struct {
	db *gorm.DB
}

func NewEstatisticaRepository(db *gorm.DB) *EstatisticaRepository {
	return &EstatisticaRepository{db: db}
}

type statusCount struct {
	Status string
	Total  int64
}

// Counts reads every counter in one read-only transaction so the numbers agree
func (r *EstatisticaRepository) Counts(ctx context.Context) (*dto.EstatisticasResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "Counts")

	start := time.Now()
	var out dto.EstatisticasResponse

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tarefas []statusCount
		if err := tx.Model(&model.Tarefa{}).Select("status, COUNT(*) AS total").Group("status").Scan(&tarefas).Error; err != nil {
			return err
		}
		for _, row := range tarefas {
			out.Tarefas.Total += row.Total
			switch row.Status {
			case constants.TarefaPendente:
				out.Tarefas.Pendente = row.Total
			case constants.TarefaEmAndamento:
				out.Tarefas.EmAndamento = row.Total
			case constants.TarefaConcluida:
				out.Tarefas.Concluida = row.Total
			}
		}

		var caminhoes []statusCount
		if err := tx.Model(&model.Caminhao{}).Select("status, COUNT(*) AS total").Group("status").Scan(&caminhoes).Error; err != nil {
			return err
		}
		for _, row := range caminhoes {
			out.Caminhoes.Total += row.Total
			switch row.Status {
			case constants.CaminhaoDisponivel:
				out.Caminhoes.Disponivel = row.Total
			case constants.CaminhaoEmRota:
				out.Caminhoes.EmRota = row.Total
			case constants.CaminhaoManutencao:
				out.Caminhoes.Manutencao = row.Total
			}
		}

		if err := tx.Model(&model.Motorista{}).Count(&out.Motoristas.Total).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Motorista{}).Where("ativo = ?", true).Count(&out.Motoristas.Ativos).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Count(&out.Usuarios.Total).Error
	})
	duration := time.Since(start)

	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to compute estatisticas").
			Duration(duration).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Estatisticas computed").
		Duration(duration).
		Log()

	return &out, nil
}
