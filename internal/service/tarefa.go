package service

import (
	"context"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/dto"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/Payphone-Digital/transportadora/internal/model"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"gorm.io/datatypes"
)

type TarefaService struct {
	tarefas    TarefaStore
	motoristas MotoristaStore
	caminhoes  CaminhaoStore
	stats      StatsInvalidator
}

func NewTarefaService(tarefas TarefaStore, motoristas MotoristaStore, caminhoes CaminhaoStore, stats StatsInvalidator) *TarefaService {
	return &TarefaService{
		tarefas:    tarefas,
		motoristas: motoristas,
		caminhoes:  caminhoes,
		stats:      stats,
	}
}

func (s *TarefaService) List(ctx context.Context) ([]dto.TarefaResponse, error) {
	tarefas, err := s.tarefas.List(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.TarefaResponse, 0, len(tarefas))
	for i := range tarefas {
		res = append(res, toTarefaResponse(&tarefas[i]))
	}
	return res, nil
}

func (s *TarefaService) Get(ctx context.Context, id uint) (*dto.TarefaResponse, error) {
	tarefa, err := s.tarefas.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrTarefaNotFound)
	}
	res := toTarefaResponse(tarefa)
	return &res, nil
}

func (s *TarefaService) Create(ctx context.Context, req *dto.TarefaRequest) (*dto.TarefaResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "CreateTarefa")

	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	tarefa := &model.Tarefa{
		Status:     constants.TarefaPendente,
		Prioridade: constants.PrioridadeMedia,
	}
	applyTarefaRequest(tarefa, req)

	if err := s.tarefas.Create(ctx, tarefa); err != nil {
		return nil, storeError(err, apperrors.ErrTarefaNotFound)
	}
	s.stats.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Tarefa created").
		Uint("tarefa_id", tarefa.ID).
		Log()

	res := toTarefaResponse(tarefa)
	return &res, nil
}

// Update replaces the tarefa. Empty status or prioridade keep the stored value.
func (s *TarefaService) Update(ctx context.Context, id uint, req *dto.TarefaRequest) (*dto.TarefaResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "UpdateTarefa")

	tarefa, err := s.tarefas.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrTarefaNotFound)
	}

	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	applyTarefaRequest(tarefa, req)

	if err := s.tarefas.Update(ctx, tarefa); err != nil {
		return nil, storeError(err, apperrors.ErrTarefaNotFound)
	}
	s.stats.Invalidate(ctx)

	res := toTarefaResponse(tarefa)
	return &res, nil
}

func (s *TarefaService) UpdateStatus(ctx context.Context, id uint, status string) (*dto.TarefaResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "UpdateTarefaStatus")

	if err := s.tarefas.UpdateStatus(ctx, id, status); err != nil {
		return nil, storeError(err, apperrors.ErrTarefaNotFound)
	}
	s.stats.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Tarefa status changed").
		Uint("tarefa_id", id).
		String("status", status).
		Log()

	return s.Get(ctx, id)
}

func (s *TarefaService) Delete(ctx context.Context, id uint) error {
	if err := s.tarefas.Delete(ctx, id); err != nil {
		return storeError(err, apperrors.ErrTarefaNotFound)
	}
	s.stats.Invalidate(ctx)
	return nil
}

func (s *TarefaService) checkReferences(ctx context.Context, req *dto.TarefaRequest) error {
	if req.MotoristaID != nil {
		ok, err := s.motoristas.Exists(ctx, *req.MotoristaID)
		if err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
		if !ok {
			return apperrors.ErrMotoristaNotFound
		}
	}

	if req.CaminhaoID != nil {
		ok, err := s.caminhoes.Exists(ctx, *req.CaminhaoID)
		if err != nil {
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
		if !ok {
			return apperrors.ErrCaminhaoNotFound
		}
	}

	return nil
}

// applyTarefaRequest expects a request that already passed validation
func applyTarefaRequest(t *model.Tarefa, req *dto.TarefaRequest) {
	t.Titulo = req.Titulo
	t.Descricao = req.Descricao
	if req.Status != "" {
		t.Status = req.Status
	}
	if req.Prioridade != "" {
		t.Prioridade = req.Prioridade
	}
	t.MotoristaID = req.MotoristaID
	t.CaminhaoID = req.CaminhaoID
	t.Origem = req.Origem
	t.Destino = req.Destino

	t.DataPrevista = nil
	if req.DataPrevista != "" {
		if parsed, err := time.Parse(constants.DateLayout, req.DataPrevista); err == nil {
			d := datatypes.Date(parsed)
			t.DataPrevista = &d
		}
	}
}

func toTarefaResponse(t *model.Tarefa) dto.TarefaResponse {
	var data *string
	if t.DataPrevista != nil {
		s := time.Time(*t.DataPrevista).Format(constants.DateLayout)
		data = &s
	}

	return dto.TarefaResponse{
		ID:           t.ID,
		Titulo:       t.Titulo,
		Descricao:    t.Descricao,
		Status:       t.Status,
		Prioridade:   t.Prioridade,
		MotoristaID:  t.MotoristaID,
		CaminhaoID:   t.CaminhaoID,
		DataPrevista: data,
		Origem:       t.Origem,
		Destino:      t.Destino,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
