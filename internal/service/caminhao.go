package service

import (
	"context"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/dto"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/Payphone-Digital/transportadora/internal/model"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
)

type CaminhaoService struct {
	caminhoes CaminhaoStore
	stats     StatsInvalidator
}

func NewCaminhaoService(caminhoes CaminhaoStore, stats StatsInvalidator) *CaminhaoService {
	return &CaminhaoService{caminhoes: caminhoes, stats: stats}
}

func (s *CaminhaoService) List(ctx context.Context) ([]dto.CaminhaoResponse, error) {
	caminhoes, err := s.caminhoes.List(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.CaminhaoResponse, 0, len(caminhoes))
	for i := range caminhoes {
		res = append(res, toCaminhaoResponse(&caminhoes[i]))
	}
	return res, nil
}

func (s *CaminhaoService) Get(ctx context.Context, id uint) (*dto.CaminhaoResponse, error) {
	caminhao, err := s.caminhoes.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCaminhaoNotFound)
	}
	res := toCaminhaoResponse(caminhao)
	return &res, nil
}

func (s *CaminhaoService) Create(ctx context.Context, req *dto.CaminhaoRequest) (*dto.CaminhaoResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "CreateCaminhao")

	caminhao := &model.Caminhao{Status: constants.CaminhaoDisponivel}
	applyCaminhaoRequest(caminhao, req)

	if err := s.caminhoes.Create(ctx, caminhao); err != nil {
		return nil, storeError(err, apperrors.ErrCaminhaoNotFound)
	}
	s.stats.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Caminhao created").
		Uint("caminhao_id", caminhao.ID).
		String("placa", caminhao.Placa).
		Log()

	res := toCaminhaoResponse(caminhao)
	return &res, nil
}

func (s *CaminhaoService) Update(ctx context.Context, id uint, req *dto.CaminhaoRequest) (*dto.CaminhaoResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "UpdateCaminhao")

	caminhao, err := s.caminhoes.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrCaminhaoNotFound)
	}

	applyCaminhaoRequest(caminhao, req)

	if err := s.caminhoes.Update(ctx, caminhao); err != nil {
		return nil, storeError(err, apperrors.ErrCaminhaoNotFound)
	}
	s.stats.Invalidate(ctx)

	res := toCaminhaoResponse(caminhao)
	return &res, nil
}

func (s *CaminhaoService) Delete(ctx context.Context, id uint) error {
	if err := s.caminhoes.Delete(ctx, id); err != nil {
		return storeError(err, apperrors.ErrCaminhaoNotFound)
	}
	s.stats.Invalidate(ctx)
	return nil
}

func applyCaminhaoRequest(c *model.Caminhao, req *dto.CaminhaoRequest) {
	c.Placa = dto.NormalizePlaca(req.Placa)
	c.Modelo = req.Modelo
	c.Ano = req.Ano
	c.CapacidadeKg = req.CapacidadeKg
	if req.Status != "" {
		c.Status = req.Status
	}
}

func toCaminhaoResponse(c *model.Caminhao) dto.CaminhaoResponse {
	return dto.CaminhaoResponse{
		ID:           c.ID,
		Placa:        c.Placa,
		Modelo:       c.Modelo,
		Ano:          c.Ano,
		CapacidadeKg: c.CapacidadeKg,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
