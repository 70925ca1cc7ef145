package service

import (
	"context"

	"github.com/Payphone-Digital/transportadora/internal/dto"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/Payphone-Digital/transportadora/internal/model"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
)

type MotoristaService struct {
	motoristas MotoristaStore
	stats      StatsInvalidator
}

func NewMotoristaService(motoristas MotoristaStore, stats StatsInvalidator) *MotoristaService {
	return &MotoristaService{motoristas: motoristas, stats: stats}
}

func (s *MotoristaService) List(ctx context.Context) ([]dto.MotoristaResponse, error) {
	motoristas, err := s.motoristas.List(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	res := make([]dto.MotoristaResponse, 0, len(motoristas))
	for i := range motoristas {
		res = append(res, toMotoristaResponse(&motoristas[i]))
	}
	return res, nil
}

func (s *MotoristaService) Get(ctx context.Context, id uint) (*dto.MotoristaResponse, error) {
	motorista, err := s.motoristas.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrMotoristaNotFound)
	}
	res := toMotoristaResponse(motorista)
	return &res, nil
}

// Create relies on the unique indexes for cpf and cnh
func (s *MotoristaService) Create(ctx context.Context, req *dto.MotoristaRequest) (*dto.MotoristaResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "CreateMotorista")

	motorista := &model.Motorista{Ativo: true}
	applyMotoristaRequest(motorista, req)

	if err := s.motoristas.Create(ctx, motorista); err != nil {
		return nil, storeError(err, apperrors.ErrMotoristaNotFound)
	}
	s.stats.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Motorista created").
		Uint("motorista_id", motorista.ID).
		Log()

	res := toMotoristaResponse(motorista)
	return &res, nil
}

func (s *MotoristaService) Update(ctx context.Context, id uint, req *dto.MotoristaRequest) (*dto.MotoristaResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "UpdateMotorista")

	motorista, err := s.motoristas.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrMotoristaNotFound)
	}

	applyMotoristaRequest(motorista, req)

	if err := s.motoristas.Update(ctx, motorista); err != nil {
		return nil, storeError(err, apperrors.ErrMotoristaNotFound)
	}
	s.stats.Invalidate(ctx)

	res := toMotoristaResponse(motorista)
	return &res, nil
}

func (s *MotoristaService) Delete(ctx context.Context, id uint) error {
	if err := s.motoristas.Delete(ctx, id); err != nil {
		return storeError(err, apperrors.ErrMotoristaNotFound)
	}
	s.stats.Invalidate(ctx)
	return nil
}

func applyMotoristaRequest(m *model.Motorista, req *dto.MotoristaRequest) {
	m.Nome = req.Nome
	m.CPF = dto.NormalizeCPF(req.CPF)
	m.CNH = req.CNH
	m.Telefone = req.Telefone
	if req.Ativo != nil {
		m.Ativo = *req.Ativo
	}
}

func toMotoristaResponse(m *model.Motorista) dto.MotoristaResponse {
	return dto.MotoristaResponse{
		ID:        m.ID,
		Nome:      m.Nome,
		CPF:       m.CPF,
		CNH:       m.CNH,
		Telefone:  m.Telefone,
		Ativo:     m.Ativo,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
