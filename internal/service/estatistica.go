package service

import (
	"context"

	"github.com/Payphone-Digital/transportadora/internal/dto"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
)

type EstatisticaService struct {
	store StatsStore
	cache *StatsCache
}

func NewEstatisticaService(store StatsStore, cache *StatsCache) *EstatisticaService {
	return &EstatisticaService{store: store, cache: cache}
}

func (s *EstatisticaService) Get(ctx context.Context) (*dto.EstatisticasResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "Estatisticas")

	if stats, ok := s.cache.Get(ctx); ok {
		logger.DebugWithContext(ctx, "Estatisticas served from cache").Log()
		return stats, nil
	}

	stats, err := s.store.Counts(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Set(ctx, stats)
	return stats, nil
}
