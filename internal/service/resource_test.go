package service

import (
	"context"
	"testing"

	"github.com/Payphone-Digital/transportadora/internal/dto"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestTarefaService_CreateDefaultsAndDate(t *testing.T) {
	svc := NewTarefaService(newFakeTarefaStore(), newFakeMotoristaStore(), newFakeCaminhaoStore(), &countingInvalidator{})

	res, err := svc.Create(context.Background(), &dto.TarefaRequest{
		Titulo:       "Coleta em Campinas",
		DataPrevista: "2026-11-03",
	})
	require.NoError(t, err)

	assert.Equal(t, "pendente", res.Status)
	assert.Equal(t, "media", res.Prioridade)
	require.NotNil(t, res.DataPrevista)
	assert.Equal(t, "2026-11-03", *res.DataPrevista)
}

func TestTarefaService_ReferencesMustExist(t *testing.T) {
	ctx := context.Background()
	motoristas := newFakeMotoristaStore()
	svc := NewTarefaService(newFakeTarefaStore(), motoristas, newFakeCaminhaoStore(), &countingInvalidator{})

	_, err := svc.Create(ctx, &dto.TarefaRequest{Titulo: "Entrega", MotoristaID: uintPtr(9)})
	assert.ErrorIs(t, err, apperrors.ErrMotoristaNotFound)

	_, err = svc.Create(ctx, &dto.TarefaRequest{Titulo: "Entrega", CaminhaoID: uintPtr(9)})
	assert.ErrorIs(t, err, apperrors.ErrCaminhaoNotFound)

	m, err := NewMotoristaService(motoristas, &countingInvalidator{}).Create(ctx, &dto.MotoristaRequest{
		Nome: "João", CPF: "111.222.333-44", CNH: "12345678901",
	})
	require.NoError(t, err)

	res, err := svc.Create(ctx, &dto.TarefaRequest{Titulo: "Entrega", MotoristaID: uintPtr(m.ID)})
	require.NoError(t, err)
	assert.Equal(t, m.ID, *res.MotoristaID)
}

func TestTarefaService_UpdateKeepsStatusWhenOmitted(t *testing.T) {
	ctx := context.Background()
	svc := NewTarefaService(newFakeTarefaStore(), newFakeMotoristaStore(), newFakeCaminhaoStore(), &countingInvalidator{})

	created, err := svc.Create(ctx, &dto.TarefaRequest{Titulo: "Entrega", Status: "em_andamento", DataPrevista: "2026-11-03"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &dto.TarefaRequest{Titulo: "Entrega urgente", Prioridade: "alta"})
	require.NoError(t, err)

	assert.Equal(t, "em_andamento", updated.Status)
	assert.Equal(t, "alta", updated.Prioridade)
	assert.Nil(t, updated.DataPrevista)

	_, err = svc.Update(ctx, 404, &dto.TarefaRequest{Titulo: "Nada"})
	assert.ErrorIs(t, err, apperrors.ErrTarefaNotFound)
}

func TestTarefaService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewTarefaService(newFakeTarefaStore(), newFakeMotoristaStore(), newFakeCaminhaoStore(), &countingInvalidator{})

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrTarefaNotFound)
	_, err = svc.UpdateStatus(ctx, 1, "concluida")
	assert.ErrorIs(t, err, apperrors.ErrTarefaNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1), apperrors.ErrTarefaNotFound)
}

func TestMotoristaService_Conflicts(t *testing.T) {
	ctx := context.Background()
	svc := NewMotoristaService(newFakeMotoristaStore(), &countingInvalidator{})

	first, err := svc.Create(ctx, &dto.MotoristaRequest{Nome: "João", CPF: "11122233344", CNH: "12345678901"})
	require.NoError(t, err)
	assert.Equal(t, "111.222.333-44", first.CPF)
	assert.True(t, first.Ativo)

	_, err = svc.Create(ctx, &dto.MotoristaRequest{Nome: "Pedro", CPF: "111.222.333-44", CNH: "99999999999"})
	assert.ErrorIs(t, err, apperrors.ErrCPFExists)

	_, err = svc.Create(ctx, &dto.MotoristaRequest{Nome: "Pedro", CPF: "555.666.777-88", CNH: "12345678901"})
	assert.ErrorIs(t, err, apperrors.ErrCNHExists)

	inactive := false
	updated, err := svc.Update(ctx, first.ID, &dto.MotoristaRequest{Nome: "João", CPF: "11122233344", CNH: "12345678901", Ativo: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Ativo)
}

func TestCaminhaoService_PlacaNormalizedAndUnique(t *testing.T) {
	ctx := context.Background()
	svc := NewCaminhaoService(newFakeCaminhaoStore(), &countingInvalidator{})

	res, err := svc.Create(ctx, &dto.CaminhaoRequest{Placa: "abc-1234", Modelo: "FH 540", Ano: 2020, CapacidadeKg: 25000})
	require.NoError(t, err)
	assert.Equal(t, "ABC1234", res.Placa)
	assert.Equal(t, "disponivel", res.Status)

	_, err = svc.Create(ctx, &dto.CaminhaoRequest{Placa: "ABC1234", Modelo: "Actros", Ano: 2021, CapacidadeKg: 20000})
	assert.ErrorIs(t, err, apperrors.ErrPlacaExists)

	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrCaminhaoNotFound)
}
