package service

import (
	"context"

	"github.com/Payphone-Digital/transportadora/internal/dto"
	"github.com/Payphone-Digital/transportadora/internal/model"
)

// UserStore is the credential store as seen by the auth core.
// Lookups return gorm.ErrRecordNotFound when nothing matches.
type UserStore interface {
	FindActiveByEmail(ctx context.Context, email string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByCPF(ctx context.Context, cpf string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, user *model.User, afterInsert func(*model.User) error) error
	TouchLastActivity(ctx context.Context, id uint) error
}

type TarefaStore interface {
	List(ctx context.Context) ([]model.Tarefa, error)
	FindByID(ctx context.Context, id uint) (*model.Tarefa, error)
	Create(ctx context.Context, tarefa *model.Tarefa) error
	Update(ctx context.Context, tarefa *model.Tarefa) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type MotoristaStore interface {
	List(ctx context.Context) ([]model.Motorista, error)
	FindByID(ctx context.Context, id uint) (*model.Motorista, error)
	Create(ctx context.Context, motorista *model.Motorista) error
	Update(ctx context.Context, motorista *model.Motorista) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type CaminhaoStore interface {
	List(ctx context.Context) ([]model.Caminhao, error)
	FindByID(ctx context.Context, id uint) (*model.Caminhao, error)
	Create(ctx context.Context, caminhao *model.Caminhao) error
	Update(ctx context.Context, caminhao *model.Caminhao) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type StatsStore interface {
	Counts(ctx context.Context) (*dto.EstatisticasResponse, error)
}

// StatsInvalidator is notified after every write that changes the counters
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}
