package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/dto"
	"github.com/Payphone-Digital/transportadora/internal/model"
	"github.com/Payphone-Digital/transportadora/internal/repository"
	"gorm.io/gorm"
)

// fakeUserStore mimics the unique indexes and the transactional Create of the real store
type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*model.User

	// hideCPF makes FindByCPF miss so the insert-time constraint is exercised
	hideCPF    bool
	findErr    error
	touchErr   error
	touchCalls int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*model.User{}}
}

func (f *fakeUserStore) find(match func(*model.User) bool) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindActiveByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.find(func(u *model.User) bool { return u.Email == email && u.Ativo })
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.find(func(u *model.User) bool { return u.Email == email })
}

func (f *fakeUserStore) FindByCPF(_ context.Context, cpf string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideCPF {
		return nil, gorm.ErrRecordNotFound
	}
	return f.find(func(u *model.User) bool { return u.CPF == cpf })
}

func (f *fakeUserStore) FindByID(_ context.Context, id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.find(func(u *model.User) bool { return u.ID == id })
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User, afterInsert func(*model.User) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == user.Email {
			return &repository.UniqueViolation{Field: "email", Constraint: "idx_users_email"}
		}
		if u.CPF == user.CPF {
			return &repository.UniqueViolation{Field: "cpf", Constraint: "idx_users_cpf"}
		}
	}

	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	stored := *user
	f.users[user.ID] = &stored

	if afterInsert != nil {
		if err := afterInsert(user); err != nil {
			delete(f.users, user.ID)
			return err
		}
	}
	return nil
}

func (f *fakeUserStore) TouchLastActivity(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touchCalls++
	if f.touchErr != nil {
		return f.touchErr
	}
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	u.UltimoAcesso = &now
	return nil
}

func (f *fakeUserStore) setActive(id uint, active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[id].Ativo = active
}

type fakeTarefaStore struct {
	nextID  uint
	tarefas map[uint]model.Tarefa
}

func newFakeTarefaStore() *fakeTarefaStore {
	return &fakeTarefaStore{tarefas: map[uint]model.Tarefa{}}
}

func (f *fakeTarefaStore) List(context.Context) ([]model.Tarefa, error) {
	out := make([]model.Tarefa, 0, len(f.tarefas))
	for _, t := range f.tarefas {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTarefaStore) FindByID(_ context.Context, id uint) (*model.Tarefa, error) {
	t, ok := f.tarefas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (f *fakeTarefaStore) Create(_ context.Context, t *model.Tarefa) error {
	f.nextID++
	t.ID = f.nextID
	f.tarefas[t.ID] = *t
	return nil
}

func (f *fakeTarefaStore) Update(_ context.Context, t *model.Tarefa) error {
	if _, ok := f.tarefas[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.tarefas[t.ID] = *t
	return nil
}

func (f *fakeTarefaStore) UpdateStatus(_ context.Context, id uint, status string) error {
	t, ok := f.tarefas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	f.tarefas[id] = t
	return nil
}

func (f *fakeTarefaStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.tarefas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.tarefas, id)
	return nil
}

type fakeMotoristaStore struct {
	nextID     uint
	motoristas map[uint]model.Motorista
}

func newFakeMotoristaStore() *fakeMotoristaStore {
	return &fakeMotoristaStore{motoristas: map[uint]model.Motorista{}}
}

func (f *fakeMotoristaStore) List(context.Context) ([]model.Motorista, error) {
	out := make([]model.Motorista, 0, len(f.motoristas))
	for _, m := range f.motoristas {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMotoristaStore) FindByID(_ context.Context, id uint) (*model.Motorista, error) {
	m, ok := f.motoristas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (f *fakeMotoristaStore) unique(m *model.Motorista) error {
	for _, other := range f.motoristas {
		if other.ID == m.ID {
			continue
		}
		if other.CPF == m.CPF {
			return &repository.UniqueViolation{Field: "cpf", Constraint: "idx_motoristas_cpf"}
		}
		if other.CNH == m.CNH {
			return &repository.UniqueViolation{Field: "cnh", Constraint: "idx_motoristas_cnh"}
		}
	}
	return nil
}

func (f *fakeMotoristaStore) Create(_ context.Context, m *model.Motorista) error {
	if err := f.unique(m); err != nil {
		return err
	}
	f.nextID++
	m.ID = f.nextID
	f.motoristas[m.ID] = *m
	return nil
}

func (f *fakeMotoristaStore) Update(_ context.Context, m *model.Motorista) error {
	if _, ok := f.motoristas[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if err := f.unique(m); err != nil {
		return err
	}
	f.motoristas[m.ID] = *m
	return nil
}

func (f *fakeMotoristaStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.motoristas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.motoristas, id)
	return nil
}

func (f *fakeMotoristaStore) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := f.motoristas[id]
	return ok, nil
}

type fakeCaminhaoStore struct {
	nextID    uint
	caminhoes map[uint]model.Caminhao
}

func newFakeCaminhaoStore() *fakeCaminhaoStore {
	return &fakeCaminhaoStore{caminhoes: map[uint]model.Caminhao{}}
}

func (f *fakeCaminhaoStore) List(context.Context) ([]model.Caminhao, error) {
	out := make([]model.Caminhao, 0, len(f.caminhoes))
	for _, c := range f.caminhoes {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCaminhaoStore) FindByID(_ context.Context, id uint) (*model.Caminhao, error) {
	c, ok := f.caminhoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeCaminhaoStore) Create(_ context.Context, c *model.Caminhao) error {
	for _, other := range f.caminhoes {
		if other.Placa == c.Placa {
			return &repository.UniqueViolation{Field: "placa", Constraint: "idx_caminhoes_placa"}
		}
	}
	f.nextID++
	c.ID = f.nextID
	f.caminhoes[c.ID] = *c
	return nil
}

func (f *fakeCaminhaoStore) Update(_ context.Context, c *model.Caminhao) error {
	if _, ok := f.caminhoes[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.caminhoes[c.ID] = *c
	return nil
}

func (f *fakeCaminhaoStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.caminhoes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.caminhoes, id)
	return nil
}

func (f *fakeCaminhaoStore) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := f.caminhoes[id]
	return ok, nil
}

type fakeStatsStore struct {
	calls int
	stats dto.EstatisticasResponse
}

func (f *fakeStatsStore) Counts(context.Context) (*dto.EstatisticasResponse, error) {
	f.calls++
	out := f.stats
	return &out, nil
}

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(context.Context) { c.calls++ }

// fakeRemote is a Redis stand-in that can be switched into failure mode
type fakeRemote struct {
	data    map[string][]byte
	failing bool
	calls   int
}

var errRedisDown = errors.New("dial tcp: connection refused")

func newFakeRemote() *fakeRemote {
	return &fakeRemote{data: map[string][]byte{}}
}

func (f *fakeRemote) IsEnabled() bool { return true }

func (f *fakeRemote) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	f.calls++
	if f.failing {
		return false, errRedisDown
	}
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeRemote) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.calls++
	if f.failing {
		return errRedisDown
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeRemote) Delete(_ context.Context, keys ...string) error {
	f.calls++
	if f.failing {
		return errRedisDown
	}
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}
