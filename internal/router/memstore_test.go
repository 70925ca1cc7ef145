package router

import (
	"context"
	"sync"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/dto"
	"github.com/Payphone-Digital/transportadora/internal/model"
	"github.com/Payphone-Digital/transportadora/internal/repository"
	"gorm.io/gorm"
)

// memDB backs every store interface with maps guarded by one mutex
type memDB struct {
	mu         sync.Mutex
	nextID     uint
	users      map[uint]model.User
	tarefas    map[uint]model.Tarefa
	motoristas map[uint]model.Motorista
	caminhoes  map[uint]model.Caminhao
	statsCalls int
}

func newMemDB() *memDB {
	return &memDB{
		users:      map[uint]model.User{},
		tarefas:    map[uint]model.Tarefa{},
		motoristas: map[uint]model.Motorista{},
		caminhoes:  map[uint]model.Caminhao{},
	}
}

func (db *memDB) id() uint {
	db.nextID++
	return db.nextID
}

func (db *memDB) setUserActive(id uint, active bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	u := db.users[id]
	u.Ativo = active
	db.users[id] = u
}

type memUsers struct{ db *memDB }

func (s memUsers) find(match func(model.User) bool) (*model.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, u := range s.db.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s memUsers) FindActiveByEmail(_ context.Context, email string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.Email == email && u.Ativo })
}

func (s memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.Email == email })
}

func (s memUsers) FindByCPF(_ context.Context, cpf string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.CPF == cpf })
}

func (s memUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.ID == id })
}

func (s memUsers) Create(_ context.Context, user *model.User, afterInsert func(*model.User) error) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, u := range s.db.users {
		if u.Email == user.Email {
			return &repository.UniqueViolation{Field: "email", Constraint: "idx_users_email"}
		}
		if u.CPF == user.CPF {
			return &repository.UniqueViolation{Field: "cpf", Constraint: "idx_users_cpf"}
		}
	}
	user.ID = s.db.id()
	user.CreatedAt = time.Now()
	s.db.users[user.ID] = *user
	if afterInsert != nil {
		if err := afterInsert(user); err != nil {
			delete(s.db.users, user.ID)
			return err
		}
	}
	return nil
}

func (s memUsers) TouchLastActivity(_ context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	u, ok := s.db.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	u.UltimoAcesso = &now
	s.db.users[id] = u
	return nil
}

type memTarefas struct{ db *memDB }

func (s memTarefas) List(context.Context) ([]model.Tarefa, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := make([]model.Tarefa, 0, len(s.db.tarefas))
	for _, t := range s.db.tarefas {
		out = append(out, t)
	}
	return out, nil
}

func (s memTarefas) FindByID(_ context.Context, id uint) (*model.Tarefa, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	t, ok := s.db.tarefas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (s memTarefas) Create(_ context.Context, t *model.Tarefa) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	t.ID = s.db.id()
	s.db.tarefas[t.ID] = *t
	return nil
}

func (s memTarefas) Update(_ context.Context, t *model.Tarefa) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.tarefas[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.db.tarefas[t.ID] = *t
	return nil
}

func (s memTarefas) UpdateStatus(_ context.Context, id uint, status string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	t, ok := s.db.tarefas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	s.db.tarefas[id] = t
	return nil
}

func (s memTarefas) Delete(_ context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.tarefas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.db.tarefas, id)
	return nil
}

type memMotoristas struct{ db *memDB }

func (s memMotoristas) List(context.Context) ([]model.Motorista, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := make([]model.Motorista, 0, len(s.db.motoristas))
	for _, m := range s.db.motoristas {
		out = append(out, m)
	}
	return out, nil
}

func (s memMotoristas) FindByID(_ context.Context, id uint) (*model.Motorista, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	m, ok := s.db.motoristas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (s memMotoristas) conflict(m *model.Motorista) error {
	for _, other := range s.db.motoristas {
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

func (s memMotoristas) Create(_ context.Context, m *model.Motorista) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.conflict(m); err != nil {
		return err
	}
	m.ID = s.db.id()
	s.db.motoristas[m.ID] = *m
	return nil
}

func (s memMotoristas) Update(_ context.Context, m *model.Motorista) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.motoristas[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if err := s.conflict(m); err != nil {
		return err
	}
	s.db.motoristas[m.ID] = *m
	return nil
}

func (s memMotoristas) Delete(_ context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.motoristas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.db.motoristas, id)
	return nil
}

func (s memMotoristas) Exists(_ context.Context, id uint) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	_, ok := s.db.motoristas[id]
	return ok, nil
}

type memCaminhoes struct{ db *memDB }

func (s memCaminhoes) List(context.Context) ([]model.Caminhao, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := make([]model.Caminhao, 0, len(s.db.caminhoes))
	for _, c := range s.db.caminhoes {
		out = append(out, c)
	}
	return out, nil
}

func (s memCaminhoes) FindByID(_ context.Context, id uint) (*model.Caminhao, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	c, ok := s.db.caminhoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (s memCaminhoes) Create(_ context.Context, c *model.Caminhao) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, other := range s.db.caminhoes {
		if other.Placa == c.Placa {
			return &repository.UniqueViolation{Field: "placa", Constraint: "idx_caminhoes_placa"}
		}
	}
	c.ID = s.db.id()
	s.db.caminhoes[c.ID] = *c
	return nil
}

func (s memCaminhoes) Update(_ context.Context, c *model.Caminhao) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.caminhoes[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.db.caminhoes[c.ID] = *c
	return nil
}

func (s memCaminhoes) Delete(_ context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.caminhoes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.db.caminhoes, id)
	return nil
}

func (s memCaminhoes) Exists(_ context.Context, id uint) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	_, ok := s.db.caminhoes[id]
	return ok, nil
}

type memStats struct{ db *memDB }

func (s memStats) Counts(context.Context) (*dto.EstatisticasResponse, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.statsCalls++

	var out dto.EstatisticasResponse
	for _, t := range s.db.tarefas {
		out.Tarefas.Total++
		switch t.Status {
		case constants.TarefaPendente:
			out.Tarefas.Pendente++
		case constants.TarefaEmAndamento:
			out.Tarefas.EmAndamento++
		case constants.TarefaConcluida:
			out.Tarefas.Concluida++
		}
	}
	for _, m := range s.db.motoristas {
		out.Motoristas.Total++
		if m.Ativo {
			out.Motoristas.Ativos++
		}
	}
	for _, c := range s.db.caminhoes {
		out.Caminhoes.Total++
		switch c.Status {
		case constants.CaminhaoDisponivel:
			out.Caminhoes.Disponivel++
		case constants.CaminhaoEmRota:
			out.Caminhoes.EmRota++
		case constants.CaminhaoManutencao:
			out.Caminhoes.Manutencao++
		}
	}
	out.Usuarios.Total = int64(len(s.db.users))
	return &out, nil
}
