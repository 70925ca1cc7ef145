package dto

import (
	"strings"
	"time"
)

// TarefaRequest is the body of both POST /tarefas and PUT /tarefas/:id
type TarefaRequest struct {
	Titulo       string `json:"titulo" validate:"required,min=3,max=150"`
	Descricao    string `json:"descricao" validate:"max=1000"`
	Status       string `json:"status" validate:"omitempty,oneof=pendente em_andamento concluida"`
	Prioridade   string `json:"prioridade" validate:"omitempty,oneof=baixa media alta"`
	MotoristaID  *uint  `json:"motorista_id" validate:"omitempty,gt=0"`
	CaminhaoID   *uint  `json:"caminhao_id" validate:"omitempty,gt=0"`
	DataPrevista string `json:"data_prevista" validate:"omitempty,data"`
	Origem       string `json:"origem" validate:"max=255"`
	Destino      string `json:"destino" validate:"max=255"`
}

func (r *TarefaRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.Descricao = strings.TrimSpace(r.Descricao)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Prioridade = strings.ToLower(strings.TrimSpace(r.Prioridade))
	r.DataPrevista = strings.TrimSpace(r.DataPrevista)
	r.Origem = strings.TrimSpace(r.Origem)
	r.Destino = strings.TrimSpace(r.Destino)
}

type TarefaStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pendente em_andamento concluida"`
}

func (r *TarefaStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type TarefaResponse struct {
	ID           uint      `json:"id"`
	Titulo       string    `json:"titulo"`
	Descricao    string    `json:"descricao,omitempty"`
	Status       string    `json:"status"`
	Prioridade   string    `json:"prioridade"`
	MotoristaID  *uint     `json:"motorista_id"`
	CaminhaoID   *uint     `json:"caminhao_id"`
	DataPrevista *string   `json:"data_prevista"`
	Origem       string    `json:"origem,omitempty"`
	Destino      string    `json:"destino,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
