package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Tarefa struct {
	gorm.Model
	Titulo       string          `gorm:"column:titulo;size:150;not null"`
	Descricao    string          `gorm:"column:descricao;size:1000"`
	Status       string          `gorm:"column:status;size:20;not null;default:pendente;index:idx_tarefas_status"`
	Prioridade   string          `gorm:"column:prioridade;size:10;not null;default:media"`
	MotoristaID  *uint           `gorm:"column:motorista_id;index:idx_tarefas_motorista_id"`
	CaminhaoID   *uint           `gorm:"column:caminhao_id;index:idx_tarefas_caminhao_id"`
	DataPrevista *datatypes.Date `gorm:"column:data_prevista"`
	Origem       string          `gorm:"column:origem;size:255"`
	Destino      string          `gorm:"column:destino;size:255"`
}

func (Tarefa) TableName() string {
	return "tarefas"
}
