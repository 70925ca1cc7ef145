package model

import "gorm.io/gorm"

type Motorista struct {
	gorm.Model
	Nome     string `gorm:"column:nome;size:100;not null"`
	CPF      string `gorm:"column:cpf;size:14;not null;uniqueIndex:idx_motoristas_cpf,where:deleted_at IS NULL"`
	CNH      string `gorm:"column:cnh;size:11;not null;uniqueIndex:idx_motoristas_cnh,where:deleted_at IS NULL"`
	Telefone string `gorm:"column:telefone;size:20"`
	Ativo    bool   `gorm:"column:ativo;not null"`
}

func (Motorista) TableName() string {
	return "motoristas"
}
