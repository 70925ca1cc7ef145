package model

import "gorm.io/gorm"

type Caminhao struct {
	gorm.Model
	Placa        string  `gorm:"column:placa;size:7;not null;uniqueIndex:idx_caminhoes_placa,where:deleted_at IS NULL"`
	Modelo       string  `gorm:"column:modelo;size:100;not null"`
	Ano          int     `gorm:"column:ano;not null"`
	CapacidadeKg float64 `gorm:"column:capacidade_kg;not null"`
	Status       string  `gorm:"column:status;size:20;not null;default:disponivel;index:idx_caminhoes_status"`
}

func (Caminhao) TableName() string {
	return "caminhoes"
}
