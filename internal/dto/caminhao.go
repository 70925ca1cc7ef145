package dto

import (
	"strings"
	"time"
)

type CaminhaoRequest struct {
	Placa        string  `json:"placa" validate:"required,placa"`
	Modelo       string  `json:"modelo" validate:"required,min=2,max=100"`
	Ano          int     `json:"ano" validate:"required,gte=1980,lte=2100"`
	CapacidadeKg float64 `json:"capacidade_kg" validate:"required,gt=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=disponivel em_rota manutencao"`
}

func (r *CaminhaoRequest) Normalize() {
	r.Placa = strings.TrimSpace(r.Placa)
	r.Modelo = strings.TrimSpace(r.Modelo)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type CaminhaoResponse struct {
	ID           uint      `json:"id"`
	Placa        string    `json:"placa"`
	Modelo       string    `json:"modelo"`
	Ano          int       `json:"ano"`
	CapacidadeKg float64   `json:"capacidade_kg"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
