package dto

import (
	"strings"
	"time"
)

type MotoristaRequest struct {
	Nome     string `json:"nome" validate:"required,min=2,max=100"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	CNH      string `json:"cnh" validate:"required,cnh"`
	Telefone string `json:"telefone" validate:"omitempty,telefone"`
	Ativo    *bool  `json:"ativo"`
}

func (r *MotoristaRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.CPF = strings.TrimSpace(r.CPF)
	r.CNH = strings.TrimSpace(r.CNH)
	r.Telefone = strings.TrimSpace(r.Telefone)
}

type MotoristaResponse struct {
	ID        uint      `json:"id"`
	Nome      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	CNH       string    `json:"cnh"`
	Telefone  string    `json:"telefone,omitempty"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
