package dto

import (
	"strings"
	"time"
)

type LoginRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Senha string `json:"senha" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

type RegisterRequest struct {
	Nome     string `json:"nome" validate:"required,min=2,max=100"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Telefone string `json:"telefone" validate:"omitempty,telefone"`
	Senha    string `json:"senha" validate:"required,min=6,bcryptmax"`
}

// Normalize runs before validation, so the cpf rule sees the trimmed value
func (r *RegisterRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.CPF = strings.TrimSpace(r.CPF)
	r.Email = NormalizeEmail(r.Email)
	r.Telefone = strings.TrimSpace(r.Telefone)
}

// UserPublic is the only user shape ever returned by the auth endpoints
type UserPublic struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    UserPublic `json:"user"`
}

type VerifyResponse struct {
	Valid bool       `json:"valid"`
	User  UserPublic `json:"user"`
}

type UserProfileResponse struct {
	ID           uint       `json:"id"`
	Nome         string     `json:"nome"`
	Email        string     `json:"email"`
	Telefone     string     `json:"telefone,omitempty"`
	UltimoAcesso *time.Time `json:"ultimo_acesso"`
	CreatedAt    time.Time  `json:"created_at"`
}
