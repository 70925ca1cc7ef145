package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Nome         string     `gorm:"column:nome;size:100;not null"`
	CPF          string     `gorm:"column:cpf;size:14;not null;uniqueIndex:idx_users_cpf"`
	Email        string     `gorm:"column:email;size:255;not null;uniqueIndex:idx_users_email"`
	Telefone     string     `gorm:"column:telefone;size:20"`
	SenhaHash    string     `gorm:"column:senha_hash;not null"`
	Ativo        bool       `gorm:"column:ativo;not null;default:true"`
	UltimoAcesso *time.Time `gorm:"column:ultimo_acesso"`
}

func (User) TableName() string {
	return "users"
}
