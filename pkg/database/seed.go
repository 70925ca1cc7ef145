package database

import (
	"context"
	"errors"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/model"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultAdmin is the development account created when DB_SEED is set
type DefaultAdmin struct {
	Nome     string
	CPF      string
	Email    string
	Senha    string
	Telefone string
}

func GetDefaultAdmin() DefaultAdmin {
	return DefaultAdmin{
		Nome:     "Administrador",
		CPF:      "000.000.000-00",
		Email:    "admin@transportadora.local",
		Senha:    "admin123", // development only
		Telefone: "(11) 99999-0000",
	}
}

// Seed creates initial data for the database
func Seed(ctx context.Context, db *gorm.DB) error {
	return SeedUsers(ctx, db)
}

// SeedUsers creates the default admin unless an account with its email already exists
func SeedUsers(ctx context.Context, db *gorm.DB) error {
	admin := GetDefaultAdmin()

	var existing model.User
	err := db.WithContext(ctx).Unscoped().Where("email = ?", admin.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Senha), constants.PasswordHashCost)
	if err != nil {
		return err
	}

	user := model.User{
		Nome:      admin.Nome,
		CPF:       admin.CPF,
		Email:     admin.Email,
		Telefone:  admin.Telefone,
		SenhaHash: string(hash),
		Ativo:     true,
	}

	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return err
	}

	logger.GetLogger().Warn("Seeded development admin account",
		zap.String("email", admin.Email),
	)
	return nil
}
