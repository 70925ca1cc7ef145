package service

import (
	"context"
	"errors"

	"github.com/Payphone-Digital/transportadora/internal/dto"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/Payphone-Digital/transportadora/internal/model"
	"github.com/Payphone-Digital/transportadora/internal/repository"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"gorm.io/gorm"
)

type AuthService struct {
	users  UserStore
	hasher *PasswordHasher
	tokens *JWTService
}

func NewAuthService(users UserStore, hasher *PasswordHasher, tokens *JWTService) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates the account and its first token in one transaction
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "Register")

	email := dto.NormalizeEmail(req.Email)
	cpf := dto.NormalizeCPF(req.CPF)

	logger.InfoWithContext(ctx, "Registration attempt").
		String("email", email).
		Log()

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if _, err := s.users.FindByCPF(ctx, cpf); err == nil {
		return nil, apperrors.ErrCPFExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	hash, err := s.hasher.Hash(req.Senha)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to hash password").
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		Nome:      req.Nome,
		CPF:       cpf,
		Email:     email,
		Telefone:  req.Telefone,
		SenhaHash: hash,
		Ativo:     true,
	}

	var token string
	err = s.users.Create(ctx, user, func(created *model.User) error {
		var issueErr error
		token, _, issueErr = s.tokens.Issue(created.ID, created.Email, created.Nome)
		return issueErr
	})
	if err != nil {
		var uv *repository.UniqueViolation
		if errors.As(err, &uv) {
			logger.WarnWithContext(ctx, "Registration lost a uniqueness race").
				String("field", uv.Field).
				Log()
			return nil, conflictFor(uv.Field)
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User registered").
		Uint("user_id", user.ID).
		Log()

	return &dto.AuthResponse{
		Token: token,
		User:  publicUser(user),
	}, nil
}

// Login answers ErrInvalidCredentials for unknown, inactive and wrong-password alike
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "Login")

	email := dto.NormalizeEmail(req.Email)

	user, err := s.users.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.hasher.VerifyMissing(req.Senha)
			logger.InfoWithContext(ctx, "Login failed: no active user").
				String("email", email).
				Log()
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !s.hasher.Verify(user.SenhaHash, req.Senha) {
		logger.WarnWithContext(ctx, "Login failed: wrong password").
			Uint("user_id", user.ID).
			Log()
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.users.TouchLastActivity(ctx, user.ID); err != nil {
		logger.WarnWithContext(ctx, "Failed to update last activity").
			Uint("user_id", user.ID).
			Err(err).
			Log()
	}

	token, _, err := s.tokens.Issue(user.ID, user.Email, user.Nome)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User logged in").
		Uint("user_id", user.ID).
		Log()

	return &dto.AuthResponse{
		Token: token,
		User:  publicUser(user),
	}, nil
}

// Verify validates the token and re-reads the account, so a deactivated
// user fails here even while the signature is still good.
func (s *AuthService) Verify(ctx context.Context, token string) (*dto.VerifyResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "Verify")

	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInactiveUser
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !user.Ativo {
		logger.InfoWithContext(ctx, "Token presented for inactive user").
			Uint("user_id", user.ID).
			Log()
		return nil, apperrors.ErrInactiveUser
	}

	return &dto.VerifyResponse{
		Valid: true,
		User:  publicUser(user),
	}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*dto.UserProfileResponse, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "Profile")

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return &dto.UserProfileResponse{
		ID:           user.ID,
		Nome:         user.Nome,
		Email:        user.Email,
		Telefone:     user.Telefone,
		UltimoAcesso: user.UltimoAcesso,
		CreatedAt:    user.CreatedAt,
	}, nil
}

func publicUser(u *model.User) dto.UserPublic {
	return dto.UserPublic{ID: u.ID, Nome: u.Nome, Email: u.Email}
}

func conflictFor(field string) error {
	switch field {
	case "email":
		return apperrors.ErrEmailExists
	case "cpf":
		return apperrors.ErrCPFExists
	case "cnh":
		return apperrors.ErrCNHExists
	case "placa":
		return apperrors.ErrPlacaExists
	default:
		return apperrors.ErrConflict
	}
}
