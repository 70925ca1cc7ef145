package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/model"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"gorm.io/gorm"
)

// UserRepository is the credential store
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindActiveByEmail returns gorm.ErrRecordNotFound for unknown and inactive users alike
func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "FindActiveByEmail")

	start := time.Now()
	var user model.User
	result := r.db.WithContext(ctx).Where("email = ? AND ativo = ?", email, true).First(&user)
	duration := time.Since(start)

	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.ErrorWithContext(ctx, "Failed to get active user by email").
				String("email", email).
				Duration(duration).
				Err(result.Error).
				Log()
		}
		return nil, result.Error
	}

	logger.DebugWithContext(ctx, "Active user retrieved by email").
		Uint("user_id", user.ID).
		Duration(duration).
		Log()

	return &user, nil
}

// FindByEmail ignores the active flag; used for the uniqueness pre-check
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "FindByEmail")
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (*model.User, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "FindByCPF")
	return r.findOne(ctx, "cpf = ?", cpf)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "FindByID")
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	start := time.Now()
	var user model.User
	result := r.db.WithContext(ctx).Where(query, arg).First(&user)
	duration := time.Since(start)

	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.ErrorWithContext(ctx, "Failed to get user").
				Any("arg", arg).
				Duration(duration).
				Err(result.Error).
				Log()
		}
		return nil, result.Error
	}

	return &user, nil
}

// Create inserts the user and runs afterInsert in the same transaction.
// If afterInsert fails the insert is rolled back. A unique index rejection
// comes back as *UniqueViolation.
func (r *UserRepository) Create(ctx context.Context, user *model.User, afterInsert func(*model.User) error) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "Create")

	logger.DebugWithContext(ctx, "Creating new user").
		String("email", user.Email).
		Log()

	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return classifyError(err)
		}
		if afterInsert != nil {
			return afterInsert(user)
		}
		return nil
	})
	duration := time.Since(start)

	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create user").
			String("email", user.Email).
			Duration(duration).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "User created successfully").
		Uint("user_id", user.ID).
		Duration(duration).
		Log()

	return nil
}

func (r *UserRepository) TouchLastActivity(ctx context.Context, id uint) error {
	ctx = ctxutil.WithFunction(ctx, "repository", "TouchLastActivity")

	start := time.Now()
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("ultimo_acesso", time.Now())
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update last activity").
			Uint("user_id", id).
			Duration(duration).
			Err(result.Error).
			Log()
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
