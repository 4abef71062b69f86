package userrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts an account. The unique index on email turns a second
// registration into errs.ValueIsInvalidError.
func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("email", errors.New("already registered"))
		}
		return errs.NewStoreError("add user", err)
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "id = ?", id.Bytes(), id.String())
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*identity.User, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "email = ?", email.String(), email.String())
}

func (r *GormUserRepository) first(ctx context.Context, cond string, arg any, key string) (*identity.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", key)
		}
		return nil, errs.NewStoreError("get user", err)
	}

	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
