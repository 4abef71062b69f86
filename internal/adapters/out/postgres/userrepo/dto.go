// Package userrepo persists identity provider accounts in the users table.
package userrepo

import (
	"time"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user *identity.User) UserDTO {
	return UserDTO{
		ID:           user.ID().Bytes(),
		Email:        user.Email().String(),
		PasswordHash: user.PasswordHash(),
		CreatedAt:    user.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return identity.NewUser(id, email, dto.PasswordHash, dto.CreatedAt.UTC())
}
