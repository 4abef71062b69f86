// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation at construction,
// authorization against the acting identity, transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShippingRequestRepoFactory provides access to the shipping request repository within a transaction.
	ShippingRequestRepoFactory interface {
		ShippingRequestRepository() ports.ShippingRequestRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ShippingRequestUoW manages transactions for shipping request operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.ShippingRequestRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ShippingRequestUoW interface {
		TxManager
		ShippingRequestRepoFactory
	}

	// ShippingRequestUoWFactory creates new shipping request unit of work instances.
	ShippingRequestUoWFactory interface {
		Create() ShippingRequestUoW
	}

	// UserUoW manages transactions for account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
