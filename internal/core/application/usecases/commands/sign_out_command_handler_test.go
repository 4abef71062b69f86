package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSignOutCommand_MissingFields(t *testing.T) {
	_, err := commands.NewSignOutCommand("", time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSignOutCommandHandler_Handle(t *testing.T) {
	expiresAt := now.Add(time.Hour)
	cmd, err := commands.NewSignOutCommand("jti-1", expiresAt)
	require.NoError(t, err)

	denylist := new(MockTokenDenylist)
	denylist.On("Revoke", mock.Anything, "jti-1", expiresAt).Return(nil).Once()

	h := commands.NewSignOutCommandHandler(denylist)
	require.NoError(t, h.Handle(context.Background(), cmd))
	denylist.AssertExpectations(t)
}

func TestSignOutCommandHandler_Handle_NotConstructed(t *testing.T) {
	denylist := new(MockTokenDenylist)
	h := commands.NewSignOutCommandHandler(denylist)
	require.ErrorIs(t, h.Handle(context.Background(), commands.SignOutCommand{}), commands.ErrSignOutCommandIsNotConstructed)
}
