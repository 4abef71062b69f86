package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// SignUp handles POST /api/v1/auth/signup - registers a new account.
func (s *Server) SignUp(ctx echo.Context) error {
	var body Credentials
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSignUpCommand(body.Email, body.Password)
	if err != nil {
		return fail(ctx, err)
	}

	who, err := s.handlers.SignUp.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMe(who, s.policy.IsAdministrator(who)))
}

// SignIn handles POST /api/v1/auth/signin - exchanges credentials for a token.
func (s *Server) SignIn(ctx echo.Context) error {
	var body Credentials
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSignInCommand(body.Email, body.Password)
	if err != nil {
		return fail(ctx, err)
	}

	who, token, err := s.handlers.SignIn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Session{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt.UTC(),
		User:      toMe(who, s.policy.IsAdministrator(who)),
	})
}

// SignOut handles POST /api/v1/auth/signout - revokes the presented token.
func (s *Server) SignOut(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	cmd, err := commands.NewSignOutCommand(claims.TokenID, claims.ExpiresAt)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.SignOut.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCurrentIdentity handles GET /api/v1/me.
func (s *Server) GetCurrentIdentity(ctx echo.Context) error {
	who, ok := identityFrom(ctx)
	if !ok {
		return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	return ctx.JSON(http.StatusOK, toMe(who, s.policy.IsAdministrator(who)))
}
