package http

import (
	"log/slog"
	"net/http"
	"strings"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	identityKey = "shipping.identity"
	claimsKey   = "shipping.claims"
	loggerKey   = "shipping.logger"
)

// BearerAuth verifies the Authorization header and puts the caller's identity
// into the echo context. Signed-out tokens are refused.
func BearerAuth(issuer ports.TokenIssuer, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return respondError(ctx, http.StatusUnauthorized, "Missing bearer token")
			}

			claims, err := issuer.Parse(strings.TrimSpace(raw))
			if err != nil {
				return respondError(ctx, http.StatusUnauthorized, "Invalid token")
			}

			revoked, err := denylist.IsRevoked(ctx.Request().Context(), claims.TokenID)
			if err != nil {
				return fail(ctx, err)
			}
			if revoked {
				return respondError(ctx, http.StatusUnauthorized, "Token has been revoked")
			}

			ctx.Set(identityKey, claims.Identity)
			ctx.Set(claimsKey, claims)
			return next(ctx)
		}
	}
}

// RequestLogger logs one line per request and makes logger available to handlers.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logRequest := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.ErrorContext(ctx.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(ctx.Request().Context(), "request", attrs...)
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		handler := logRequest(next)
		return func(ctx echo.Context) error {
			ctx.Set(loggerKey, logger)
			return handler(ctx)
		}
	}
}

func loggerFrom(ctx echo.Context) *slog.Logger {
	if logger, ok := ctx.Get(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// identityFrom returns the caller set by BearerAuth.
func identityFrom(ctx echo.Context) (identity.Identity, bool) {
	who, ok := ctx.Get(identityKey).(identity.Identity)
	return who, ok
}

func claimsFrom(ctx echo.Context) (ports.TokenClaims, bool) {
	claims, ok := ctx.Get(claimsKey).(ports.TokenClaims)
	return claims, ok
}
