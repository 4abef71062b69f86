package http

import (
	"context"
	"log/slog"
	"net/http"

	"shipping/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig is everything NewRouter needs besides the server itself.
type RouterConfig struct {
	Issuer     ports.TokenIssuer
	Denylist   ports.TokenDenylist
	Logger     *slog.Logger
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds the echo instance serving the API, health, metrics and docs.
func NewRouter(ctx context.Context, server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validate, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLogger(cfg.Logger))
	e.Use(NewMetrics(cfg.Registerer).Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", openAPISpec)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.InstanceName(swaggerInstance),
		echoSwagger.URL("doc.json"),
	))

	api := e.Group("/api/v1")

	public := api.Group("", validate)
	public.POST("/auth/signup", server.SignUp)
	public.POST("/auth/signin", server.SignIn)

	private := api.Group("", BearerAuth(cfg.Issuer, cfg.Denylist), validate)
	private.POST("/auth/signout", server.SignOut)
	private.GET("/me", server.GetCurrentIdentity)
	private.POST("/requests", server.CreateShippingRequest)
	private.GET("/requests", server.ListShippingRequests)
	private.GET("/requests/:id", server.GetShippingRequest)
	private.DELETE("/requests/:id", server.DeleteShippingRequest)
	private.POST("/requests/:id/quotation", server.ProvideQuotation)
	private.POST("/requests/:id/response", server.RespondToQuotation)
	private.GET("/statistics", server.GetStatistics)

	return e, nil
}
