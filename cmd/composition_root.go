package cmd

import (
	"context"
	"log/slog"

	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/auth"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/redis"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
	clock      ports.Clock
	hasher     auth.BcryptHasher
	issuer     *auth.JWTIssuer
	denylist   *redis.TokenDenylist
	registry   *prometheus.Registry
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	redisClient *goredis.Client,
	logger *slog.Logger,
) (CompositionRoot, error) {
	administrators, err := configs.Administrators()
	if err != nil {
		return CompositionRoot{}, err
	}

	clock := ports.SystemClock{}

	issuer, err := auth.NewJWTIssuer(configs.JWTSecret, configs.JWTTTL, clock)
	if err != nil {
		return CompositionRoot{}, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(administrators),
		clock:      clock,
		hasher:     auth.NewBcryptHasher(configs.BcryptCost),
		issuer:     issuer,
		denylist:   redis.NewTokenDenylist(redisClient, clock),
		registry:   registry,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpCommandHandler(f, c.hasher, c.clock)
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	return commands.NewSignInCommandHandler(c.uowFactory.Create().UserRepository(), c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateSignOutCommandHandler() commands.SignOutCommandHandler {
	return commands.NewSignOutCommandHandler(c.denylist)
}

func (c *CompositionRoot) CreateCreateShippingRequestCommandHandler() commands.CreateShippingRequestCommandHandler {
	return commands.NewCreateShippingRequestCommandHandler(c.shippingRequestUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateProvideQuotationCommandHandler() commands.ProvideQuotationCommandHandler {
	return commands.NewProvideQuotationCommandHandler(c.shippingRequestUoWFactory(), c.policy, c.clock)
}

func (c *CompositionRoot) CreateRespondToQuotationCommandHandler() commands.RespondToQuotationCommandHandler {
	return commands.NewRespondToQuotationCommandHandler(c.shippingRequestUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteShippingRequestCommandHandler() commands.DeleteShippingRequestCommandHandler {
	return commands.NewDeleteShippingRequestCommandHandler(c.shippingRequestUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateListShippingRequestsQueryHandler() queries.ListShippingRequestsQueryHandler {
	return queries.NewListShippingRequestsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetShippingRequestQueryHandler() queries.GetShippingRequestQueryHandler {
	return queries.NewGetShippingRequestQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetRequestStatisticsQueryHandler() queries.GetRequestStatisticsQueryHandler {
	return queries.NewGetRequestStatisticsQueryHandler(c.gormDB, c.policy)
}

// CreateRouter wires every handler into the echo router.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		SignUp:                c.CreateSignUpCommandHandler(),
		SignIn:                c.CreateSignInCommandHandler(),
		SignOut:               c.CreateSignOutCommandHandler(),
		CreateShippingRequest: c.CreateCreateShippingRequestCommandHandler(),
		ProvideQuotation:      c.CreateProvideQuotationCommandHandler(),
		RespondToQuotation:    c.CreateRespondToQuotationCommandHandler(),
		DeleteShippingRequest: c.CreateDeleteShippingRequestCommandHandler(),
		ListShippingRequests:  c.CreateListShippingRequestsQueryHandler(),
		GetShippingRequest:    c.CreateGetShippingRequestQueryHandler(),
		GetRequestStatistics:  c.CreateGetRequestStatisticsQueryHandler(),
	}, c.policy)

	return httpadapter.NewRouter(ctx, server, httpadapter.RouterConfig{
		Issuer:     c.issuer,
		Denylist:   c.denylist,
		Logger:     c.logger,
		Registerer: c.registry,
		Gatherer:   c.registry,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetRequestStatisticsQueryHandler(),
		c.configs.StatsSchedule,
		c.registry,
		c.logger,
	)
}

func (c *CompositionRoot) shippingRequestUoWFactory() commands.ShippingRequestUoWFactory {
	return FuncShippingRequestUoWFactory(func() commands.ShippingRequestUoW {
		return c.uowFactory.Create()
	})
}

type FuncShippingRequestUoWFactory func() commands.ShippingRequestUoW

func (f FuncShippingRequestUoWFactory) Create() commands.ShippingRequestUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
