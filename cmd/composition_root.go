package cmd

import (
	"log/slog"
	"time"

	httpin "spraying/internal/adapters/in/http"
	"spraying/internal/adapters/out/postgres"
	"spraying/internal/adapters/out/postgres/orderrepo"
	"spraying/internal/adapters/out/postgres/sprayerrepo"
	"spraying/internal/core/application/remotesync"
	"spraying/internal/core/application/sessions"
	"spraying/internal/core/application/usecases/commands"
	"spraying/internal/core/application/usecases/queries"
	"spraying/internal/core/domain/services"
	"spraying/internal/jobs"
	"spraying/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	identity httpin.ContextIdentityProvider
	metrics  *metrics.Metrics
	registry *sessions.Registry
	policy   remotesync.Policy
	orders   *orderrepo.GormOrderRepository
	engine   *commands.Engine
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	gate := services.NewPermissionGate()
	m := metrics.New()
	identity := httpin.NewContextIdentityProvider()
	registry := sessions.NewRegistry(gate, services.NewStateMachine(gate))
	policy := remotesync.NewPolicy(cfg.Remote(), logger, m)
	orders := orderrepo.NewGormOrderRepository(gormDB)

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		identity:   identity,
		metrics:    m,
		registry:   registry,
		policy:     policy,
		orders:     orders,
		engine: commands.NewEngine(
			registry,
			orders,
			sprayerrepo.NewGormSprayerDirectory(gormDB),
			identity,
			policy,
			m,
			logger,
		),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.identity, c.logger)
}

func (c *CompositionRoot) CreateCreateSprayerCommandHandler() commands.CreateSprayerCommandHandler {
	var f commands.SprayerUoWFactory = FuncSprayerUoWFactory(func() commands.SprayerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSprayerCommandHandler(f, c.identity, c.logger)
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	return commands.NewSubmitFeedbackCommandHandler(c.engine, orderrepo.NewGormFeedbackService(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.registry, c.orders, c.identity, c.policy)
}

func (c *CompositionRoot) CreateGetEditSessionQueryHandler() queries.GetEditSessionQueryHandler {
	return queries.NewGetEditSessionQueryHandler(c.registry, c.orders, c.identity, c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.identity)
}

func (c *CompositionRoot) CreateListSprayersQueryHandler() queries.ListSprayersQueryHandler {
	return queries.NewListSprayersQueryHandler(c.gormDB)
}

// Handlers builds every use case the HTTP API exposes. Order lifecycle
// commands share the engine.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		CreateSprayer:     c.CreateCreateSprayerCommandHandler(),
		TransitionOrder:   commands.NewTransitionOrderCommandHandler(c.engine),
		BeginEdit:         commands.NewBeginEditCommandHandler(c.engine),
		SetField:          commands.NewSetFieldCommandHandler(c.engine),
		AddSprayer:        commands.NewAddSprayerCommandHandler(c.engine),
		RemoveSprayer:     commands.NewRemoveSprayerCommandHandler(c.engine),
		SetPrimarySprayer: commands.NewSetPrimarySprayerCommandHandler(c.engine),
		ToggleAutoAssign:  commands.NewToggleAutoAssignCommandHandler(c.engine),
		CancelEdit:        commands.NewCancelEditCommandHandler(c.engine),
		CommitEdit:        commands.NewCommitEditCommandHandler(c.engine),
		SubmitFeedback:    c.CreateSubmitFeedbackCommandHandler(),

		GetOrder:       c.CreateGetOrderQueryHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		GetEditSession: c.CreateGetEditSessionQueryHandler(),
		ListSprayers:   c.CreateListSprayersQueryHandler(),
	}
}

func (c *CompositionRoot) CreateAuthenticator() (*httpin.Authenticator, error) {
	return httpin.NewAuthenticator(c.cfg.JWTSecret)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	authenticator, err := c.CreateAuthenticator()
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(httpin.RouterConfig{
		Server:         httpin.NewServer(c.Handlers(), c.identity, c.logger),
		Authenticator:  authenticator,
		Metrics:        c.metrics,
		Logger:         c.logger,
		RateLimitRPS:   c.cfg.RateLimitRPS,
		RateLimitBurst: c.cfg.RateLimitBurst,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.Config{
		EditSessionTTL: c.cfg.EditSessionTTL,
		IdempotencyTTL: c.cfg.IdempotencyTTL,
	}, c.registry, orderrepo.NewGormIdempotencyStore(c.gormDB), c.metrics, c.logger)
}

// ShutdownTimeout bounds draining in-flight requests on exit.
const ShutdownTimeout = 10 * time.Second

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSprayerUoWFactory func() commands.SprayerUoW

func (f FuncSprayerUoWFactory) Create() commands.SprayerUoW {
	return f()
}
