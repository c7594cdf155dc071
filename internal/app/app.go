package app

import (
	"fmt"

	"github.com/go-redis/redis"
	"gorm.io/gorm"

	"github.com/HackerKing5128/voicecart/internal/app/toolsetup"
	"github.com/HackerKing5128/voicecart/internal/config"
	"github.com/HackerKing5128/voicecart/internal/data"
	"github.com/HackerKing5128/voicecart/internal/domains/cart"
	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/internal/domains/faq"
	"github.com/HackerKing5128/voicecart/internal/domains/fraudcase"
	"github.com/HackerKing5128/voicecart/internal/domains/order"
	"github.com/HackerKing5128/voicecart/internal/domains/recipe"
	catalogRepo "github.com/HackerKing5128/voicecart/internal/repository/catalog"
	fraudRepo "github.com/HackerKing5128/voicecart/internal/repository/fraudcase"
	orderRepo "github.com/HackerKing5128/voicecart/internal/repository/order"
	"github.com/HackerKing5128/voicecart/internal/server"
	"github.com/HackerKing5128/voicecart/internal/tools"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

// App represents the application with all its dependencies
type App struct {
	Config *config.Settings
	Logger *Logger.Logger
	DB     *gorm.DB
	RC     *redis.Client

	// services
	CatalogService catalog.Service
	CartService    cart.Service
	OrderService   order.Service
	FraudService   fraudcase.Service
	Recipes        *recipe.Resolver
	FAQs           *faq.Searcher

	// background
	Simulator *order.Simulator

	// tools
	ToolRegistry toolsystem.Registry
	ToolExecutor toolsystem.Executor

	ServerDeps server.Dependencies
}

// NewApp creates a new application instance with all dependencies properly wired
func NewApp(cfg *config.Settings, logger *Logger.Logger, db *gorm.DB, rc *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		RC:     rc,
	}

	if err := app.setupDependencies(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupDependencies initializes all application dependencies
func (a *App) setupDependencies() error {
	// 1. Repositories. Catalog and fraud cases are seeded on first boot.
	itemRepo := catalogRepo.NewGormItemRepo(a.DB, a.Config.Commerce.SearchLimit)
	seedItems, err := data.CatalogItems()
	if err != nil {
		return fmt.Errorf("failed to load catalog seed: %w", err)
	}
	items := make([]catalog.Item, len(seedItems))
	for i, si := range seedItems {
		items[i] = catalog.Item{
			ID:       si.ID,
			Name:     si.Name,
			Category: si.Category,
			Price:    si.Price,
			Unit:     si.Unit,
			Tags:     si.Tags,
		}
	}
	if err := itemRepo.Seed(items); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	caseRepo := fraudRepo.NewGormCaseRepo(a.DB)
	if err := caseRepo.Seed(); err != nil {
		return fmt.Errorf("failed to seed fraud cases: %w", err)
	}

	ordRepo := orderRepo.NewGormOrderRepo(a.DB)
	publisher := orderRepo.NewRedisPublisher(a.RC, a.Logger)

	// 2. Recipes and FAQs
	a.Recipes, err = recipe.NewSeededResolver()
	if err != nil {
		return fmt.Errorf("failed to load recipes: %w", err)
	}
	a.FAQs, err = faq.NewSeededSearcher()
	if err != nil {
		return fmt.Errorf("failed to load faqs: %w", err)
	}

	// 3. Services
	a.CatalogService = catalog.NewService(itemRepo, a.Logger.Named("catalog"))
	a.CartService = cart.NewService(cart.NewManager(), a.CatalogService, a.Logger.Named("cart"))

	a.Simulator = order.NewSimulator(ordRepo, publisher, a.Config.Simulator.Tick(), a.Logger.Named("simulator"))
	var tracker order.Tracker
	if a.Config.Simulator.Enabled {
		tracker = a.Simulator
	}
	a.OrderService = order.NewService(ordRepo, tracker, publisher, a.Config.Commerce.Currency, a.Logger.Named("order"))

	a.FraudService = fraudcase.NewService(caseRepo, a.Logger.Named("fraud"))

	// 4. Tool registry
	if err := a.setupTools(); err != nil {
		return err
	}

	a.ServerDeps = server.NewServerDependencies(
		a.CatalogService,
		a.CartService,
		a.OrderService,
		a.FraudService,
		a.Recipes,
		a.FAQs,
		a.ToolRegistry,
		a.ToolExecutor,
		a.Logger,
		a.Config,
	)

	return nil
}

// setupTools builds every agent tool and registers it.
func (a *App) setupTools() error {
	factory := tools.NewToolFactory(&tools.ToolDependencies{
		CatalogService: a.CatalogService,
		CartService:    a.CartService,
		OrderService:   a.OrderService,
		FraudService:   a.FraudService,
		Recipes:        a.Recipes,
		FAQs:           a.FAQs,
		Logger:         a.Logger.Named("tools"),
	})

	if err := toolsetup.RegisterToolBuilders(factory); err != nil {
		return err
	}

	a.ToolRegistry = toolsystem.NewMemoryRegistry()
	a.ToolExecutor = toolsystem.NewExecutor()
	return factory.RegisterAll(a.ToolRegistry)
}

// GetServerDependencies returns the server dependencies
func (a *App) GetServerDependencies() server.Dependencies {
	return a.ServerDeps
}

// Shutdown stops background delivery tracking.
func (a *App) Shutdown() {
	a.Simulator.Shutdown()
}
