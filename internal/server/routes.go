package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/HackerKing5128/voicecart/internal/config"
	"github.com/HackerKing5128/voicecart/internal/domains/cart"
	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/internal/domains/faq"
	"github.com/HackerKing5128/voicecart/internal/domains/fraudcase"
	"github.com/HackerKing5128/voicecart/internal/domains/order"
	"github.com/HackerKing5128/voicecart/internal/domains/recipe"
	"github.com/HackerKing5128/voicecart/internal/handlers"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

// Dependencies carries everything the route handlers need.
type Dependencies struct {
	CatalogService catalog.Service
	CartService    cart.Service
	OrderService   order.Service
	FraudService   fraudcase.Service
	Recipes        *recipe.Resolver
	FAQs           *faq.Searcher

	ToolRegistry toolsystem.Registry
	ToolExecutor toolsystem.Executor

	Logger  *Logger.Logger
	Configs *config.Settings
}

// NewServerDependencies bundles the services for route registration.
func NewServerDependencies(
	catalogService catalog.Service,
	cartService cart.Service,
	orderService order.Service,
	fraudService fraudcase.Service,
	recipes *recipe.Resolver,
	faqs *faq.Searcher,
	toolRegistry toolsystem.Registry,
	toolExecutor toolsystem.Executor,
	logger *Logger.Logger,
	configs *config.Settings,
) Dependencies {
	return Dependencies{
		CatalogService: catalogService,
		CartService:    cartService,
		OrderService:   orderService,
		FraudService:   fraudService,
		Recipes:        recipes,
		FAQs:           faqs,
		ToolRegistry:   toolRegistry,
		ToolExecutor:   toolExecutor,
		Logger:         logger,
		Configs:        configs,
	}
}

// InitializeRoutes registers every HTTP route on the engine.
func InitializeRoutes(r *gin.Engine, dep Dependencies) {
	r.GET("/", func(ctx *gin.Context) { ctx.JSON(200, gin.H{"message": "Server healthy"}) })
	r.GET("/health", func(ctx *gin.Context) { ctx.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	catalogHandler := handlers.NewCatalogHandler(dep.CatalogService, dep.Recipes, dep.Logger)
	faqHandler := handlers.NewFAQHandler(dep.FAQs, dep.Logger)
	cartHandler := handlers.NewCartHandler(dep.CartService, dep.Logger)
	orderHandler := handlers.NewOrderHandler(dep.OrderService, dep.CartService, dep.Logger)
	fraudHandler := handlers.NewFraudHandler(dep.FraudService, dep.Logger)
	toolHandler := handlers.NewToolHandler(dep.ToolRegistry, dep.ToolExecutor, dep.Logger)

	v1 := r.Group("/api/v1")
	v1.Use(handlers.SessionMiddleware())
	{
		v1.GET("/catalog", catalogHandler.Search)
		v1.GET("/catalog/:id", catalogHandler.GetItem)

		v1.GET("/recipes", catalogHandler.ListRecipes)
		v1.GET("/recipes/suggest", catalogHandler.SuggestRecipe)

		v1.GET("/faqs/search", faqHandler.Search)

		v1.GET("/cart", cartHandler.GetCart)
		v1.DELETE("/cart", cartHandler.ClearCart)
		v1.POST("/cart/items", cartHandler.AddItem)
		v1.PUT("/cart/items/:id", cartHandler.UpdateQuantity)
		v1.DELETE("/cart/items/:id", cartHandler.RemoveItem)

		v1.POST("/orders", orderHandler.PlaceOrder)
		v1.GET("/orders", orderHandler.ListOrders)
		v1.GET("/orders/latest", orderHandler.GetLatestOrder)
		v1.GET("/orders/:id", orderHandler.GetOrder)
		v1.DELETE("/orders/:id", orderHandler.CancelOrder)

		v1.GET("/fraud/cases", fraudHandler.Lookup)
		v1.POST("/fraud/cases/:id/verify", fraudHandler.Verify)
		v1.POST("/fraud/cases/:id/resolve", fraudHandler.Resolve)

		v1.GET("/tools", toolHandler.ListTools)
		v1.POST("/tools/:name/invoke", toolHandler.InvokeTool)
	}
}
