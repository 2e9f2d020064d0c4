package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	_ "github.com/hugohenrick/gestao-varejo/docs"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/controller"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/api/route"
	"github.com/hugohenrick/gestao-varejo/internal/adapter/repository"
	"github.com/hugohenrick/gestao-varejo/internal/domain/sale"
	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	"github.com/hugohenrick/gestao-varejo/pkg/auth"
	"github.com/hugohenrick/gestao-varejo/pkg/config"
	"github.com/hugohenrick/gestao-varejo/pkg/events"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/hugohenrick/gestao-varejo/pkg/metrics"
	"github.com/hugohenrick/gestao-varejo/pkg/session"
	"github.com/hugohenrick/gestao-varejo/pkg/tenant"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// eventPublisher publica movimentações de estoque e libera a conexão no encerramento
type eventPublisher interface {
	sale.Publisher
	Close() error
}

// App representa a aplicação e suas dependências
type App struct {
	cfg         *config.Config
	logger      logger.Logger
	router      *gin.Engine
	db          *database.PostgresDB
	redisClient *redis.Client
	publisher   eventPublisher
	metrics     *metrics.Metrics
}

// NewApp conecta as dependências externas e monta o router
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Configurar banco de dados
	db, err := database.NewPostgresDB(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(cfg.Database.ConnectionString(), log); err != nil {
		db.Close()
		return nil, err
	}

	app := &App{
		cfg:     cfg,
		logger:  log,
		db:      db,
		metrics: metrics.New(cfg.Metrics.Prefix),
	}

	store, err := app.sessionStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	if len(cfg.Kafka.Brokers) > 0 {
		app.publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, "stock_movement")
		log.Info("publicação de movimentações habilitada", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		app.publisher = events.NoopPublisher{}
		log.Warn("KAFKA_BROKERS não configurado, movimentações de estoque não serão publicadas")
	}

	if err := app.setupRouter(store); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (a *App) sessionStore(ctx context.Context) (session.Store, error) {
	switch a.cfg.Session.Store {
	case "memory":
		a.logger.Warn("sessões em memória; não use com mais de uma instância")
		return session.NewMemoryStore(), nil
	case "redis":
		client, err := session.NewRedisClient(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		a.redisClient = client
		return session.NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("SESSION_STORE inválido: %s", a.cfg.Session.Store)
	}
}

func (a *App) setupRouter(store session.Store) error {
	jwtService, err := auth.NewJWTService(a.cfg.JWT.SecretKey, a.cfg.JWT.Expiration)
	if err != nil {
		return err
	}

	// Criar repositórios
	tenantRepo := repository.NewTenantRepository(a.db)
	userRepo := repository.NewUserRepository(a.db)
	categoryRepo := repository.NewCategoryRepository(a.db)
	customerRepo := repository.NewCustomerRepository(a.db)
	productRepo := repository.NewProductRepository(a.db)
	saleRepo := repository.NewSaleRepository(a.db)
	orderRepo := repository.NewOrderRepository(a.db)
	productOrderRepo := repository.NewProductOrderRepository(a.db)
	expenseRepo := repository.NewExpenseRepository(a.db)
	auditRepo := repository.NewAuditRepository(a.db)

	sessions := session.NewManager(session.Config{
		Verifier:        auth.NewAuthenticator(a.db.Pool()),
		Users:           userRepo,
		Tokens:          jwtService,
		Store:           store,
		Recorder:        a.metrics,
		RefreshInterval: a.cfg.Session.RefreshInterval,
		Logger:          a.logger,
	})
	saleService := sale.NewService(saleRepo, a.publisher, a.metrics, a.logger)

	// Criar controllers
	authController := controller.NewAuthController(sessions, userRepo, a.logger)
	userController := controller.NewUserController(userRepo, a.logger)
	tenantController := controller.NewTenantController(tenantRepo, a.logger)
	categoryController := controller.NewCategoryController(categoryRepo, a.logger)
	customerController := controller.NewCustomerController(customerRepo, a.logger)
	productController := controller.NewProductController(productRepo, a.logger)
	saleController := controller.NewSaleController(saleService, saleRepo, a.logger)
	orderController := controller.NewOrderController(orderRepo, a.logger)
	productOrderController := controller.NewProductOrderController(productOrderRepo, a.logger)
	expenseController := controller.NewExpenseController(expenseRepo, a.logger)
	auditController := controller.NewAuditController(auditRepo, a.logger)
	dashboardController := controller.NewDashboardController(productRepo, saleRepo, expenseRepo, a.metrics, a.logger)

	if a.cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(a.metrics.GinMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = a.cfg.Server.AllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/metrics", gin.WrapH(a.metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		if err := a.db.Ping(c.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = err.Error()
		}
		c.JSON(status, gin.H{
			"status":   http.StatusText(status),
			"database": dbStatus,
			"version":  "1.0.0",
		})
	})

	authMiddleware := auth.JWTAuthMiddleware(sessions)

	// Rotas públicas
	route.SetupAuthRoutes(api, authController, authMiddleware)
	route.SetupSetupRoutes(api, userController)

	// Rotas que exigem sessão e tenant válido
	protected := api.Group("")
	protected.Use(authMiddleware, tenant.TenantMiddleware(repository.NewTenantValidator(tenantRepo), a.metrics))

	route.SetupTenantRoutes(protected, tenantController)
	route.SetupUserRoutes(protected, userController)
	route.RegisterCategoryRoutes(protected, categoryController)
	route.RegisterCustomerRoutes(protected, customerController)
	route.RegisterProductRoutes(protected, productController)
	route.RegisterSaleRoutes(protected, saleController)
	route.RegisterOrderRoutes(protected, orderController)
	route.RegisterProductOrderRoutes(protected, productOrderController)
	route.RegisterExpenseRoutes(protected, expenseController)
	route.RegisterDashboardRoutes(protected, dashboardController)
	route.RegisterAuditRoutes(protected, auditController)

	a.router = router
	return nil
}

// Start serve HTTP até receber SIGINT ou SIGTERM
func (a *App) Start() error {
	srv := &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", a.cfg.Server.Port, "env", a.cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("erro ao fechar publicador", "error", err)
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("erro ao fechar redis", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
