package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "controle_pragas/docs" // swagger docs
	"controle_pragas/internal/adapter/cache"
	"controle_pragas/internal/adapter/export"
	"controle_pragas/internal/adapter/http/handlers"
	"controle_pragas/internal/adapter/http/middleware"
	repository2 "controle_pragas/internal/adapter/persistence/repository"
	"controle_pragas/internal/config"
	redisclient "controle_pragas/internal/infrastructure/cache"
	"controle_pragas/internal/infrastructure/database"
	"controle_pragas/internal/metrics"
	"controle_pragas/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler served under /v1.
type Handlers struct {
	Session    *handlers.SessionHandler
	Evaluation *handlers.EvaluationHandler
	Settings   *handlers.SettingsHandler
	Unit       *handlers.UnitHandler
	Profile    *handlers.ProfileHandler
	Alert      *handlers.AlertHandler
	HiringDoc  *handlers.HiringDocHandler
	Dashboard  *handlers.DashboardHandler
}

// Run connects to the stores, wires the handlers and starts the server
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	h, err := getHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}

	router := NewRouter(h, logger)
	logger.Info("starting http server", zap.Int("port", cfg.HTTPPort))
	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	authed := v1.Group("", middleware.RequireUser())
	addSessionRoutes(authed, h.Session)
	addEvaluationRoutes(authed, h.Evaluation)
	addSettingsRoutes(authed, h.Settings)
	addUnitRoutes(authed, h.Unit)
	addProfileRoutes(authed, h.Profile)
	addAlertRoutes(authed, h.Alert)
	addHiringDocRoutes(authed, h.HiringDoc)
	addDashboardRoutes(authed, h.Dashboard)
	return router
}

func getHandlers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}
	rdb, err := redisclient.ConnectRedis(ctx, cfg, logger)
	if err != nil {
		return Handlers{}, err
	}

	evaluationRepo := repository2.NewEvaluationDynamoRepository(ddb, cfg.Tables.Evaluations)
	unitRepo := repository2.NewUnitDynamoRepository(ddb, cfg.Tables.Units)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb, cfg.Tables.Settings)
	profileRepo := repository2.NewProfileDynamoRepository(ddb, cfg.Tables.Users)
	alertRepo := repository2.NewAlertDynamoRepository(ddb, cfg.Tables.Alerts)
	hiringDocRepo := repository2.NewHiringDocDynamoRepository(ddb, cfg.Tables.HiringDocs)
	sessionStore := cache.NewSessionRedisStore(rdb, cfg.SessionTTL)

	evaluationUseCase := usecase.NewEvaluationUseCase(evaluationRepo, export.NewEvaluationXLSXExporter(), logger)
	baseline := usecase.NewBaselineResolver(unitRepo, settingsRepo, logger)
	sessionUseCase := usecase.NewSessionUseCase(sessionStore, profileRepo, baseline, evaluationUseCase, logger)

	return Handlers{
		Session:    handlers.NewSessionHandler(sessionUseCase),
		Evaluation: handlers.NewEvaluationHandler(evaluationUseCase),
		Settings:   handlers.NewSettingsHandler(usecase.NewSettingsUseCase(settingsRepo, logger)),
		Unit:       handlers.NewUnitHandler(usecase.NewUnitUseCase(unitRepo, logger)),
		Profile:    handlers.NewProfileHandler(usecase.NewProfileUseCase(profileRepo, logger)),
		Alert:      handlers.NewAlertHandler(usecase.NewAlertUseCase(alertRepo, logger)),
		HiringDoc:  handlers.NewHiringDocHandler(usecase.NewHiringDocUseCase(hiringDocRepo, logger)),
		Dashboard:  handlers.NewDashboardHandler(usecase.NewDashboardUseCase(settingsRepo, alertRepo, unitRepo, evaluationRepo, logger)),
	}, nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
