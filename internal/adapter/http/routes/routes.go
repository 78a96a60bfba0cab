package routes

import (
	"context"
	"log"
	"net/http"
	"strconv"

	_ "payment_method_gateway/docs" // This will be auto-generated
	"payment_method_gateway/internal/adapter/http/handlers"
	"payment_method_gateway/internal/adapter/persistence/repository"
	"payment_method_gateway/internal/infrastructure/config"
	"payment_method_gateway/internal/infrastructure/database"
	"payment_method_gateway/internal/infrastructure/httpclient"
	"payment_method_gateway/internal/infrastructure/logging"
	"payment_method_gateway/internal/infrastructure/metrics"
	"payment_method_gateway/internal/infrastructure/payments"
	"payment_method_gateway/internal/infrastructure/tracing"
	"payment_method_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	ServiceName    = "payment-method-gateway"
	ServiceVersion = "1.0.0"
	PathV1         = "/v1"
	PathMetrics    = "/metrics"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err.Error())
	}

	logger, err := logging.NewLogger(logging.Config{
		Service: ServiceName,
		Env:     cfg.AppEnv,
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err.Error())
	}
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := tracing.Init(context.Background(), tracing.Config{
		ServiceName:    ServiceName,
		ServiceVersion: ServiceVersion,
		Environment:    cfg.AppEnv,
		Endpoint:       cfg.OTLPEndpoint,
		Insecure:       cfg.OTLPInsecure,
		SampleRate:     cfg.TraceSampleRate,
	}, logger)
	if err != nil {
		logger.Fatal("[bootstrap] failed to initialize tracing", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	m := metrics.New()
	handler, err := buildPaymentMethodHandler(context.Background(), cfg, logger, m)
	if err != nil {
		logger.Fatal("[bootstrap] failed to wire payment method handler", zap.Error(err))
	}

	router := setupRouter(logger, m, handler)

	logger.Info("[bootstrap] listening",
		zap.Int("port", cfg.HTTPPort),
		zap.String("processor_environment", cfg.Environment),
		zap.String("processor_base_url", cfg.ProcessorBaseURL()),
	)
	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func buildPaymentMethodHandler(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*handlers.PaymentMethodHandler, error) {
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretKey,
	})
	if err != nil {
		return nil, err
	}
	operationRepo := repository.NewPaymentMethodOperationDynamoRepository(ddb, cfg.OperationsTable)

	processor, err := httpclient.New(httpclient.Config{
		BaseURL:    cfg.ProcessorBaseURL(),
		PublicKey:  cfg.PublicKey,
		PrivateKey: cfg.PrivateKey,
		APIVersion: cfg.APIVersion,
		Timeout:    cfg.Timeout,
	}, logger.Named("processor"))
	if err != nil {
		return nil, err
	}

	gateway := payments.NewPaymentMethodGateway(processor, cfg, logger.Named("gateway"))
	paymentMethodUseCase := usecase.NewPaymentMethodUseCase(gateway, operationRepo, m, logger.Named("usecase"))

	return handlers.NewPaymentMethodHandler(paymentMethodUseCase, logger.Named("handler")), nil
}

func setupRouter(logger *zap.Logger, m *metrics.Metrics, handler *handlers.PaymentMethodHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(m.Handler()))

	// Rotas publicas
	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addPaymentMethodRoutes(v1, handler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "ROUTE_NOT_FOUND", "message": "Route not found"})
	})
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger, m *metrics.Metrics) {
	router.Use(recovery(logger))
	router.Use(requestID())
	router.Use(traceRequests())
	router.Use(m.Middleware())
	router.Use(requestLogger(logger))
}
