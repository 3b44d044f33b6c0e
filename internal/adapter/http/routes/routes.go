package routes

import (
	"context"
	"strconv"
	"time"

	"lavanderia_rfid/internal/adapter/http/handlers"
	repository2 "lavanderia_rfid/internal/adapter/persistence/repository"
	"lavanderia_rfid/internal/config"
	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/infrastructure/cache"
	"lavanderia_rfid/internal/infrastructure/clock"
	"lavanderia_rfid/internal/infrastructure/database"
	"lavanderia_rfid/internal/infrastructure/metrics"
	"lavanderia_rfid/internal/infrastructure/notifications"
	"lavanderia_rfid/internal/infrastructure/rfid"
	"lavanderia_rfid/internal/usecase"
	"lavanderia_rfid/internal/usecase/interfaces"
	"lavanderia_rfid/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()
	pkg.InitLogger(cfg.Log.Level)

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Info().Str("addr", addr).Str("storage", cfg.Storage.Driver).Msg("[http] starting server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to startup the application")
	}
}

// storage groups the repositories the use cases are built on.
type storage struct {
	clients   interfaces.IClientRepository
	garments  interfaces.IGarmentRepository
	batches   interfaces.IBatchRepository
	sequences interfaces.ISequenceRepository
	history   interfaces.IHistoryRepository
	sessions  interfaces.IIntakeSessionStore
	notifier  interfaces.INotificationSink
}

func getRoutes(cfg *config.Config) {
	ctx := context.Background()
	st := buildStorage(ctx, cfg)
	clk := clock.SystemClock{}

	reader := rfid.NewSimulatedReader(rfid.Config{
		Latency:         cfg.Reader.Latency,
		RoundPauseMin:   cfg.Reader.RoundPauseMin,
		RoundPauseMax:   cfg.Reader.RoundPauseMax,
		StopProbability: cfg.Reader.StopProbability,
		MaxDuration:     cfg.Reader.MaxDuration,
		MaxTags:         cfg.Reader.MaxTags,
		Seed:            cfg.Reader.Seed,
	})

	lifecycleUseCase := usecase.NewLifecycleUseCase(st.garments, st.history, clk)
	batchUseCase := usecase.NewBatchUseCase(st.clients, st.garments, st.batches, st.sequences, st.history, st.notifier, clk)
	intakeUseCase := usecase.NewIntakeUseCase(st.clients, st.garments, st.sequences, batchUseCase, st.history, st.sessions, clk)
	readerUseCase := usecase.NewReaderUseCase(reader)
	delayMonitor := usecase.NewDelayMonitor(st.garments, st.batches, clk, cfg.Delay.ExpectedDays)
	dispatcher := usecase.NewActionDispatcher(lifecycleUseCase, batchUseCase)

	garmentHandler := handlers.NewGarmentHandler(lifecycleUseCase)
	batchHandler := handlers.NewBatchHandler(batchUseCase)
	intakeHandler := handlers.NewIntakeHandler(intakeUseCase, readerUseCase)
	readerHandler := handlers.NewReaderHandler(readerUseCase)
	alertHandler := handlers.NewAlertHandler(delayMonitor, cfg.Delay.ThresholdDays)
	actionHandler := handlers.NewActionHandler(dispatcher)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLaundryRoutes(v1, garmentHandler, batchHandler, alertHandler, actionHandler)
	addIntakeRoutes(v1, intakeHandler, readerHandler)
}

func buildStorage(ctx context.Context, cfg *config.Config) storage {
	var st storage

	switch cfg.Storage.Driver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
			Region:          cfg.DynamoDB.Region,
			Endpoint:        cfg.DynamoDB.Endpoint,
			AccessKeyID:     cfg.DynamoDB.AccessKeyID,
			SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("[storage] dynamodb connection failed")
		}
		st.clients = repository2.NewClientDynamoRepository(ddb, cfg.DynamoDB.ClientsTable)
		st.garments = repository2.NewGarmentDynamoRepository(ddb, cfg.DynamoDB.GarmentsTable)
		st.batches = repository2.NewBatchDynamoRepository(ddb, cfg.DynamoDB.BatchesTable)
		st.sequences = repository2.NewSequenceDynamoRepository(ddb, cfg.DynamoDB.CountersTable)
	default:
		var seed []entities.Client
		if cfg.SeedClients {
			seed = demoClients()
		}
		st.clients = repository2.NewClientMemoryRepository(seed...)
		st.garments = repository2.NewGarmentMemoryRepository()
		st.batches = repository2.NewBatchMemoryRepository()
		st.sequences = repository2.NewSequenceMemoryRepository()
	}

	st.history = repository2.NewHistoryMemoryRepository()
	if cfg.Postgres.URL != "" {
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres.URL)
		if err != nil {
			log.Warn().Err(err).Msg("[storage] postgres unavailable, history kept in memory")
		} else {
			repo := repository2.NewHistoryPostgresRepository(pool)
			if err := repo.EnsureSchema(ctx); err != nil {
				log.Fatal().Err(err).Msg("[storage] history schema setup failed")
			}
			st.history = repo
		}
	}

	st.sessions = repository2.NewIntakeSessionMemoryStore()
	st.notifier = notifications.LogSink{}
	if cfg.Redis.Addr != "" {
		rdb, err := cache.Connect(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("[storage] redis unavailable, intake sessions kept in memory")
		} else {
			st.sessions = repository2.NewIntakeSessionRedisStore(rdb, cfg.Redis.SessionTTL)
			st.notifier = notifications.NewRedisSink(rdb, cfg.Redis.NotifyChannel)
		}
	}
	return st
}

func demoClients() []entities.Client {
	now := time.Now()
	return []entities.Client{
		{ID: "1", Name: "Juan Pérez", Phone: "+54 11 5555-0101", Email: "juan.perez@example.com", CreatedAt: now},
		{ID: "2", Name: "María González", Phone: "+54 11 5555-0102", Email: "maria.gonzalez@example.com", CreatedAt: now},
		{ID: "3", Name: "Hotel Central", Phone: "+54 11 5555-0103", Document: "30-71234567-8", CreatedAt: now},
	}
}

func setMiddlewares(cfg *config.Config) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CorsAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(pkg.GinLogger())
	router.Use(metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatus(500)
	}))
}
