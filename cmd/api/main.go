package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "retifica_os/docs"
	"retifica_os/internal/adapter/http/handlers"
	"retifica_os/internal/adapter/http/routes"
	"retifica_os/internal/adapter/persistence/repository"
	"retifica_os/internal/config"
	"retifica_os/internal/infrastructure/database"
	"retifica_os/internal/infrastructure/logger"
	"retifica_os/internal/infrastructure/messaging"
	"retifica_os/internal/usecase"
	"retifica_os/internal/usecase/interfaces"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// @title           Retífica OS API
// @version         1.0
// @description     Shop-floor progress for engine rebuild orders: stage timers, sub-task checklists and responsible assignment, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogJSON); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		logger.L().Fatal("[main] failed to connect to DynamoDB", logger.ErrorF(err))
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	employeeRepo := repository.NewEmployeeDynamoRepository(ddb, cfg.Tables.Employees)
	busyRepo := repository.NewEmployeeBusyDynamoRepository(ddb, cfg.Tables.EmployeeBusy)
	presetRepo := repository.NewSubtaskPresetDynamoRepository(ddb, cfg.Tables.SubtaskPresets)

	var publisher interfaces.IProgressPublisher = messaging.NoopPublisher{}
	if cfg.EventsEnabled() {
		producer, err := messaging.NewSyncProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.L().Fatal("[main] failed to create kafka producer", logger.ErrorF(err))
		}
		progressPublisher := messaging.NewProgressPublisher(producer, cfg.KafkaProgressTopic)
		defer func() {
			if cerr := progressPublisher.Close(); cerr != nil {
				logger.L().Warn("[main] failed to close kafka producer", logger.ErrorF(cerr))
			}
		}()
		publisher = progressPublisher
	} else {
		logger.L().Info("[main] KAFKA_BROKERS not set, progress events disabled")
	}

	persister := usecase.NewProgressPersister(orderRepo, publisher, nil)
	assignmentUseCase := usecase.NewAssignmentUseCase(persister, employeeRepo, busyRepo, cfg.AssignDebounce)
	stageUseCase := usecase.NewStageUseCase(persister, assignmentUseCase)
	serviceUseCase := usecase.NewServiceUseCase(persister, assignmentUseCase)
	orderUseCase := usecase.NewOrderUseCase(persister, orderRepo, presetRepo, busyRepo)

	router, err := routes.NewRouter(cfg, employeeRepo, routes.Handlers{
		Orders:    handlers.NewOrderHandler(orderUseCase, assignmentUseCase),
		Stages:    handlers.NewStageHandler(stageUseCase, assignmentUseCase, cfg.TimerTick),
		Services:  handlers.NewServiceHandler(serviceUseCase, assignmentUseCase),
		Employees: handlers.NewEmployeeHandler(assignmentUseCase),
	})
	if err != nil {
		logger.L().Fatal("[main] failed to build router", logger.ErrorF(err))
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.L().Info("[main] server listening", logger.String("addr", cfg.Address()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Error("[main] server error", logger.ErrorF(err))
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	logger.L().Info("[main] shutting down")

	sdCtx, sdCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer sdCancel()

	if err := server.Shutdown(sdCtx); err != nil {
		logger.L().Error("[main] error during server shutdown", logger.ErrorF(err))
	}
	if err := assignmentUseCase.Flush(sdCtx); err != nil {
		logger.L().Error("[main] pending assignments not saved", logger.ErrorF(err))
	}

	logger.L().Info("[main] server stopped")
}
