package config

import (
	"context"
	"fmt"

	"github.com/coffeeshop/coffee-system/barista-service/application"
	"github.com/coffeeshop/coffee-system/barista-service/domain"
	"github.com/coffeeshop/coffee-system/barista-service/handlers"
	"github.com/coffeeshop/coffee-system/barista-service/infrastructure"
	"github.com/coffeeshop/coffee-system/shared/events"
	sharedinfra "github.com/coffeeshop/coffee-system/shared/infrastructure"
	"github.com/coffeeshop/coffee-system/shared/logging"
	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Dependencies struct {
	Logger *zap.Logger

	// Database
	DB *sqlx.DB

	// Repositories
	CupRepository domain.CupRepository

	// Use Cases
	BrewCoffee   *application.BrewCoffee
	GetCoffee    *application.GetCoffee
	ListCoffees  *application.ListCoffees
	UpdateCoffee *application.UpdateCoffee
	DeleteCoffee *application.DeleteCoffee

	// HTTP Handlers
	BaristaHandlers *handlers.BaristaHandlers

	// Infrastructure
	EventPublisher events.Publisher

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	logger, err := logging.New(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	deps.Logger = logger

	if config.Telemetry.Enabled {
		telConfig := telemetry.BaristaServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			logger.Warn("failed to initialize telemetry", zap.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize repositories
	switch config.Storage {
	case StoragePostgres:
		db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := infrastructure.Migrate(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		deps.DB = db
		deps.CupRepository = infrastructure.NewPostgresCupRepository(db)
	case StorageMemory, "":
		deps.CupRepository = infrastructure.NewMemoryCupRepository()
	default:
		return nil, fmt.Errorf("unknown storage %q", config.Storage)
	}

	// Initialize event publisher
	if config.AWS.Enabled {
		publisher, err := sharedinfra.NewSNSPublisherAdapter(ctx, sharedinfra.SNSConfig{
			Region:          config.AWS.Region,
			Endpoint:        config.AWS.EndpointSNS,
			AccessKeyID:     config.AWS.AccessKeyID,
			SecretAccessKey: config.AWS.SecretAccessKey,
			TopicArn:        config.AWS.SNSTopicArn,
		})
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
		}
		deps.EventPublisher = publisher
	} else {
		deps.EventPublisher = sharedinfra.NewLogEventPublisher(logger)
	}

	// Initialize use cases
	deps.BrewCoffee = application.NewBrewCoffee(deps.CupRepository, deps.EventPublisher, config.BrewDelay, logger.Named("brew"))
	deps.GetCoffee = application.NewGetCoffee(deps.CupRepository)
	deps.ListCoffees = application.NewListCoffees(deps.CupRepository)
	deps.UpdateCoffee = application.NewUpdateCoffee(deps.CupRepository)
	deps.DeleteCoffee = application.NewDeleteCoffee(deps.CupRepository)

	// Initialize handlers
	deps.BaristaHandlers = handlers.NewBaristaHandlers(
		deps.BrewCoffee,
		deps.GetCoffee,
		deps.ListCoffees,
		deps.UpdateCoffee,
		deps.DeleteCoffee,
		logger.Named("http"),
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if closer, ok := d.EventPublisher.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
