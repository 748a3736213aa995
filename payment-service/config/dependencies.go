package config

import (
	"context"
	"fmt"

	"github.com/coffeeshop/coffee-system/payment-service/application"
	"github.com/coffeeshop/coffee-system/payment-service/domain"
	"github.com/coffeeshop/coffee-system/payment-service/handlers"
	"github.com/coffeeshop/coffee-system/payment-service/infrastructure"
	"github.com/coffeeshop/coffee-system/shared/events"
	sharedinfra "github.com/coffeeshop/coffee-system/shared/infrastructure"
	"github.com/coffeeshop/coffee-system/shared/logging"
	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
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
	AccountRepository domain.AccountRepository

	// Use Cases
	ChargeCard *application.ChargeCard
	GetBalance *application.GetBalance

	// HTTP Handlers
	PaymentHandlers *handlers.PaymentHandlers

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

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.PaymentServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			// Continue without telemetry rather than failing
			logger.Warn("failed to initialize telemetry", zap.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	policy, err := chargePolicy(config)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	switch config.Storage {
	case StoragePostgres:
		db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := infrastructure.Migrate(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		deps.DB = db
		deps.AccountRepository = infrastructure.NewPostgresAccountRepository(db)
	case StorageMemory, "":
		deps.AccountRepository = infrastructure.NewMemoryAccountRepository()
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
	deps.ChargeCard = application.NewChargeCard(deps.AccountRepository, deps.EventPublisher, policy, nil, logger.Named("charge"))
	deps.GetBalance = application.NewGetBalance(deps.AccountRepository)

	// Initialize handlers
	deps.PaymentHandlers = handlers.NewPaymentHandlers(deps.ChargeCard, deps.GetBalance, logger.Named("http"))

	return deps, nil
}

func chargePolicy(config *Config) (application.ChargePolicy, error) {
	policy := application.DefaultChargePolicy()

	if config.StartBalance != "" {
		start, err := decimal.NewFromString(config.StartBalance)
		if err != nil {
			return policy, fmt.Errorf("invalid start_balance: %w", err)
		}
		policy.StartBalance = start
	}

	if config.DebtFloor != "" {
		floor, err := decimal.NewFromString(config.DebtFloor)
		if err != nil {
			return policy, fmt.Errorf("invalid debt_floor: %w", err)
		}
		policy.DebtFloor = floor
	}

	return policy, nil
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
