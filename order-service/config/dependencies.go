package config

import (
	"context"
	"fmt"

	"github.com/coffeeshop/coffee-system/order-service/application"
	"github.com/coffeeshop/coffee-system/order-service/domain"
	"github.com/coffeeshop/coffee-system/order-service/handlers"
	"github.com/coffeeshop/coffee-system/order-service/infrastructure"
	"github.com/coffeeshop/coffee-system/shared/events"
	sharedinfra "github.com/coffeeshop/coffee-system/shared/infrastructure"
	"github.com/coffeeshop/coffee-system/shared/logging"
	"github.com/coffeeshop/coffee-system/shared/telemetry"
	"go.uber.org/zap"
)

type Dependencies struct {
	Logger *zap.Logger

	// Stores and downstream clients
	OrderStore    *infrastructure.MemoryOrderStore
	BaristaClient *infrastructure.HTTPBaristaClient
	PaymentClient *infrastructure.HTTPPaymentClient
	Prices        *domain.PriceCatalog

	// Use Cases
	OrderOrchestrator *application.OrderOrchestrator

	// HTTP Handlers
	OrderHandlers *handlers.OrderHandlers

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
		telConfig := telemetry.OrderServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			// Continue without telemetry rather than failing
			logger.Warn("failed to initialize telemetry", zap.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	prices, err := domain.ParsePriceCatalog(config.Prices)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prices: %w", err)
	}
	deps.Prices = prices
	if prices.Len() == 0 {
		logger.Warn("no prices configured, brewed orders cannot be charged")
	} else {
		logger.Info("price catalog loaded", zap.Int("flavors", prices.Len()))
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
			return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
		}
		deps.EventPublisher = publisher
	} else {
		deps.EventPublisher = sharedinfra.NewLogEventPublisher(logger)
	}

	// Initialize store and clients
	deps.OrderStore = infrastructure.NewMemoryOrderStore()
	deps.BaristaClient = infrastructure.NewHTTPBaristaClient(config.Barista.Endpoint, config.Barista.HTTPTimeout)
	deps.PaymentClient = infrastructure.NewHTTPPaymentClient(config.Payment.Endpoint, config.Payment.HTTPTimeout)

	// Initialize use cases
	deps.OrderOrchestrator = application.NewOrderOrchestrator(
		deps.OrderStore,
		deps.BaristaClient,
		deps.PaymentClient,
		deps.Prices,
		deps.EventPublisher,
		logger.Named("order-saga"),
		application.WithBrewTimeout(config.Barista.Timeout),
	)

	// Initialize handlers
	deps.OrderHandlers = handlers.NewOrderHandlers(deps.OrderOrchestrator, logger.Named("http"))

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

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
