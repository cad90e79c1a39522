package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"marketplace/internal/adapters/out/cache"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	calculator services.QuoteCalculator
	sessions   *cache.InMemorySessionStore
	notifier   ports.Notifier
	logger     *slog.Logger
	closers    []func() error
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: services.NewQuoteCalculator(),
		sessions:   cache.NewInMemorySessionStore(parseSessionTTL(configs.SessionTTL)),
		logger:     logger,
	}

	var publisher notify.EventPublisher
	if configs.KafkaHost != "" {
		producer, err := kafka.NewOrderEventProducer(
			[]string{configs.KafkaHost},
			configs.KafkaOrderChangedTopic,
		)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("create kafka producer: %w", err)
		}
		publisher = producer
		root.closers = append(root.closers, producer.Close)
	}

	var alerter notify.MerchantAlerter
	if configs.TelegramToken != "" {
		chatID, err := strconv.ParseInt(configs.TelegramChatID, 10, 64)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("parse telegram chat id: %w", err)
		}
		telegram, err := notify.NewTelegramAlerter(configs.TelegramToken, chatID)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("create telegram alerter: %w", err)
		}
		alerter = telegram
	}

	root.notifier = notify.NewCompositeNotifier(logger, publisher, alerter)

	return root, nil
}

func (c *CompositionRoot) CreateCreateMerchantCommandHandler() commands.CreateMerchantCommandHandler {
	var f commands.MerchantUoWFactory = FuncMerchantUoWFactory(func() commands.MerchantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMerchantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCheckoutSessionCommandHandler() commands.CreateCheckoutSessionCommandHandler {
	var f commands.MerchantUoWFactory = FuncMerchantUoWFactory(func() commands.MerchantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCheckoutSessionCommandHandler(f, c.calculator, c.sessions)
}

func (c *CompositionRoot) CreateCompleteCheckoutCommandHandler() commands.CompleteCheckoutCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteCheckoutCommandHandler(f, c.sessions, c.notifier)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateBulkTransitionOrdersCommandHandler() commands.BulkTransitionOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkTransitionOrdersCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDeliveryQuoteQueryHandler() queries.DeliveryQuoteQueryHandler {
	return queries.NewDeliveryQuoteQueryHandler(c.uowFactory.Create().MerchantRepository(), c.calculator)
}

func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() queries.GetOrderEventsQueryHandler {
	return queries.NewGetOrderEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) SessionStore() *cache.InMemorySessionStore {
	return c.sessions
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Close releases resources held by outbound adapters, such as the Kafka producer.
func (c *CompositionRoot) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close composition root: %v", errs)
	}
	return nil
}

func parseSessionTTL(raw string) time.Duration {
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return ttl
}

type FuncMerchantUoWFactory func() commands.MerchantUoW

func (f FuncMerchantUoWFactory) Create() commands.MerchantUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
