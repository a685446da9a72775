package cmd

import (
	"log/slog"

	"orders/internal/adapters/out/postgres/idemrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB    *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	idemRepo  *idemrepo.GormIdempotencyRepository
	clock     commands.Clock
	logger    *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:    gormDB,
		orderRepo: orderrepo.NewGormOrderRepository(gormDB),
		idemRepo:  idemrepo.NewGormIdempotencyRepository(gormDB),
		clock:     commands.SystemClock{},
		logger:    logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo, c.idemRepo, c.clock, c.logger)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderRepo, c.clock)
}

func (c *CompositionRoot) CreateAcknowledgeOrderCommandHandler() commands.AcknowledgeOrderCommandHandler {
	return commands.NewAcknowledgeOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.idemRepo, c.clock, c.logger)
}
