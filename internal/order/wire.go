package order

import (
	"database/sql"

	"go.uber.org/zap"

	"signcraft/internal/order/controller"
	"signcraft/internal/order/repository"
	"signcraft/internal/order/service"
)

func NewModule(
	db *sql.DB,
	notifier service.Notifier,
	invalidator service.HistoryInvalidator,
	logger *zap.Logger,
) *controller.OrderController {
	orderRepo := repository.NewMySQLOrderRepository(db)
	orderSvc := service.NewOrderService(orderRepo, notifier, invalidator, logger)
	return controller.NewOrderController(orderSvc, logger)
}
