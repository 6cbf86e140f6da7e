package analytics

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"signcraft/internal/analytics/controller"
	"signcraft/internal/analytics/service"
	"signcraft/internal/analytics/usecase"
	orderrepo "signcraft/internal/order/repository"
)

func NewModule(db *sql.DB, loc *time.Location, logger *zap.Logger) *controller.StatsController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	aggregator := service.NewAggregator(loc, logger)
	statsUC := usecase.NewMonthlyStatsUseCase(orderRepo, aggregator, logger)

	return controller.NewStatsController(statsUC, logger)
}
