package history

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"signcraft/internal/config"
	"signcraft/internal/history/cache"
	"signcraft/internal/history/controller"
	"signcraft/internal/history/repository"
	"signcraft/internal/history/service"
)

// Module bundles the controller with the service so other modules can
// reach the cache invalidation hook.
type Module struct {
	Controller *controller.HistoryController
	Service    *service.HistoryService
}

func NewModule(db *sql.DB, cfg *config.Config, loc *time.Location, logger *zap.Logger) *Module {
	queryRepo := repository.NewMySQLOrderQueryRepository(db)
	pageCache := cache.NewPageCache(cfg.History.CacheCapacity)

	historySvc := service.NewHistoryService(
		queryRepo,
		pageCache,
		loc,
		cfg.History.DefaultPageSize,
		cfg.History.MaxPageSize,
		cfg.History.DayFetchLimit,
		logger,
	)

	return &Module{
		Controller: controller.NewHistoryController(historySvc, logger),
		Service:    historySvc,
	}
}
