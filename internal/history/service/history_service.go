package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"signcraft/internal/domain"
	apperrors "signcraft/internal/errors"
	"signcraft/internal/history/cache"
)

// Filter selects one of four mutually exclusive listing modes, resolved
// in precedence order date > status > search > page.
type Filter struct {
	Page     int
	PageSize int
	Search   string
	Status   string
	Date     string // YYYY-MM-DD, interpreted in the business timezone
}

type Result struct {
	Orders []domain.Order
	Total  int
}

type OrderQueryRepository interface {
	ListPage(ctx context.Context, offset, limit int) ([]domain.Order, int, error)
	SearchPage(ctx context.Context, term string, offset, limit int) ([]domain.Order, int, error)
	FindByStatus(ctx context.Context, status string, limit int) ([]domain.Order, int, error)
	FindByDay(ctx context.Context, dayStart, dayEnd time.Time, limit int) ([]domain.Order, int, error)
}

const (
	minFilterYear = 2000
	maxFilterYear = 2100
)

type HistoryService struct {
	repo            OrderQueryRepository
	cache           *cache.PageCache
	loc             *time.Location
	defaultPageSize int
	maxPageSize     int
	dayFetchLimit   int
	logger          *zap.Logger
}

func NewHistoryService(
	repo OrderQueryRepository,
	pageCache *cache.PageCache,
	loc *time.Location,
	defaultPageSize int,
	maxPageSize int,
	dayFetchLimit int,
	logger *zap.Logger,
) *HistoryService {
	return &HistoryService{
		repo:            repo,
		cache:           pageCache,
		loc:             loc,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		dayFetchLimit:   dayFetchLimit,
		logger:          logger,
	}
}

func (s *HistoryService) List(ctx context.Context, filter Filter) (*Result, error) {
	if filter.PageSize == 0 {
		filter.PageSize = s.defaultPageSize
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	if err := s.validate(filter); err != nil {
		return nil, err
	}

	switch {
	case filter.Date != "":
		return s.listByDate(ctx, filter.Date)
	case filter.Status != "":
		return s.listByStatus(ctx, filter.Status)
	case filter.Search != "":
		return s.listSearchPage(ctx, filter)
	default:
		return s.listPage(ctx, filter)
	}
}

// Invalidate drops every cached page. Order mutations call this before
// returning, so a later read never sees pre-mutation content.
func (s *HistoryService) Invalidate() {
	s.cache.Invalidate()
}

func (s *HistoryService) validate(filter Filter) error {
	var details []apperrors.ValidationDetail

	if filter.Page < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "page",
			Message: "page must be a positive integer",
		})
	}
	if filter.PageSize < 1 || filter.PageSize > s.maxPageSize {
		details = append(details, apperrors.ValidationDetail{
			Field:   "limit",
			Message: fmt.Sprintf("limit must be between 1 and %d", s.maxPageSize),
		})
	}
	if filter.Status != "" && !domain.IsValidOrderStatus(filter.Status) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, processing, completed, delivered",
		})
	}
	if filter.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", filter.Date, s.loc)
		if err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "date",
				Message: "date must be formatted as YYYY-MM-DD",
			})
		} else if day.Year() < minFilterYear || day.Year() > maxFilterYear {
			details = append(details, apperrors.ValidationDetail{
				Field:   "date",
				Message: fmt.Sprintf("date year must be between %d and %d", minFilterYear, maxFilterYear),
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewInvalidFilterError("invalid filter", details...)
	}

	return nil
}

func (s *HistoryService) listPage(ctx context.Context, filter Filter) (*Result, error) {
	key := cache.PageKey{Page: filter.Page, PageSize: filter.PageSize}
	if entry, ok := s.cache.Get(key); ok {
		s.logger.Debug("history page served from cache", zap.Int("page", filter.Page))
		return &Result{Orders: entry.Orders, Total: entry.Total}, nil
	}

	offset := (filter.Page - 1) * filter.PageSize
	orders, total, err := s.repo.ListPage(ctx, offset, filter.PageSize)
	if err != nil {
		return nil, apperrors.NewSourceUnavailableError("order source unavailable", err)
	}

	s.cache.Put(key, cache.Entry{Orders: orders, Total: total})

	return &Result{Orders: orders, Total: total}, nil
}

func (s *HistoryService) listSearchPage(ctx context.Context, filter Filter) (*Result, error) {
	offset := (filter.Page - 1) * filter.PageSize
	orders, total, err := s.repo.SearchPage(ctx, filter.Search, offset, filter.PageSize)
	if err != nil {
		return nil, apperrors.NewSourceUnavailableError("order source unavailable", err)
	}

	return &Result{Orders: orders, Total: total}, nil
}

// listByStatus returns the full batch for one status, unpaginated. The
// expected cardinality per status is small; the limit only bounds the
// pathological case.
func (s *HistoryService) listByStatus(ctx context.Context, status string) (*Result, error) {
	orders, total, err := s.repo.FindByStatus(ctx, status, s.dayFetchLimit)
	if err != nil {
		return nil, apperrors.NewSourceUnavailableError("order source unavailable", err)
	}

	return &Result{Orders: orders, Total: total}, nil
}

func (s *HistoryService) listByDate(ctx context.Context, date string) (*Result, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		// validate already rejected this; kept as a guard.
		return nil, apperrors.NewInvalidFilterError("invalid filter", apperrors.ValidationDetail{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
	}

	dayStart := day.UTC()
	dayEnd := day.AddDate(0, 0, 1).UTC()

	orders, total, err := s.repo.FindByDay(ctx, dayStart, dayEnd, s.dayFetchLimit)
	if err != nil {
		return nil, apperrors.NewSourceUnavailableError("order source unavailable", err)
	}

	return &Result{Orders: orders, Total: total}, nil
}
