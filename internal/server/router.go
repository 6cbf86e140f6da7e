package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	analyticsctrl "signcraft/internal/analytics/controller"
	historyctrl "signcraft/internal/history/controller"
	orderctrl "signcraft/internal/order/controller"
	userctrl "signcraft/internal/user/controller"
)

func NewRouter(
	statsCtrl *analyticsctrl.StatsController,
	historyCtrl *historyctrl.HistoryController,
	orderCtrl *orderctrl.OrderController,
	userCtrl *userctrl.UserController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats/monthly", statsCtrl.HandleMonthlyStats)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderCtrl.HandleCreateOrder)
			r.Get("/database", historyCtrl.HandleListOrders)
			r.Get("/recent", orderCtrl.HandleRecentOrders)
			r.Patch("/{invoiceId}/status", orderCtrl.HandleUpdateStatus)
			r.Delete("/{invoiceId}", orderCtrl.HandleDeleteOrder)
		})

		r.Route("/auth/users", func(r chi.Router) {
			r.Get("/", userCtrl.HandleListUsers)
			r.Post("/", userCtrl.HandleCreateUser)
			r.Delete("/{id}", userCtrl.HandleDeleteUser)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
