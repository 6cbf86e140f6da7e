package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"signcraft/internal/analytics"
	"signcraft/internal/commons"
	"signcraft/internal/config"
	"signcraft/internal/history"
	"signcraft/internal/infrastructure/logger"
	"signcraft/internal/infrastructure/mysql"
	"signcraft/internal/infrastructure/rabbitmq"
	"signcraft/internal/notification"
	"signcraft/internal/order"
	orderservice "signcraft/internal/order/service"
	"signcraft/internal/server"
	"signcraft/internal/user"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		cfg, err = config.Load()
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	businessLoc, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		zapLogger.Fatal("loading business timezone",
			zap.String("timezone", cfg.Business.Timezone),
			zap.Error(err),
		)
	}

	var notifier orderservice.Notifier = notification.NewNopPublisher()
	if cfg.Broker.Enabled {
		brokerClient, err := rabbitmq.Dial(cfg.Broker)
		if err != nil {
			zapLogger.Fatal("connecting to broker", zap.Error(err))
		}
		defer brokerClient.Close()
		zapLogger.Info("broker connected", zap.String("exchange", cfg.Broker.Exchange))

		notifier = notification.NewPublisher(brokerClient, zapLogger)
	}

	historyModule := history.NewModule(db, cfg, businessLoc, zapLogger)
	statsCtrl := analytics.NewModule(db, businessLoc, zapLogger)
	orderCtrl := order.NewModule(db, notifier, historyModule.Service, zapLogger)
	userCtrl := user.NewModule(db, zapLogger)

	router := server.NewRouter(statsCtrl, historyModule.Controller, orderCtrl, userCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
