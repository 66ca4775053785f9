package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanRulev/quizroom/internal/bot"
	"github.com/DanRulev/quizroom/internal/config"
	"github.com/DanRulev/quizroom/internal/repository"
	"github.com/DanRulev/quizroom/internal/server"
	"github.com/DanRulev/quizroom/internal/service"
	"github.com/DanRulev/quizroom/internal/storage/cache"
	"github.com/DanRulev/quizroom/internal/storage/db"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db)
	cache := cache.NewCache()
	services := service.InitServices(cfg.App, repos, cache, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := services.Init(ctx); err != nil {
		logger.Fatal("failed init services", zap.Error(err))
	}

	logEvent := func(e service.Event) {
		logger.Debug("event", zap.String("kind", string(e.Kind)), zap.String("user_id", e.UserID), zap.String("quiz_id", e.QuizID))
	}
	defer services.AuthS.Subscribe(logEvent)()
	defer services.QuizS.Subscribe(logEvent)()

	srv := server.New(cfg.HTTP, server.NewRouter(services, cfg.HTTP, logger))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		services.Discard()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.BotToken != "" {
		handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.Telegram.OwnerChatID, services, logger)
		if err != nil {
			logger.Fatal("failed init telegram bot", zap.Error(err))
			return
		}

		g.Go(func() error {
			handler.Start(gctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("stopped with error", zap.Error(err))
	}
	logger.Info("stopped")
}
