// @title        Food Ordering API
// @version      1.0
// @description  Cookie-session food ordering service: auth, menu, checkout, order history.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/warungkita/food-ordering/docs"
	"github.com/warungkita/food-ordering/internal/api"
	"github.com/warungkita/food-ordering/internal/api/handler"
	"github.com/warungkita/food-ordering/internal/core/domain"
	"github.com/warungkita/food-ordering/internal/core/ports"
	"github.com/warungkita/food-ordering/internal/core/service"
	"github.com/warungkita/food-ordering/internal/infrastructure/config"
	mongodb "github.com/warungkita/food-ordering/internal/infrastructure/db/mongo"
	redisdb "github.com/warungkita/food-ordering/internal/infrastructure/db/redis"
	"github.com/warungkita/food-ordering/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, cleanup, err := connectStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to connect store")
	}
	defer cleanup()

	if err := store.menu.Seed(ctx, domain.DefaultMenu()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed menu")
	}

	authService := service.NewAuthService(store.users, store.sessions, cfg.SessionTTL, log)
	orderService := service.NewOrderService(store.orders, log)
	menuService := service.NewMenuService(store.menu)

	e := api.NewRouter(api.Deps{
		Auth:    authService,
		Orders:  orderService,
		Menu:    menuService,
		Backend: cfg.StoreBackend,
		Store:   store.pinger,
		Logger:  log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		_ = e.Close()
	}
}

// store bundles the active backend's repositories and its health probe.
type store struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	orders   ports.OrderRepository
	menu     ports.MenuRepository
	pinger   handler.Pinger
}

// connectStore wires the repository set selected by STORE_BACKEND. The
// returned cleanup closes the underlying client.
func connectStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), defaultDisconnectTimeout)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect failed")
			}
		}
		return &store{
			users:    mongodb.NewUserRepository(db),
			sessions: mongodb.NewSessionRepository(db),
			orders:   mongodb.NewOrderRepository(db),
			menu:     mongodb.NewMenuRepository(db),
			pinger:   mongodb.Pinger{DB: db},
		}, cleanup, nil

	case config.BackendRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("redis close failed")
			}
		}
		return &store{
			users:    redisdb.NewUserRepository(client),
			sessions: redisdb.NewSessionRepository(client),
			orders:   redisdb.NewOrderRepository(client),
			menu:     redisdb.NewMenuRepository(client),
			pinger:   redisdb.Pinger{Client: client},
		}, cleanup, nil
	}

	// config.Load rejects unknown backends; unreachable.
	panic("unknown store backend " + cfg.StoreBackend)
}

const defaultDisconnectTimeout = 5 * time.Second
