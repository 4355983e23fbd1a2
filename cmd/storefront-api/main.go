package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/jewelry-storefront/internal/config"
	"github.com/nikolayk812/jewelry-storefront/internal/logging"
	"github.com/nikolayk812/jewelry-storefront/internal/migrations"
	"github.com/nikolayk812/jewelry-storefront/internal/repository"
	"github.com/nikolayk812/jewelry-storefront/internal/seed"
	"github.com/nikolayk812/jewelry-storefront/internal/server"
	"go.uber.org/zap"
)

func main() {
	seedCatalog := flag.Bool("seed", false, "load the sample jewelry catalog before serving")
	migrate := flag.Bool("migrate", true, "create the schema when it is missing")
	flag.Parse()

	if err := run(*seedCatalog, *migrate); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(seedCatalog, migrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return fmt.Errorf("logging.New: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("%s is empty", config.EnvDatabaseURL)
	}

	if !cfg.LogDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	if migrate {
		if err := ensureSchema(ctx, pool, logger); err != nil {
			return err
		}
	}

	repos, err := repositories(pool)
	if err != nil {
		return err
	}

	if seedCatalog {
		if _, err := seed.Load(ctx, repos.Products, cfg.Currency, logger.Named("seed")); err != nil {
			return fmt.Errorf("seed.Load: %w", err)
		}
	}

	srv, err := server.New(repos,
		server.WithLogger(logger.Named("http")),
		server.WithCORSOrigins(cfg.CORSOrigins...),
	)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	l, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	if err := srv.Serve(ctx, l); err != nil {
		return fmt.Errorf("srv.Serve: %w", err)
	}

	logger.Info("api server stopped")
	return nil
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	applied, err := migrations.Applied(ctx, pool)
	if err != nil {
		return fmt.Errorf("migrations.Applied: %w", err)
	}

	if applied {
		logger.Debug("schema present")
		return nil
	}

	if err := migrations.Up(ctx, pool); err != nil {
		return fmt.Errorf("migrations.Up: %w", err)
	}

	logger.Info("schema created")
	return nil
}

func repositories(pool *pgxpool.Pool) (server.Repositories, error) {
	products, err := repository.NewProduct(pool)
	if err != nil {
		return server.Repositories{}, fmt.Errorf("repository.NewProduct: %w", err)
	}

	carts, err := repository.NewCart(pool)
	if err != nil {
		return server.Repositories{}, fmt.Errorf("repository.NewCart: %w", err)
	}

	orders, err := repository.NewOrder(pool)
	if err != nil {
		return server.Repositories{}, fmt.Errorf("repository.NewOrder: %w", err)
	}

	profiles, err := repository.NewProfile(pool)
	if err != nil {
		return server.Repositories{}, fmt.Errorf("repository.NewProfile: %w", err)
	}

	contacts, err := repository.NewContact(pool)
	if err != nil {
		return server.Repositories{}, fmt.Errorf("repository.NewContact: %w", err)
	}

	return server.Repositories{
		Products: products,
		Carts:    carts,
		Orders:   orders,
		Profiles: profiles,
		Contacts: contacts,
	}, nil
}
