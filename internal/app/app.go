package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todoapi/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg    config.Config
	db     *pgxpool.Pool
	redis  *redis.Client
	router *gin.Engine
}

// New builds the multi-user application: Postgres, optional Redis cache,
// registration/login and bearer-token protected todo routes.
func New(cfg config.Config) (*App, error) {
	if cfg.PG.DSN == "" {
		return nil, fmt.Errorf("PG_DSN is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	a := &App{cfg: cfg}
	if err := a.initStores(); err != nil {
		return nil, err
	}

	a.router = newRouter()
	setupMultiUser(a.router, cfg, a.db, a.redis)
	return a, nil
}

// NewSingleUser builds the persisted single-user application: same todo
// routes, no accounts, no token checks, no owner scoping.
func NewSingleUser(cfg config.Config) (*App, error) {
	if cfg.PG.DSN == "" {
		return nil, fmt.Errorf("PG_DSN is required")
	}

	a := &App{cfg: cfg}
	if err := a.initStores(); err != nil {
		return nil, err
	}

	a.router = newRouter()
	setupSingleUser(a.router, cfg, a.db, a.redis)
	return a, nil
}

// NewInMemory builds the non-persisted application: todo routes against an
// in-process store, nothing survives a restart.
func NewInMemory(cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}
	a.router = newRouter()
	setupInMemory(a.router, cfg)
	return a, nil
}

func (a *App) initStores() error {
	db, err := newPostgres(a.cfg.PG.DSN)
	if err != nil {
		return err
	}
	a.db = db

	if a.cfg.Redis.Addr != "" {
		rdb, err := newRedis(a.cfg.Redis)
		if err != nil {
			db.Close()
			return err
		}
		a.redis = rdb
	}

	if err := runMigrations(a.cfg.PG.DSN, "./migrations"); err != nil {
		if a.redis != nil {
			_ = a.redis.Close()
		}
		a.db.Close()
		return err
	}
	return nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	return nil
}

// Run serves the app until SIGINT/SIGTERM, then shuts down gracefully.
// Shared by all three variant binaries.
func Run(a *App, cfg config.Config) error {
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      a.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	return a.Close(ctx)
}

func newPostgres(dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func runMigrations(dsn string, migrationsDir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("goose open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func newRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	return r
}
