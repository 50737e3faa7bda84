package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velaris/seoforge/internal/auth"
	"github.com/velaris/seoforge/internal/config"
	"github.com/velaris/seoforge/internal/content"
	"github.com/velaris/seoforge/internal/generate"
	"github.com/velaris/seoforge/internal/logging"
	"github.com/velaris/seoforge/internal/server"
	"github.com/velaris/seoforge/internal/store"
	"github.com/velaris/seoforge/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Init(cfg.LogLevel, cfg.Production())
	ctx := context.Background()

	// ── PostgreSQL (users) ───────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer pgPool.Close()
	users := store.NewPostgresStore(pgPool)
	if err := users.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("postgres migrate")
	}
	if err := users.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("postgres bootstrap")
	}

	// ── MongoDB (generated content) ──────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer mongoClient.Disconnect(ctx)
	contents := store.NewMongoStore(mongoClient.Database(cfg.MongoDB))

	// ── Sessions (in-memory unless Redis is configured) ──────
	var sessions auth.SessionStore
	if cfg.RedisAddr != "" {
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect")
		}
		defer rdb.Close()
		sessions = auth.NewRedisStore(rdb, cfg.SessionTTL)
	} else {
		sessions = auth.NewMemoryStore(cfg.SessionTTL)
	}

	// ── Handlers and router ──────────────────────────────────
	gemini := generate.NewClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey)
	r := server.New(server.Deps{
		Auth:      auth.NewHandler(users, sessions),
		Content:   content.NewHandler(contents),
		Generate:  generate.NewHandler(contents, gemini),
		Sessions:  sessions,
		Health:    web.HealthHandler(cfg.Env, users, contents),
		StaticDir: cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
