package main

import (
	"context"

	"github.com/applytrack/applytrack/internal/config"
	"github.com/applytrack/applytrack/internal/database"
	"github.com/applytrack/applytrack/internal/handler"
	"github.com/applytrack/applytrack/internal/logger"
	"github.com/applytrack/applytrack/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.New(cfg.IsDevelopment())
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		sugar.Fatal(err)
	}

	repo := repository.New(pool)

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    handler.New(log, repo),
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
