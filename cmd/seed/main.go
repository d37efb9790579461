package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-signup/config"
	"github.com/oksasatya/go-auth-signup/internal/application"
	pginfra "github.com/oksasatya/go-auth-signup/internal/infrastructure/postgres"
	"github.com/oksasatya/go-auth-signup/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pool.Close()

	in := application.AddAccountInput{
		Name:      "Demo User",
		Email:     "demo@example.com",
		Username:  "demo",
		Password:  "password123",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	accounts := application.NewDbAddAccount(helpers.NewBcryptAdapter(cfg.BcryptCost), pginfra.NewUserRepository(pool))

	u, err := accounts.AddAccount(ctx, in)
	switch {
	case errors.Is(err, application.ErrUsernameTaken), errors.Is(err, application.ErrEmailTaken):
		logger.WithField("username", in.Username).Info("demo user already seeded")
	case err != nil:
		helpers.LogError(logger, "failed to seed user", err, nil)
		logger.Exit(1)
	default:
		logger.WithFields(logrus.Fields{"id": u.ID, "username": u.Username, "password": in.Password}).Info("seeded user")
	}
}
