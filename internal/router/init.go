package router

import (
	"github.com/oksasatya/go-auth-signup/internal/application"
	"github.com/oksasatya/go-auth-signup/internal/container"
	pginfra "github.com/oksasatya/go-auth-signup/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-auth-signup/internal/interface/http"
	"github.com/oksasatya/go-auth-signup/internal/router/modules"
	"github.com/oksasatya/go-auth-signup/pkg/helpers"
	tpl "github.com/oksasatya/go-auth-signup/pkg/mailer/templates"
)

type ModuleDeps struct {
	Repo        *pginfra.UserRepository
	Service     *application.Service
	AuthHandler *handlers.AuthHandler
	UserHandler *handlers.UserHandler
}

func buildDeps() ModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	hasher := helpers.NewBcryptAdapter(cfg.BcryptCost)

	service := application.NewService(repo, logger, container.GetES(), cfg.ESUsersIndex)

	authHandler := handlers.NewAuthHandler(handlers.AuthHandlerDeps{
		Auth:     application.NewDbAuthentication(repo, hasher, jwt, repo),
		Accounts: application.NewDbAddAccount(hasher, repo),
		Users:    repo,
		Indexer:  service,
		Tokens:   jwt,
		Pub:      container.GetPublisher(),
		Geo:      tpl.IPAPIResolver{},
		Logger:   logger,
		Cfg:      cfg,
	})

	userHandler := handlers.NewUserHandler(service, logger, cfg.CookieDomain, cfg.CookieSecure)

	return ModuleDeps{
		Repo:        repo,
		Service:     service,
		AuthHandler: authHandler,
		UserHandler: userHandler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	deps := buildDeps()

	r.Add(modules.NewAuthModule(deps.AuthHandler, cfg.SignupRateLimit, cfg.LoginRateLimit))
	r.Add(modules.NewUserModule(deps.UserHandler, container.GetJWT(), deps.Repo))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
