package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"ratehub/config"
	"ratehub/internal/delivery"
	"ratehub/internal/delivery/http"
	httpmiddleware "ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/router/handler"
	deliverymiddleware "ratehub/internal/delivery/middleware"
	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/lifecycle"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"
	"ratehub/internal/infra/auth"
	logs "ratehub/internal/infra/log"
	"ratehub/internal/infra/persistence/postgres"
	"ratehub/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			ensureAdminAccount,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewStoreRepository,
			postgres.NewRatingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStoreService,
			impl.NewRatingService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewStoreHandler,
			handler.NewRatingHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type bootstrapParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// ensureAdminAccount seeds the first administrator from configuration when no
// admin exists yet. The hook runs after the schema is ensured and before the
// server starts accepting requests.
func ensureAdminAccount(params bootstrapParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			bootstrap := params.Config.Bootstrap
			if bootstrap == nil || bootstrap.AdminEmail == "" || bootstrap.AdminPassword == "" {
				return nil
			}

			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			count, err := params.UserRepo.CountByRole(ctx, entity.RoleAdmin)
			if err != nil {
				return errors.Wrap(err, "failed to count admin accounts")
			}
			if count > 0 {
				return nil
			}

			passwordHash, err := params.Hasher.Hash(bootstrap.AdminPassword)
			if err != nil {
				return errors.Wrap(err, "failed to hash bootstrap admin password")
			}

			admin := &entity.User{
				Name:         strings.TrimSpace(bootstrap.AdminName),
				Email:        strings.ToLower(strings.TrimSpace(bootstrap.AdminEmail)),
				Address:      bootstrap.AdminAddress,
				PasswordHash: passwordHash,
				Role:         entity.RoleAdmin,
			}

			if err := params.UserRepo.Create(ctx, admin); err != nil {
				// Another replica may have seeded concurrently.
				if errors.Is(err, repository.ErrEmailAlreadyRegistered) {
					return nil
				}

				return errors.Wrap(err, "failed to create bootstrap admin")
			}

			params.Logger.Info("Bootstrap admin account created",
				slog.String("email", admin.Email),
			)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
