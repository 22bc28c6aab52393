package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"institute/config"
	"institute/internal/delivery"
	"institute/internal/delivery/http"
	"institute/internal/delivery/http/middleware"
	"institute/internal/delivery/http/router/handler"
	"institute/internal/infra/auth"
	logs "institute/internal/infra/log"
	"institute/internal/infra/persistence/postgres"
	"institute/internal/infra/storage"
	"institute/internal/usecase/impl"
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
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBlogRepository,
			postgres.NewTrainingRepository,
			postgres.NewInternshipRepository,
			postgres.NewInternshipApplicationRepository,
			postgres.NewEmployeeRepository,
			postgres.NewProjectRepository,
			postgres.NewServiceRepository,
			postgres.NewTestimonialRepository,
			postgres.NewJobRepository,
			postgres.NewJobApplicationRepository,
			postgres.NewContactRepository,
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
			impl.NewUserService,
			impl.NewBlogService,
			impl.NewTrainingService,
			impl.NewInternshipService,
			impl.NewEmployeeService,
			impl.NewProjectService,
			impl.NewServiceService,
			impl.NewTestimonialService,
			impl.NewJobService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewBlogHandler,
			handler.NewTrainingHandler,
			handler.NewInternshipHandler,
			handler.NewEmployeeHandler,
			handler.NewProjectHandler,
			handler.NewServiceHandler,
			handler.NewTestimonialHandler,
			handler.NewJobHandler,
			handler.NewContactHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
