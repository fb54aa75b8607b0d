package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"arena45/backend/internal/api"
	"arena45/backend/internal/clock"
	"arena45/backend/internal/config"
	"arena45/backend/internal/logging"
	"arena45/backend/internal/notify"
	mongorepo "arena45/backend/internal/repository/mongo"
	"arena45/backend/internal/service"
	"arena45/backend/internal/storage"
	"arena45/backend/internal/validation"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

const (
	indexTimeout    = time.Minute
	shutdownTimeout = 5 * time.Second
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		func() (config.Config, error) { return config.LoadConfig(".") },
		logging.New,
		func(cfg config.Config) (clock.Clock, error) {
			loc, err := cfg.Server.Location()
			if err != nil {
				return nil, err
			}
			return clock.NewRealClock(loc), nil
		},
	),
)

var DatabaseModule = fx.Module("database",
	fx.Provide(
		newMongoClient,
		func(client *mongo.Client, cfg config.Config) *mongo.Database {
			return client.Database(cfg.Database.Name)
		},
		mongorepo.NewMongoBookingRepository,
		mongorepo.NewMongoContactRepository,
		mongorepo.NewMongoProgramRepository,
		mongorepo.NewMongoTestimonialRepository,
		mongorepo.NewMongoUserRepository,
		mongorepo.NewMongoMediaRepository,
	),
	fx.Invoke(ensureIndexes),
)

var ServiceModule = fx.Module("service",
	fx.Provide(
		validation.New,
		func(cfg config.Config, logger *slog.Logger) (notify.Notifier, error) {
			return notify.New(cfg.SMTP, logger)
		},
		func(cfg config.Config, logger *slog.Logger) (storage.FileStorage, error) {
			return storage.New(cfg.S3, logger)
		},
		service.NewBookingService,
		service.NewContactService,
		service.NewProgramService,
		service.NewTestimonialService,
		service.NewUserService,
		service.NewStatsService,
		fx.Annotate(service.NewMediaService, fx.ParamTags(``, ``, ``, ``, `name:"uploadExpiry"`)),
		fx.Annotate(
			func(cfg config.Config) time.Duration { return cfg.S3.UploadExpiry },
			fx.ResultTags(`name:"uploadExpiry"`),
		),
	),
)

var HTTPModule = fx.Module("http",
	fx.Provide(
		func(cfg config.Config, logger *slog.Logger) *api.ErrorWriter {
			return api.NewErrorWriter(logger, !cfg.IsProduction())
		},
		api.NewBookingHandler,
		api.NewContactHandler,
		api.NewProgramHandler,
		api.NewTestimonialHandler,
		api.NewUserHandler,
		api.NewStatsHandler,
		api.NewMediaHandler,
		newRouter,
		newHTTPServer,
	),
	fx.Invoke(func(*http.Server) {}),
)

func newMongoClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*mongo.Client, error) {
	client, err := mongorepo.ConnectDB(context.Background(), cfg.Database.URI)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to MongoDB", slog.String("database", cfg.Database.Name))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("disconnecting MongoDB")
			return mongorepo.DisconnectDB(ctx, client)
		},
	})
	return client, nil
}

func ensureIndexes(lc fx.Lifecycle, db *mongo.Database, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, indexTimeout)
			defer cancel()
			if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "ensure indexes")
			}
			logger.Info("database indexes ensured")
			return nil
		},
	})
}

type routerParams struct {
	fx.In

	Config       config.Config
	Logger       *slog.Logger
	Bookings     *api.BookingHandler
	Contacts     *api.ContactHandler
	Programs     *api.ProgramHandler
	Testimonials *api.TestimonialHandler
	Users        *api.UserHandler
	Stats        *api.StatsHandler
	Media        *api.MediaHandler
}

func newRouter(p routerParams) (*gin.Engine, error) {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	err := api.SetupRoutes(router, api.Handlers{
		Bookings:     p.Bookings,
		Contacts:     p.Contacts,
		Programs:     p.Programs,
		Testimonials: p.Testimonials,
		Users:        p.Users,
		Stats:        p.Stats,
		Media:        p.Media,
	}, p.Config, p.Logger)
	if err != nil {
		return nil, err
	}
	return router, nil
}

func newHTTPServer(lc fx.Lifecycle, cfg config.Config, router *gin.Engine, logger *slog.Logger) *http.Server {
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return errors.Wrapf(err, "listen on %s", server.Addr)
			}
			logger.Info("server starting",
				slog.String("address", server.Addr),
				slog.String("env", cfg.Server.Env),
			)
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down server")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return server.Shutdown(ctx)
		},
	})
	return server
}
