package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nathanpras/storefront-service/config"
	"github.com/nathanpras/storefront-service/internal/controller"
	"github.com/nathanpras/storefront-service/internal/infrastructure/tracing"
	localmiddleware "github.com/nathanpras/storefront-service/internal/middleware"
	"github.com/nathanpras/storefront-service/internal/repository"
	"github.com/nathanpras/storefront-service/internal/service"
	"github.com/nathanpras/storefront-service/pkg/response"
)

type App struct {
	DB       *mongo.Database
	Producer *kafka.Conn
	Config   *config.Config
	Server   *echo.Echo
}

// Start runs until the server stops. App.DB may be nil: the repository then
// reports the store unavailable and catalog reads degrade to empty results.
func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	if traceProvider != nil {
		defer func() {
			if err := traceProvider.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown tracing")
			}
		}()

		tracer := traceProvider.Tracer("storefront-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	mongoDBRepo := repository.CreateNewMongoDBRepository(app.DB)
	productSvc := service.CreateProductService(mongoDBRepo, *app.Config, app.Producer)
	orderSvc := service.CreateOrderService(mongoDBRepo, *app.Config, app.Producer)
	systemSvc := service.CreateSystemService(mongoDBRepo, *app.Config)
	controller.CreateStorefrontController(g, productSvc, orderSvc, systemSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	app.Server = e
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
