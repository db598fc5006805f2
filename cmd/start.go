package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"country-explorer/core/loader"
	"country-explorer/core/logger"
	"country-explorer/core/middleware/rayid"
	"country-explorer/core/reconcile"
	"country-explorer/feature/countries"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "country-explorer/docs/swagger"
)

// @title Country Explorer API
// @version 1.0
// @description Query, export and refresh the merged country record set.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the web server",
	Long:  `Loads both sources, then serves the HTML view, the JSON API, metrics and API docs.`,
	RunE:  runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	logg := e.log
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	if err := e.cfg.Server.Validate(); err != nil {
		return err
	}

	if _, err := e.store.Load(ctx); err != nil {
		if !errors.Is(err, reconcile.ErrNoData) {
			return err
		}
		// The first request retries the load.
		logg.Warn("Starting without data", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager(logg)
	svc := countries.NewService(e.store, e.storage, e.cfg.Storage.Bucket, logg)
	mgr.Register(countries.NewFeature(svc, logg, e.cfg.Server.ApiKey))

	// RayID first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		l.Info("Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(e.metrics.Handler()))

	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("port", e.cfg.Server.Port))
		errc <- app.Listen(e.cfg.Server.Address())
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errc:
		return err
	case <-sig:
	}

	logg.Info("Shutting down server...")
	return app.ShutdownWithTimeout(time.Duration(e.cfg.Server.ShutdownSeconds) * time.Second)
}
