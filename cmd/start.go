package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"loadout-manager/core/loader"
	"loadout-manager/core/logger"
	"loadout-manager/core/middleware/auth"
	"loadout-manager/core/middleware/rayid"

	"loadout-manager/feature/integrity"
	"loadout-manager/feature/inventory"
	manifestfeature "loadout-manager/feature/manifest"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "loadout-manager/docs/swagger"
)

// @title Loadout Manager API
// @version 1.0
// @description API for Destiny 2 manifest definitions and account inventories.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the loadout manager server",
	Long:  `Starts the HTTP server, initializes the manifest and loads all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := svc.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !svc.cfg.Server.IsValidPort() {
			logg.Fatal("Invalid server port", zap.String("port", svc.cfg.Server.Port))
		}

		// Warm the manifest so the first inventory request does not pay for it.
		// A failure here is retried on first use.
		if _, err := svc.manifest.Store(context.Background()); err != nil {
			logg.Warn("Manifest initialisation failed, retrying on first use", zap.Error(err))
		} else {
			logg.Info("Manifest ready", zap.String("version", svc.manifest.Version()))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(manifestfeature.NewFeature(svc.manifest, logg))
		mgr.Register(inventory.NewFeature(svc.manifest, svc.remote, logg))
		mgr.Register(integrity.NewFeature(svc.manifest, svc.client, svc.cfg.Storage.Bucket, svc.cfg.Cache.Prefix, logg, svc.db))

		// RayID first so every log line of a request carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: svc.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", svc.cfg.Server.Port))
			if err := app.Listen(svc.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
