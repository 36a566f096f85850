package cmd

import (
	"context"
	"fmt"
	"os"

	"loadout-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the manifest cache",
	Long:  `Checks the persisted manifest against the remote version, the cache bucket and the cache table schema.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true, true, false)
	},
}

// cacheCmd represents the integrity cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Check and repair the persisted manifest",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false, false, fixFlag)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and create the cache bucket",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true, false, fixFlag)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and migrate the cache table",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, false, true, fixFlag)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(cacheCmd, storageCmd, schemaCmd)

	cacheCmd.Flags().BoolVar(&fixFlag, "fix", false, "Clear and re-download a stale or incomplete cache")
	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when it is missing")
	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate the cache table")
}

func runIntegrityChecks(ctx context.Context, runCache, runStorage, runSchema, fix bool) {
	deps, err := bootstrap()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	logg := deps.logger
	defer logg.Sync()

	svc := integrity.NewService(deps.manifest, deps.client, deps.cfg.Storage.Bucket, deps.cfg.Cache.Prefix, logg, deps.db)

	if runCache {
		logg.Info("Checking manifest cache...", zap.String("driver", deps.cfg.Cache.Driver))
		status, err := svc.CheckCache(ctx)
		if err != nil {
			logg.Error("Cache check failed", zap.Error(err))
		} else if status.Healthy() {
			logg.Info("Manifest cache is current.", zap.String("version", status.CachedVersion))
		} else {
			logg.Warn("Manifest cache is stale or incomplete",
				zap.String("remote_version", status.RemoteVersion),
				zap.String("cached_version", status.CachedVersion),
				zap.Strings("missing", status.Missing))

			if fix {
				logg.Info("Repairing manifest cache...")
				if err := svc.RepairCache(ctx); err != nil {
					logg.Fatal("Failed to repair cache", zap.Error(err))
				}
				logg.Info("Manifest cache repaired.", zap.String("version", deps.manifest.Version()))
			} else {
				logg.Info("Run with --fix to re-download the manifest.")
			}
		}
	}

	if runStorage {
		logg.Info("Checking cache bucket...", zap.String("bucket", deps.cfg.Storage.Bucket))
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			logg.Error("Storage check failed", zap.Error(err))
		} else if report.Exists && len(report.Missing) == 0 {
			logg.Info("Cache bucket is intact.", zap.Any("objects", report.Objects))
		} else {
			logg.Warn("Cache bucket incomplete",
				zap.Bool("exists", report.Exists),
				zap.Strings("missing", report.Missing))

			if fix && !report.Exists {
				if err := svc.FixStorage(ctx); err != nil {
					logg.Fatal("Failed to create bucket", zap.Error(err))
				}
				logg.Info("Bucket created.")
			} else if !report.Exists {
				logg.Info("Run with --fix to create the bucket.")
			}
		}
	}

	if runSchema {
		logg.Info("Checking cache table schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
			return
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
		if report.Matched {
			logg.Info("Cache table matches expected definition.", zap.String("table", report.Table))
			return
		}
		logg.Warn("Missing Columns", zap.String("table", report.Table), zap.Strings("columns", report.MissingColumns))
		if fix {
			if err := svc.FixSchema(ctx); err != nil {
				logg.Fatal("Failed to migrate cache table", zap.Error(err))
			}
			logg.Info("Cache table migrated.")
		} else {
			logg.Info("Run with --fix to migrate the cache table.")
		}
	}
}
