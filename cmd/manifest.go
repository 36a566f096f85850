package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"loadout-manager/core/manifest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// manifestCmd represents the manifest command
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Download or load the Destiny manifest",
	Long:  `Initialises the manifest from the cache when it is current, from Bungie.net otherwise, and prints the loaded components.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := bootstrap()
		if err != nil {
			return err
		}
		defer deps.logger.Sync()

		store, err := deps.manifest.Initialize(cmd.Context())
		if err != nil {
			return err
		}
		printComponents(deps.manifest.Version(), store)
		return nil
	},
}

// manifestStatusCmd represents the manifest status command
var manifestStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Compare the cached manifest with the remote version",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := bootstrap()
		if err != nil {
			return err
		}
		defer deps.logger.Sync()

		status, err := deps.manifest.Status(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Remote version: %s\n", status.RemoteVersion)
		fmt.Printf("Cached version: %s\n", status.CachedVersion)
		fmt.Printf("Current:        %t\n", status.Current)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "COMPONENT\tCACHED\tENTRIES")
		for _, c := range status.Components {
			fmt.Fprintf(w, "%s\t%t\t%d\n", c.Name, c.Cached, c.Entries)
		}
		return w.Flush()
	},
}

// manifestRepairCmd represents the manifest repair command
var manifestRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Clear the cached manifest and download it again",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := bootstrap()
		if err != nil {
			return err
		}
		defer deps.logger.Sync()

		store, err := deps.manifest.Repair(cmd.Context())
		if err != nil {
			return err
		}
		deps.logger.Info("Manifest repaired", zap.String("version", deps.manifest.Version()))
		printComponents(deps.manifest.Version(), store)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(manifestCmd)
	manifestCmd.AddCommand(manifestStatusCmd, manifestRepairCmd)
}

func printComponents(version string, store *manifest.Store) {
	fmt.Printf("Manifest version: %s\n", version)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tENTRIES")
	for _, name := range store.Components() {
		fmt.Fprintf(w, "%s\t%d\n", name, store.Len(name))
	}
	w.Flush()
}
