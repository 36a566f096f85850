package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"loadout-manager/core/destiny"
	"loadout-manager/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

var (
	membershipType int
	membershipID   string
	accessToken    string
	lookupType     string
	lookupSubType  string
	lookupClass    string
	lookupSlot     string
)

// inventoryCmd represents the inventory command
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Load an account inventory and list its items",
	Long: `Fetches the account snapshot from Bungie.net, assembles it against the manifest
and prints every item, or only the items matching --type, --sub-type, --class and --slot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if membershipID == "" {
			return errors.New("--membership-id is required")
		}
		filters, err := inventoryFilters()
		if err != nil {
			return err
		}

		deps, err := bootstrap()
		if err != nil {
			return err
		}
		defer deps.logger.Sync()

		var token *oauth2.Token
		if accessToken != "" {
			token = &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}
		}

		ref := destiny.AccountRef{MembershipType: membershipType, MembershipID: membershipID}
		svc := inventory.NewService(deps.manifest, deps.remote, deps.logger)
		inv, err := svc.Load(cmd.Context(), ref, token)
		if err != nil {
			return err
		}
		deps.logger.Info("Inventory loaded", zap.Int("items", inv.Len()))

		items := inv.Items()
		if len(filters) > 0 {
			mgr, err := svc.Manager(ref)
			if err != nil {
				return err
			}
			if items, err = mgr.LookupItems(filters...); err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "HASH\tINSTANCE\tNAME\tTYPE\tCLASS\tLOCATION")
		for _, item := range items {
			location := string(item.Source())
			if item.Location != nil {
				location = item.Location.ClassType.String()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
				item.Hash, item.InstanceID(), item.Name, item.ItemType, item.ClassType, location)
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(inventoryCmd)

	inventoryCmd.Flags().IntVar(&membershipType, "membership-type", 3, "Destiny membership type (platform)")
	inventoryCmd.Flags().StringVar(&membershipID, "membership-id", "", "Destiny membership id")
	inventoryCmd.Flags().StringVar(&accessToken, "token", "", "OAuth access token for private inventories")
	inventoryCmd.Flags().StringVar(&lookupType, "type", "", "Only list items of this type")
	inventoryCmd.Flags().StringVar(&lookupSubType, "sub-type", "", "Only list items of this sub type")
	inventoryCmd.Flags().StringVar(&lookupClass, "class", "", "Only list items of this class")
	inventoryCmd.Flags().StringVar(&lookupSlot, "slot", "", "Only list items of this slot")
}

func inventoryFilters() ([]inventory.Filter, error) {
	var filters []inventory.Filter
	if lookupType != "" {
		t, err := destiny.ParseItemType(lookupType)
		if err != nil {
			return nil, err
		}
		filters = append(filters, inventory.ByType(t))
	}
	if lookupSubType != "" {
		t, err := destiny.ParseItemSubType(lookupSubType)
		if err != nil {
			return nil, err
		}
		filters = append(filters, inventory.BySubType(t))
	}
	if lookupClass != "" {
		c, err := destiny.ParseClassType(lookupClass)
		if err != nil {
			return nil, err
		}
		filters = append(filters, inventory.ByClass(c))
	}
	if lookupSlot != "" {
		b, err := destiny.ParseBucket(lookupSlot)
		if err != nil {
			return nil, err
		}
		filters = append(filters, inventory.BySlot(b))
	}
	return filters, nil
}
