package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintball-slug/internal/profile"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Show the upgrade shop",
	Long: `List the upgrades, their prices and which ones the save record owns.
Upgrades are bought with total score banked from finished runs.

Examples:
  slug shop
  slug shop buy extraLife`,
	Args: cobra.NoArgs,
	RunE: runShop,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item>",
	Short: "Buy an upgrade",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopBuy,
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
}

func runShop(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	save, err := store.LoadSave()
	if err != nil {
		return err
	}

	fmt.Printf("Upgrade Shop - total score %d\n\n", save.TotalScore)
	fmt.Printf("  %-16s  %-16s  %6s  %s\n", "ID", "Name", "Price", "")
	fmt.Printf("  %-16s  %-16s  %6s  %s\n", "--", "----", "-----", "")
	for _, it := range profile.Shop {
		status := it.Desc
		switch {
		case save.Upgrades.Owns(it.ID):
			status = "owned"
		case save.CanAfford(it.ID):
			status += " (affordable)"
		}
		fmt.Printf("  %-16s  %-16s  %6d  %s\n", it.ID, it.Name, it.Price, status)
	}
	return nil
}

func runShopBuy(_ *cobra.Command, args []string) error {
	id := profile.ItemID(args[0])

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	save, err := store.LoadSave()
	if err != nil {
		return err
	}

	if err := save.Purchase(id); err != nil {
		if errors.Is(err, profile.ErrUnknownItem) {
			return fmt.Errorf("unknown item %q (run 'slug shop' to list items)", id)
		}
		return err
	}
	save, err = store.WriteSave(save)
	if err != nil {
		return err
	}

	it, _ := profile.Lookup(id)
	fmt.Printf("Bought %s. Total score left: %d\n", it.Name, save.TotalScore)
	return nil
}
