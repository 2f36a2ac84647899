package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/inventory"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

// cmdAdmin dispatches the admin console subcommands.
func (a *app) cmdAdmin(ctx context.Context, args []string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: admin inventory|orders|set-status ...")
	}

	inv := inventory.NewService(a.client)

	switch args[0] {
	case "inventory":
		return a.cmdAdminInventory(ctx, inv, args[1:])
	case "orders":
		orders, err := a.history.RefreshAll(ctx)
		if err != nil {
			return err
		}
		printOrders(orders)
		return nil
	case "set-status":
		return a.cmdAdminSetStatus(ctx, args[1:])
	default:
		return fmt.Errorf("unknown admin command %q", args[0])
	}
}

func (a *app) cmdAdminInventory(ctx context.Context, inv *inventory.Service, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: admin inventory list|add|stock|toggle|low-stock|export ...")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("inventory list", flag.ExitOnError)
		category := fs.String("category", "", "base|sauce|cheese|veggie|meat")
		fs.Parse(args[1:])
		cat, err := models.ParseCategory(*category)
		if err != nil {
			return err
		}
		items, err := inv.List(ctx, cat)
		if err != nil {
			return err
		}
		printIngredients(items)
		return nil

	case "add":
		fs := flag.NewFlagSet("inventory add", flag.ExitOnError)
		category := fs.String("category", "", "base|sauce|cheese|veggie|meat")
		name := fs.String("name", "", "item name")
		description := fs.String("description", "", "item description")
		price := fs.Float64("price", 0, "unit price")
		stock := fs.Int("stock", 0, "initial stock")
		threshold := fs.Int("threshold", 0, "restock threshold (0: category default)")
		fs.Parse(args[1:])
		cat, err := models.ParseCategory(*category)
		if err != nil {
			return err
		}
		item, err := inv.Add(ctx, cat, api.CreateIngredientRequest{
			Name:        *name,
			Description: *description,
			Price:       *price,
			Stock:       *stock,
			Threshold:   *threshold,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added %s %q (%s)\n", cat, item.Name, item.ID)
		return nil

	case "stock":
		fs := flag.NewFlagSet("inventory stock", flag.ExitOnError)
		category := fs.String("category", "", "base|sauce|cheese|veggie|meat")
		id := fs.String("id", "", "item id")
		stock := fs.Int("stock", 0, "new stock count")
		threshold := fs.Int("threshold", 0, "new restock threshold")
		fs.Parse(args[1:])
		cat, err := models.ParseCategory(*category)
		if err != nil {
			return err
		}
		item, err := inv.UpdateStock(ctx, cat, *id, *stock, *threshold)
		if err != nil {
			return err
		}
		fmt.Printf("%q now has %d in stock (threshold %d)\n", item.Name, item.Stock, item.Threshold)
		return nil

	case "toggle":
		fs := flag.NewFlagSet("inventory toggle", flag.ExitOnError)
		category := fs.String("category", "", "base|sauce|cheese|veggie|meat")
		id := fs.String("id", "", "item id")
		fs.Parse(args[1:])
		cat, err := models.ParseCategory(*category)
		if err != nil {
			return err
		}
		item, err := inv.Toggle(ctx, cat, *id)
		if err != nil {
			return err
		}
		state := "disabled"
		if item.IsAvailable {
			state = "enabled"
		}
		fmt.Printf("%q is now %s\n", item.Name, state)
		return nil

	case "low-stock":
		report, err := inv.LowStock(ctx)
		if err != nil {
			return err
		}
		empty := true
		for _, category := range models.Categories() {
			for _, item := range report[category] {
				empty = false
				fmt.Printf("%-8s %-22s %d left (threshold %d)\n", category, item.Name, item.Stock, item.Threshold)
			}
		}
		if empty {
			fmt.Println("Nothing is running low.")
		}
		return nil

	case "export":
		fs := flag.NewFlagSet("inventory export", flag.ExitOnError)
		out := fs.String("out", "inventory.xlsx", "output file")
		fs.Parse(args[1:])
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := inv.ExportXLSX(ctx, f); err != nil {
			return err
		}
		fmt.Printf("Inventory exported to %s\n", *out)
		return nil

	default:
		return fmt.Errorf("unknown inventory command %q", args[0])
	}
}

func (a *app) cmdAdminSetStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-status", flag.ExitOnError)
	id := fs.String("id", "", "order id")
	status := fs.String("status", "", "new order status")
	fs.Parse(args)

	parsed, err := models.ParseOrderStatus(*status)
	if err != nil {
		return err
	}
	ord, err := a.history.UpdateStatus(ctx, *id, parsed)
	if err != nil {
		return err
	}
	fmt.Printf("Order %s is now %s.\n", ord.ID, ord.OrderStatus)
	return nil
}

func printIngredients(items []models.Ingredient) {
	if len(items) == 0 {
		fmt.Println("No items.")
		return
	}
	for _, item := range items {
		mark := " "
		if !item.IsAvailable {
			mark = "✗"
		} else if item.LowStock() {
			mark = "!"
		}
		fmt.Printf("%s %-26s ₹%-8.2f stock %-4d threshold %d\n",
			mark, item.Name+" ("+item.ID+")", item.Price, item.Stock, item.Threshold)
	}
}
