package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sitedesk/sitedesk/internal/cli/formatter"
	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/spf13/cobra"
)

func parseMaterialIndex(input string) (int, error) {
	i, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid material index %q", input)
	}
	return i, nil
}

func newMaterialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Manage the inventory",
	}

	cmd.AddCommand(
		newMaterialAddCmd(app),
		newMaterialListCmd(app),
		newMaterialToggleCmd(app),
		newMaterialQuantityCmd(app),
	)

	return cmd
}

func newMaterialAddCmd(app *App) *cobra.Command {
	var name string
	var quantity int
	var out bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a material",
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.StockIn
			if out {
				status = domain.StockOut
			}
			m := domain.Material{Name: name, Quantity: quantity, Status: status}
			if err := app.Materials.Add(context.Background(), m); err != nil {
				return err
			}
			fmt.Printf("Added material %s (%d units)\n", name, quantity)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Material name")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Quantity on hand")
	cmd.Flags().BoolVar(&out, "out", false, "Mark as out of stock")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMaterialListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			materials := app.Materials.List(context.Background())

			rows := make([][]string, 0, len(materials))
			for i, m := range materials {
				rows = append(rows, []string{
					strconv.Itoa(i),
					m.Name,
					strconv.Itoa(m.Quantity),
					formatter.StockBadge(m.Status),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"#", "NAME", "QTY", "STATUS"}, rows))
			return nil
		},
	}
}

func newMaterialToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle INDEX",
		Short: "Flip a material between In Stock and Out of Stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseMaterialIndex(args[0])
			if err != nil {
				return err
			}
			if err := app.Materials.ToggleStatus(context.Background(), i); err != nil {
				return err
			}
			fmt.Printf("Toggled material %d\n", i)
			return nil
		},
	}
}

func newMaterialQuantityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quantity INDEX QTY",
		Short: "Set a material's quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseMaterialIndex(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if err := app.Materials.SetQuantity(context.Background(), i, qty); err != nil {
				return err
			}
			fmt.Printf("Set material %d quantity to %d\n", i, qty)
			return nil
		},
	}
}
