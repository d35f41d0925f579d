package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/solid/srp"
)

// invoice [--save dir]: build, total, render and optionally persist an invoice.
func invoiceCmd() *cobra.Command {
	var saveDir string

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Build, render and persist an invoice through separated responsibilities (srp)",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := srp.NewInvoice("ACME Corp",
				srp.LineItem{Description: "widget", UnitCents: 350, Quantity: 2},
				srp.LineItem{Description: "gizmo", UnitCents: 1000, Quantity: 1},
			)
			if err != nil {
				return err
			}
			if inv, err = inv.WithRates(0.10, 0.05); err != nil {
				return err
			}

			doc, err := srp.Renderer{}.Render(inv)
			if err != nil {
				return err
			}
			fmt.Print(doc)

			if saveDir != "" {
				repo, repoErr := srp.NewFileRepository(saveDir)
				if repoErr != nil {
					return repoErr
				}
				if err = repo.Save(inv); err != nil {
					return err
				}
				log.Info("invoice saved", zap.String("dir", saveDir), zap.String("id", inv.ID.String()))
				fmt.Printf("saved to %s\n", saveDir)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&saveDir, "save", "", "directory to persist the invoice into (file repository)")

	return cmd
}
