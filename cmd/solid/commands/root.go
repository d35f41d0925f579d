package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	log     *zap.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "solid",
		Short: "Runnable demonstrations of the five SOLID design principles",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				log = l
			} else {
				log = zap.NewNop()
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each step (zap development output)")

	root.AddCommand(invoiceCmd(), shapesCmd(), birdsCmd(), devicesCmd(), fetchCmd())

	return root.Execute()
}
