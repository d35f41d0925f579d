package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/solid/dip"
)

// fetch [--delay d]: wire a consumer to a provider chosen at the edge.
func fetchCmd() *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Wire a consumer to a data provider by constructor injection (dip)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The provider is chosen here, at the composition root — the
			// consumer never learns which one it got.
			var provider dip.DataProvider = dip.NewStaticProvider("alpha", "beta", "gamma")
			if delay > 0 {
				provider = dip.NewDelayProvider(delay, dip.WithLogger(log))
			}

			consumer, err := dip.NewConsumer(provider, dip.WithLogger(log))
			if err != nil {
				return err
			}
			if err = consumer.ProcessData(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("processed %d batch(es)\n", consumer.Processed())

			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "simulate a slow remote provider (e.g. 500ms)")

	return cmd
}
