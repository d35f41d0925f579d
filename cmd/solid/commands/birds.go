package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/solid/lsp"
)

// birds: migrate a flock of flyers, then show the legacy contract failing.
func birdsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "birds",
		Short: "Migrate a flock over the narrow Flyer capability (lsp)",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range lsp.Migrate(lsp.Sparrow{}, lsp.Eagle{}) {
				fmt.Printf("flight: %.0fm at %.0fkm/h\n", f.AltitudeMeters, f.SpeedKmh)
			}
			fmt.Printf("penguin dives to %.0fm instead\n", lsp.Penguin{}.Swim().DepthMeters)

			// The legacy contract accepts the penguin and fails at run time.
			if _, err := lsp.LegacyMigrate(lsp.LegacySparrow{}, lsp.LegacyPenguin{}); errors.Is(err, lsp.ErrFlightNotSupported) {
				fmt.Println("legacy flock failed:", err)
			}

			return nil
		},
	}
}
