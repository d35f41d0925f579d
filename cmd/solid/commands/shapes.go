package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/solid/ocp"
)

// shapes [--catalog file.yaml]: sum shape areas polymorphically.
func shapesCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Sum shape areas through the Shape capability (ocp)",
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes := []ocp.Shape{
				ocp.Circle{Radius: 2},
				ocp.Square{Side: 3},
			}

			if catalogPath != "" {
				data, err := os.ReadFile(catalogPath)
				if err != nil {
					return err
				}
				shapes, err = ocp.ParseCatalog(data)
				if err != nil {
					return err
				}
				log.Info("catalog loaded", zap.String("path", catalogPath), zap.Int("shapes", len(shapes)))
			}

			for _, s := range shapes {
				fmt.Printf("%-10s %10.3f\n", s.Kind(), s.Area())
			}
			fmt.Printf("%-10s %10.3f\n", "total", ocp.SumAreas(shapes...))

			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML shape catalog to load instead of the built-in demo set")

	return cmd
}
