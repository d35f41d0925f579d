package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/solid/isp"
)

// devices: drive compact and multi-function devices through narrow capabilities.
func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "Drive printers through segregated device capabilities (isp)",
		RunE: func(cmd *cobra.Command, args []string) error {
			memo := isp.Document{Title: "memo", Pages: 1}

			compact := &isp.CompactPrinter{}
			mfd := isp.NewMultiFunctionDevice(isp.Document{Title: "contract", Pages: 4})
			if err := isp.PrintAll(compact, memo); err != nil {
				return err
			}
			if err := isp.PrintAll(mfd, memo); err != nil {
				return err
			}

			scanned, err := mfd.Scan()
			if err != nil {
				return err
			}
			if err = mfd.Fax(scanned, "+1-555-0100"); err != nil {
				return err
			}

			for _, entry := range append(compact.Journal(), mfd.Journal()...) {
				fmt.Println(entry)
			}

			// The fat legacy contract can only fail where a capability is absent.
			if _, err = (&isp.DotMatrix{}).Scan(); errors.Is(err, isp.ErrScanNotSupported) {
				fmt.Println("legacy workstation failed:", err)
			}

			return nil
		},
	}
}
