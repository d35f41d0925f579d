package isp_test

import (
	"fmt"

	"github.com/katalvlaran/solid/isp"
)

// ExamplePrintAll demonstrates driving two very different devices through
// the one narrow capability the caller actually needs.
func ExamplePrintAll() {
	// 1) A compact printer prints; it has no scan or fax operations at all.
	compact := &isp.CompactPrinter{}
	if err := isp.PrintAll(compact, isp.Document{Title: "memo", Pages: 1}); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) A multi-function device prints through the same entry point.
	mfd := isp.NewMultiFunctionDevice()
	if err := isp.PrintAll(mfd, isp.Document{Title: "report", Pages: 12}); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(compact.Journal()[0])
	fmt.Println(mfd.Journal()[0])
	// Output:
	// print "memo" (1 pages)
	// print "report" (12 pages)
}

// ExampleDotMatrix demonstrates the fat-contract failure mode: operations
// the device was forced to expose can only fail.
func ExampleDotMatrix() {
	dm := &isp.DotMatrix{}
	if _, err := dm.Scan(); err != nil {
		fmt.Println("error:", err)
	}
	// Output: error: isp: scan not supported
}
