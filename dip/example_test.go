package dip_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/solid/dip"
)

// ExampleNewConsumer demonstrates constructor injection: the same consumer
// code runs against two different providers, chosen at wiring time.
func ExampleNewConsumer() {
	// 1) Wire a consumer to an in-memory provider.
	static, err := dip.NewConsumer(dip.NewStaticProvider("alpha", "beta"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Wire a second consumer — same type — to a slow remote simulation.
	remote, err := dip.NewConsumer(dip.NewDelayProvider(time.Millisecond))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Both process through the same abstraction.
	ctx := context.Background()
	_ = static.ProcessData(ctx)
	_ = remote.ProcessData(ctx)

	fmt.Printf("static processed: %d\n", static.Processed())
	fmt.Printf("remote processed: %d\n", remote.Processed())
	// Output:
	// static processed: 1
	// remote processed: 1
}

// ExampleNewConsumer_nilProvider demonstrates the fail-fast configuration
// error: a consumer without a provider is a wiring bug, caught immediately.
func ExampleNewConsumer_nilProvider() {
	if _, err := dip.NewConsumer(nil); err != nil {
		fmt.Println("error:", err)
	}
	// Output: error: dip: data provider is nil
}
