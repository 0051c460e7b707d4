// Command districtroute answers shortest-route questions over a district road
// network: one route, single-source distances, or every ordered pair.
//
// Usage:
//
//	districtroute route Mchinji Dowa
//	districtroute all-pairs --format json
//	districtroute distances Lilongwe --dataset roads.yaml
//	districtroute graph
//	districtroute components
//	districtroute backbone
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
