// Package pass runs optimization passes over the classes of a loaded dex
// program. Each pass declares a selector predicate; the runner fans the
// class stream out to worker goroutines and hands every matching class to
// the pass.
package pass

import (
	"context"

	"github.com/dexopt/dex"
	"github.com/dexopt/match"
)

type Pass interface {
	// Name identifies the pass in logs and trace spans.
	Name() string
	// Selector returns the predicate deciding which classes the pass
	// visits. The runner shares one predicate value across all workers,
	// so the predicate must be reusable concurrently.
	Selector() match.Predicate[dex.Class]
	// Run processes one selected class.
	Run(ctx context.Context, cls dex.Class) error
}
