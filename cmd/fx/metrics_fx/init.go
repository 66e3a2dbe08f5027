package metrics_fx

import (
	"go.uber.org/fx"

	"clausemap/internal/metrics"
)

var Module = fx.Provide(metrics.New)
