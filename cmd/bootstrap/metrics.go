package bootstrap

import (
	"court-reservation/internal/pkg/config"
	"court-reservation/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

func NewMetrics(cfg config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return metrics.NewNop()
	}
	return metrics.New(cfg.Metrics.Namespace)
}
