package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// RegisterKernelState exports a gauge that is 1 while running reports true.
func RegisterKernelState(meterProvider metric.MeterProvider, namespace string, running func() bool) error {
	meter := meterProvider.Meter(namespace)

	_, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_kernel_running", namespace),
		metric.WithDescription("Whether the service kernel is running"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			var v int64
			if running() {
				v = 1
			}
			o.Observe(v)
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create kernel state gauge: %w", err)
	}
	return nil
}
