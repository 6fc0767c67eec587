package walletmonitor

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/walletmonitor/internal/walletmonitor"

type metrics struct {
	walletsChecked       metric.Int64Counter
	walletsFailed        metric.Int64Counter
	newTransactions      metric.Int64Counter
	notificationFailures metric.Int64Counter
	degradedCategories   metric.Int64Counter
	cycleDuration        metric.Float64Histogram
}

// counter falls back to a no-op instrument when the provider rejects the definition.
func counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		c, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter(name)
	}
	return c
}

func newMetrics(mp metric.MeterProvider) *metrics {
	meter := mp.Meter(instrumentationName)

	duration, err := meter.Float64Histogram("walletmonitor.cycle.duration",
		metric.WithDescription("Duration of one wallet check cycle"),
		metric.WithUnit("s"),
	)
	if err != nil {
		duration, _ = noop.NewMeterProvider().Meter(instrumentationName).Float64Histogram("walletmonitor.cycle.duration")
	}

	return &metrics{
		walletsChecked:       counter(meter, "walletmonitor.wallets.checked", "Wallet cycles attempted"),
		walletsFailed:        counter(meter, "walletmonitor.wallets.failed", "Wallet cycles aborted by an error"),
		newTransactions:      counter(meter, "walletmonitor.transactions.new", "Inbound transactions stored for the first time"),
		notificationFailures: counter(meter, "walletmonitor.notifications.failed", "Notifications that could not be stored"),
		degradedCategories:   counter(meter, "walletmonitor.fetch.degraded", "Transfer categories degraded to empty"),
		cycleDuration:        duration,
	}
}

func defaultMeterProvider() metric.MeterProvider {
	return otel.GetMeterProvider()
}

func defaultTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
