package signals

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/krew-solutions/ascetic-signals-go/asceticddd/signals"

type metrics struct {
	subscribed   metric.Int64Counter
	unsubscribed metric.Int64Counter
	triggered    metric.Int64Counter
	delivered    metric.Int64Counter
	skipped      metric.Int64Counter
}

func newMetrics(mp metric.MeterProvider) *metrics {
	meter := mp.Meter(instrumentationName)
	return &metrics{
		subscribed:   counter(meter, "signals.subscribed", "Total number of listeners subscribed"),
		unsubscribed: counter(meter, "signals.unsubscribed", "Total number of listeners removed"),
		triggered:    counter(meter, "signals.triggered", "Total number of signals triggered"),
		delivered:    counter(meter, "signals.delivered", "Total number of payloads delivered to listeners"),
		skipped:      counter(meter, "signals.skipped", "Total number of listeners skipped on payload type mismatch"),
	}
}

func counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func (m *metrics) add(c metric.Int64Counter, name string, n int) {
	if n <= 0 {
		return
	}
	c.Add(context.Background(), int64(n), metric.WithAttributes(attribute.String("signal", name)))
}
