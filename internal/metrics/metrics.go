package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RefreshSuccessTotal prometheus.Counter
	RefreshFailureTotal prometheus.Counter
	RatesAppliedTotal   prometheus.Counter
	ConversionsTotal    prometheus.Counter
	LastRefreshUnixTime prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RefreshSuccessTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_refresh_success_total",
				Help: "Total number of successful rate refresh cycles",
			},
		),

		RefreshFailureTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_refresh_failure_total",
				Help: "Total number of failed rate refresh cycles",
			},
		),

		RatesAppliedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rates_applied_total",
				Help: "Total number of individual rate values applied to the table",
			},
		),

		ConversionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Total number of successful currency conversions",
			},
		),

		LastRefreshUnixTime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rates_last_refresh_unix_time",
				Help: "Unix timestamp of the last successful rate batch apply",
			},
		),
	}
}
