package metrics

import "github.com/prometheus/client_golang/prometheus"

var IndicatorValueMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "quantstream_indicator_value",
		Help: "current indicator reading",
	}, []string{"symbol", "interval", "indicator"})

var IndicatorUpdatesMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "quantstream_indicator_updates_total",
		Help: "number of bar updates folded into an indicator",
	}, []string{"symbol", "interval", "indicator"})

var StreamReconnectsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "quantstream_stream_reconnects_total",
		Help: "number of websocket stream reconnections",
	}, []string{"symbol"})

func init() {
	prometheus.MustRegister(
		IndicatorValueMetrics,
		IndicatorUpdatesMetrics,
		StreamReconnectsMetrics,
	)
}
