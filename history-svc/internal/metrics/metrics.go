package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsProcessed = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "foodvoice_history_events_total",
		Help: "Order events handled by the history consumer, by result",
	},
	[]string{"result"},
)
