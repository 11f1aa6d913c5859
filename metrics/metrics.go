package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var CatalogSizeGauge = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "dojo_catalog_techniques",
		Help: "Number of techniques in the live catalog snapshot",
	},
)

var CatalogVersionGauge = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "dojo_catalog_version",
		Help: "Version of the live catalog snapshot",
	},
)

var CatalogReloadCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dojo_catalog_reloads_total",
	Help: "Catalog reload attempts by result",
}, []string{"result"})

var CatalogValidationWarnings = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "dojo_catalog_validation_warnings",
	Help: "Warnings reported by the last accepted catalog validation",
})

var TechniqueQueryCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dojo_technique_queries_total",
	Help: "The total number of technique queries by operation",
}, []string{"operation"})

var TechniqueQueryResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dojo_technique_query_results",
	Help:    "Number of techniques returned per query",
	Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
}, []string{"operation"})

var StreamConnectionsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "dojo_catalog_stream_connections",
	Help: "Open websocket connections receiving catalog updates",
})
