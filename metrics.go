package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

type metrics struct {
	lastSyncTimestamp  prometheus.Gauge
	stacksTotal        prometheus.Gauge
	desiredStacksTotal prometheus.Gauge
	problemsTotal      prometheus.Gauge
	changesTotal       changeCounter
}

func newMetrics() *metrics {
	return &metrics{
		lastSyncTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cfn_pipes",
				Subsystem: "controller",
				Name:      "last_sync_timestamp_seconds",
				Help:      "Timestamp of the last successful controller reconciliation run",
			},
		),
		stacksTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cfn_pipes",
				Subsystem: "controller",
				Name:      "stacks_total",
				Help:      "Number of managed Cloud Formation stacks",
			},
		),
		desiredStacksTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cfn_pipes",
				Subsystem: "controller",
				Name:      "desired_stacks_total",
				Help:      "Number of configured stack definitions",
			},
		),
		problemsTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cfn_pipes",
				Subsystem: "controller",
				Name:      "problems_total",
				Help:      "Number of problems noted in the last reconciliation run",
			},
		),
		changesTotal: changeCounter{prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cfn_pipes",
				Subsystem: "controller",
				Name:      "changes_total",
				Help:      "Number of Cloud Formation stack changes",
			},
			[]string{"kind", "operation"},
		)},
	}
}

type changeCounter struct {
	*prometheus.CounterVec
}

func (c changeCounter) created(kind string) {
	c.WithLabelValues(kind, "create").Inc()
}

func (c changeCounter) updated(kind string) {
	c.WithLabelValues(kind, "update").Inc()
}

func (c changeCounter) deleted(kind string) {
	c.WithLabelValues(kind, "delete").Inc()
}

func (metrics *metrics) register(registerer prometheus.Registerer) {
	registerer.MustRegister(metrics.lastSyncTimestamp)
	registerer.MustRegister(metrics.stacksTotal)
	registerer.MustRegister(metrics.desiredStacksTotal)
	registerer.MustRegister(metrics.problemsTotal)
	registerer.MustRegister(metrics.changesTotal)
}

func (metrics *metrics) serve(address string) {
	metrics.register(prometheus.DefaultRegisterer)

	http.Handle("/metrics", promhttp.Handler())
	log.Fatal(http.ListenAndServe(address, nil))
}
