package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lavanderia"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	GarmentTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "garment_transitions_total",
		Help:      "Garment status changes by origin status, target status and trigger.",
	}, []string{"from", "to", "trigger"})

	TagsScannedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rfid_tags_scanned_total",
		Help:      "Tags reported by the RFID reader, by scan mode.",
	}, []string{"mode"})

	IntakeConfirmationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intake_confirmations_total",
		Help:      "Intake sessions committed.",
	})

	GarmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "garments_created_total",
		Help:      "Garments registered through intake.",
	})

	BatchesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batches_completed_total",
		Help:      "Batches marked ready.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Notification sink errors (not retried).",
	})

	DelayedGarments = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "delayed_garments",
		Help:      "Garments over the delay threshold at the last alert evaluation.",
	})
)
