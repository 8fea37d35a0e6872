package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Bookings persisted by the submission pipeline.",
	})

	SubmissionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_submission_failures_total",
		Help:      "Rejected or failed booking submissions.",
	}, []string{"reason"})

	AvailabilityDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_degraded_total",
		Help:      "Slot queries answered by the failure policy instead of storage.",
	})

	StaleSlotResponses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_stale_responses_total",
		Help:      "Slot responses discarded because a newer query was issued.",
	})

	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Confirmation notifications that were dropped or failed.",
	}, []string{"reason"})
)
