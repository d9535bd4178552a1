package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for Provisions.
const (
	OutcomeCreated      = "created"
	OutcomeUnauthorized = "unauthorized"
	OutcomeInvalid      = "invalid"
	OutcomeFailed       = "failed"
	OutcomeOrphaned     = "orphaned"
)

var (
	Provisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "staff_provision_requests_total",
		Help: "Staff provisioning requests by outcome",
	}, []string{"outcome"})

	ProvisionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "staff_provision_duration_seconds",
		Help:    "Time spent in identity creation plus profile insert",
		Buckets: prometheus.DefBuckets,
	})
)

// Register registers the service metrics on reg (or the default registry if nil).
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{Provisions, ProvisionDuration} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
