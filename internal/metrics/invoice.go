package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

var (
	invoiceGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txinvoice",
		Subsystem: "invoice",
		Name:      "generated_total",
		Help:      "Count of invoice documents rendered.",
	}, []string{"network", "status"})

	invoiceVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txinvoice",
		Subsystem: "invoice",
		Name:      "verifications_total",
		Help:      "Count of invoice verifications by outcome.",
	}, []string{"network", "outcome"})

	invoiceVerificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txinvoice",
		Subsystem: "invoice",
		Name:      "verification_duration_seconds",
		Help:      "Duration of invoice verifications, node lookup included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "outcome"})
)

// Invoice records invoice generation and verification outcomes.
type Invoice struct{}

func NewInvoice() *Invoice {
	return &Invoice{}
}

func (m Invoice) ObserveGenerate(network model.NetworkID, err error) {
	invoiceGeneratedTotal.WithLabelValues(networkLabel(network), statusOf(err)).Inc()
}

func (m Invoice) ObserveVerify(network model.NetworkID, outcome string, started time.Time) {
	label := networkLabel(network)
	invoiceVerificationsTotal.WithLabelValues(label, outcome).Inc()
	invoiceVerificationDuration.WithLabelValues(label, outcome).Observe(time.Since(started).Seconds())
}

func networkLabel(network model.NetworkID) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
