package metrics

import (
	"time"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// FRCMetrics exports the FRC use case counters to Prometheus.
type FRCMetrics struct {
	reconciliations   *prometheus.CounterVec
	reconcileDuration prometheus.Histogram
	decisions         *prometheus.CounterVec
	conflicts         prometheus.Counter
	auditFailures     prometheus.Counter
}

var _ interfaces.IFRCMetrics = (*FRCMetrics)(nil)

// NewFRCMetrics registers the collectors on reg.
func NewFRCMetrics(reg prometheus.Registerer) *FRCMetrics {
	m := &FRCMetrics{
		reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frc",
			Name:      "reconciliations_total",
			Help:      "Reconciliation runs by outcome.",
		}, []string{"outcome"}),
		reconcileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "frc",
			Name:      "reconciliation_duration_seconds",
			Help:      "Time spent seeding and reconciling one assessment.",
			Buckets:   prometheus.DefBuckets,
		}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frc",
			Name:      "decisions_recorded_total",
			Help:      "Decisions recorded by status.",
		}, []string{"status"}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frc",
			Name:      "decision_conflicts_total",
			Help:      "Decision writes rejected by the version check.",
		}),
		auditFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frc",
			Name:      "audit_publish_failures_total",
			Help:      "Audit events that could not be delivered.",
		}),
	}
	reg.MustRegister(m.reconciliations, m.reconcileDuration, m.decisions, m.conflicts, m.auditFailures)
	return m
}

func (m *FRCMetrics) ObserveReconciliation(d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.reconciliations.WithLabelValues(outcome).Inc()
	m.reconcileDuration.Observe(d.Seconds())
}

func (m *FRCMetrics) DecisionRecorded(status entities.DecisionStatus) {
	m.decisions.WithLabelValues(string(status)).Inc()
}

func (m *FRCMetrics) DecisionConflict() { m.conflicts.Inc() }

func (m *FRCMetrics) AuditPublishFailed() { m.auditFailures.Inc() }
