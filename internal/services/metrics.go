package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DashboardMetrics records dashboard action outcomes for Prometheus.
type DashboardMetrics struct {
	actionsTotal   *prometheus.CounterVec
	refreshesTotal *prometheus.CounterVec
}

// NewDashboardMetrics registers the dashboard metrics with the default
// registry.
func NewDashboardMetrics() *DashboardMetrics {
	return &DashboardMetrics{
		actionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_actions_total",
				Help: "Total number of dashboard actions by type and outcome",
			},
			[]string{"action", "outcome"},
		),
		refreshesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_refreshes_total",
				Help: "Total number of three-view refresh cycles by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// RecordAction counts one user action outcome.
func (m *DashboardMetrics) RecordAction(action, outcome string) {
	if m == nil {
		return
	}
	m.actionsTotal.WithLabelValues(action, outcome).Inc()
}

// RecordRefresh counts one refresh cycle outcome.
func (m *DashboardMetrics) RecordRefresh(outcome string) {
	if m == nil {
		return
	}
	m.refreshesTotal.WithLabelValues(outcome).Inc()
}
