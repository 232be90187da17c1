package metrics

import "github.com/DukeRupert/pagekit/internal/pagination"

// PlanComputed records a successfully computed plan.
func PlanComputed(profile string, plan *pagination.Plan) {
	PlansTotal.WithLabelValues(profile, "ok").Inc()
	PlanTotalPages.Observe(float64(plan.TotalPages))
	if plan.Window != nil {
		PlanWindowPages.Observe(float64(plan.Window.Len()))
	}
}

// PlanRejected records a plan request that failed validation
func PlanRejected(profile string) {
	PlansTotal.WithLabelValues(profile, "invalid").Inc()
}

// AlertQueued records an alert push
func AlertQueued(style string) {
	AlertsQueued.WithLabelValues(style).Inc()
}
