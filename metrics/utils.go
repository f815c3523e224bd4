package metrics

import "time"

// Outcome labels applied to the operation counter.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// IncOperation increments the operation counter for the given operation
// name and outcome label.
func (m *Metrics) IncOperation(operation, status string) {
	m.operationsTotal.WithLabelValues(operation, status).Inc()
}

// ObserveOperation records the elapsed time since start for an operation.
func (m *Metrics) ObserveOperation(start time.Time, operation string) {
	m.operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// StatusFromError maps an operation result to the counter's status label.
func StatusFromError(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
