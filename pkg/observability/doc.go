/*
Package observability provides lifecycle hooks for monitoring simulation runs.

It includes structured logging of run and trial boundaries, Prometheus metrics
for trials, steps and state visits, and a helper to combine several hook sets
into one.

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	hooks := observability.Combine(observability.LoggingHooks(logger), metrics.Hooks())
*/
package observability
