// Package metrics exposes Prometheus instrumentation for the vectorgate
// clients: a per-operation counter and latency histogram, served from an
// isolated registry on a /metrics HTTP endpoint.
//
// The registry is private to the instance so two services in one process
// never collide on metric names; all metrics carry a constant "service"
// label for aggregation.
//
// Usage:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "vectorgate"})
//	defer m.Server.Close()
//	go m.Server.ListenAndServe()
//
//	start := time.Now()
//	err := store.Upsert(ctx, "articles", points)
//	m.ObserveOperation(start, "upsert")
//	m.IncOperation("upsert", metrics.StatusFromError(err))
//
// The FXModule starts and stops the HTTP server with the application
// lifecycle.
package metrics
