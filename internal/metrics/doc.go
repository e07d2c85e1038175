// Package metrics provides scan metrics for the link checker.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so the checker never needs nil checks:
//
//	checker := linkcheck.NewChecker(linkcheck.Options{
//	    Recorder: metrics.NewPrometheusRecorder(reg),
//	})
//
// PrometheusRecorder registers its collectors on a caller-supplied registry.
// WriteTextfile renders a gatherer in the text exposition format so a CI job
// can hand the result to a node_exporter textfile collector.
package metrics
