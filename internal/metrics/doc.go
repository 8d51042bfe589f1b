// Package metrics provides the observability hooks for siteconf.
//
// Components receive a Recorder through their options and default to NoopRecorder,
// so metrics cost nothing unless a PrometheusRecorder is injected:
//
//	reg := prometheus.NewRegistry()
//	cfg, err := config.Load(ctx, config.LoadOptions{Recorder: metrics.NewPrometheusRecorder(reg)})
//
// HTTPHandler exposes a registry for scraping; the watch command mounts it on /metrics.
package metrics
