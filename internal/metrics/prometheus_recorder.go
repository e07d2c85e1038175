package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	filesScanned prom.Counter
	links        *prom.CounterVec
	scanDuration prom.Histogram
	brokenLinks  prom.Gauge
}

// NewPrometheusRecorder constructs and registers the scan metrics on reg.
// A nil registry gets a private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		filesScanned: prom.NewCounter(prom.CounterOpts{
			Namespace: "linkcheck",
			Name:      "files_scanned_total",
			Help:      "Markdown and quarto files scanned for links",
		}),
		links: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "linkcheck",
			Name:      "links_total",
			Help:      "Extracted links by check result",
		}, []string{"result"}),
		scanDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "linkcheck",
			Name:      "scan_duration_seconds",
			Help:      "Duration of a full directory scan",
			Buckets:   prom.DefBuckets,
		}),
		brokenLinks: prom.NewGauge(prom.GaugeOpts{
			Namespace: "linkcheck",
			Name:      "broken_links",
			Help:      "Broken links found by the last scan",
		}),
	}
	reg.MustRegister(pr.filesScanned, pr.links, pr.scanDuration, pr.brokenLinks)
	return pr
}

func (p *PrometheusRecorder) IncFilesScanned() {
	if p == nil {
		return
	}
	p.filesScanned.Inc()
}

func (p *PrometheusRecorder) IncLinkResult(result LinkResult) {
	if p == nil {
		return
	}
	p.links.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveScanDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.scanDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetBrokenLinks(n int) {
	if p == nil {
		return
	}
	p.brokenLinks.Set(float64(n))
}
