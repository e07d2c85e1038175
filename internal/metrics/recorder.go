package metrics

import "time"

// LinkResult enumerates per-link outcomes for counters.
type LinkResult string

const (
	LinkOK      LinkResult = "ok"
	LinkBroken  LinkResult = "broken"
	LinkSkipped LinkResult = "skipped"
)

// Recorder defines observability hooks for a link scan.
type Recorder interface {
	IncFilesScanned()
	IncLinkResult(result LinkResult)
	ObserveScanDuration(d time.Duration)
	SetBrokenLinks(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncFilesScanned()                  {}
func (NoopRecorder) IncLinkResult(LinkResult)          {}
func (NoopRecorder) ObserveScanDuration(time.Duration) {}
func (NoopRecorder) SetBrokenLinks(int)                {}
