package metrics

import "time"

// ResultLabel enumerates load result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for configuration loads and engine config
// writes. Implementations may forward to Prometheus or do nothing.
type Recorder interface {
	IncLoad(result ResultLabel)
	ObserveLoadDuration(d time.Duration)
	IncHeaderCreated()
	IncValidationFailure()
	IncConfigWrite(format string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncLoad(ResultLabel) {}
func (NoopRecorder) ObserveLoadDuration(time.Duration) {}
func (NoopRecorder) IncHeaderCreated() {}
func (NoopRecorder) IncValidationFailure() {}
func (NoopRecorder) IncConfigWrite(string) {}
