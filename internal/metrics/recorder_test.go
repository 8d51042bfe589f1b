package metrics

import (
	"testing"
	"time"
)

// Compile-time interface checks.
var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncLoad(ResultSuccess)
	r.ObserveLoadDuration(time.Millisecond)
	r.IncHeaderCreated()
	r.IncValidationFailure()
	r.IncConfigWrite("yaml")
}
