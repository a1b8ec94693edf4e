package dnd

// Session outcomes passed to Recorder.RecordSession.
const (
	OutcomeDropped  = "dropped"
	OutcomeReleased = "released" // pointer-up before any move
	OutcomeAborted  = "aborted"  // unmounted or disabled mid-session
)

// Recorder observes protocol traffic. Implementations must be cheap; they
// run inline with pointer handling.
type Recorder interface {
	RecordEvent(key, event string)
	RecordSession(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordEvent(string, string) {}
func (nopRecorder) RecordSession(string)       {}
