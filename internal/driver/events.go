package driver

import "time"

// Stage is the step a file is in while grit checks it.
type Stage string

const (
	StageLoad   Stage = "load"
	StageParse  Stage = "parse"
	StageLint   Stage = "lint"
	StageVerify Stage = "verify" // tree invariant checks
)

// Status is the state of a file inside its stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Finished reports whether no further events follow for the file.
func (s Status) Finished() bool { return s == StatusDone || s == StatusError }

// Event reports progress of one file; an empty File means the whole run.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. CheckFiles calls it from its
// workers, so it must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink sends events to Ch; a nil Ch drops them.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch != nil {
		s.Ch <- evt
	}
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(evt Event) { f(evt) }

var nopSink = SinkFunc(func(Event) {})
