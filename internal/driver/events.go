package driver

import "time"

// Stage describes a high-level compilation phase.
type Stage string

const (
	// StageResolve is configuration and target resolution.
	StageResolve Stage = "resolve"
	// StagePasses is one-time target pass registration.
	StagePasses Stage = "passes"
	// StageCompile is per-module pipeline execution.
	StageCompile Stage = "compile"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the module is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the module is being compiled.
	StatusWorking Status = "working"
	// StatusDone indicates the module finished.
	StatusDone Status = "done"
	// StatusError indicates the module failed.
	StatusError Status = "error"
)

// Event reports progress for a module (or for the overall run when Module
// is empty).
type Event struct {
	Module  string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// NopSink discards events.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}
