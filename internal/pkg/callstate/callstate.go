// Package callstate models the lifecycle of a voice call as a pure reducer
// over the events emitted by the voice service.
package callstate

// Status is the state of a single call.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusConnecting Status = "connecting"
	StatusConnected  Status = "connected"
	StatusSpeaking   Status = "speaking"
	StatusListening  Status = "listening"
	StatusEnded      Status = "ended"
)

// Event is a named lifecycle notification from the voice service.
type Event string

const (
	EventStartRequested Event = "start-requested"
	EventCallStart      Event = "call-start"
	EventSpeechStart    Event = "speech-start"
	EventSpeechEnd      Event = "speech-end"
	EventCallEnd        Event = "call-end"
	EventError          Event = "error"
	EventReset          Event = "reset"
	EventVolumeLevel    Event = "volume-level"
	EventMessage        Event = "message"
)

// ParseEvent maps a wire event name to an Event. "call-ended" is accepted as
// an alias of call-end.
func ParseEvent(name string) (Event, bool) {
	switch Event(name) {
	case EventStartRequested, EventCallStart, EventSpeechStart, EventSpeechEnd,
		EventCallEnd, EventError, EventReset, EventVolumeLevel, EventMessage:
		return Event(name), true
	}
	if name == "call-ended" {
		return EventCallEnd, true
	}
	return "", false
}

// InCall reports whether the status belongs to a live call.
func (s Status) InCall() bool {
	return s == StatusConnected || s == StatusSpeaking || s == StatusListening
}

// Reduce returns the status that follows s after ev. Events that do not
// apply in s leave it unchanged.
func Reduce(s Status, ev Event) Status {
	switch ev {
	case EventError, EventReset:
		return StatusIdle
	case EventStartRequested:
		if s == StatusIdle || s == StatusEnded {
			return StatusConnecting
		}
	case EventCallStart:
		if s == StatusIdle || s == StatusConnecting || s == StatusEnded {
			return StatusConnected
		}
	case EventSpeechStart:
		if s.InCall() {
			return StatusSpeaking
		}
	case EventSpeechEnd:
		if s.InCall() {
			return StatusListening
		}
	case EventCallEnd:
		if s != StatusIdle {
			return StatusEnded
		}
	}
	return s
}
