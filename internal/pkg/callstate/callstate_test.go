package callstate

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		from Status
		ev   Event
		want Status
	}{
		{"start from idle", StatusIdle, EventStartRequested, StatusConnecting},
		{"connected", StatusConnecting, EventCallStart, StatusConnected},
		{"speaking", StatusConnected, EventSpeechStart, StatusSpeaking},
		{"listening", StatusSpeaking, EventSpeechEnd, StatusListening},
		{"speaking again", StatusListening, EventSpeechStart, StatusSpeaking},
		{"ended", StatusListening, EventCallEnd, StatusEnded},
		{"error resets", StatusSpeaking, EventError, StatusIdle},
		{"reset after end", StatusEnded, EventReset, StatusIdle},
		{"speech before connect ignored", StatusConnecting, EventSpeechStart, StatusConnecting},
		{"end while idle ignored", StatusIdle, EventCallEnd, StatusIdle},
		{"volume ignored", StatusSpeaking, EventVolumeLevel, StatusSpeaking},
		{"message ignored", StatusListening, EventMessage, StatusListening},
		{"double start ignored", StatusConnected, EventStartRequested, StatusConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(tt.from, tt.ev); got != tt.want {
				t.Errorf("Reduce(%s, %s) = %s, want %s", tt.from, tt.ev, got, tt.want)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	if ev, ok := ParseEvent("call-ended"); !ok || ev != EventCallEnd {
		t.Errorf("call-ended = %q, %v; want call-end", ev, ok)
	}
	if ev, ok := ParseEvent("speech-start"); !ok || ev != EventSpeechStart {
		t.Errorf("speech-start = %q, %v", ev, ok)
	}
	if _, ok := ParseEvent("function-call"); ok {
		t.Error("function-call should not be a lifecycle event")
	}
}

func TestTracker(t *testing.T) {
	tr := NewTracker()

	if _, ok := tr.Status("abc"); ok {
		t.Fatal("expected unknown session")
	}

	tr.Apply("abc", EventCallStart)
	tr.Apply("abc", EventSpeechStart)
	if s, _ := tr.Status("abc"); s != StatusSpeaking {
		t.Errorf("status = %s, want speaking", s)
	}
	tr.Apply("def", EventCallStart)
	if n := tr.ActiveCount(); n != 2 {
		t.Errorf("ActiveCount = %d, want 2", n)
	}
	tr.Apply("abc", EventCallEnd)
	if n := tr.ActiveCount(); n != 1 {
		t.Errorf("ActiveCount = %d, want 1", n)
	}
}

func TestTrackerConcurrent(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Apply("same", EventCallStart)
			tr.Apply("same", EventSpeechStart)
		}()
	}
	wg.Wait()
	if s, _ := tr.Status("same"); s != StatusSpeaking {
		t.Errorf("status = %s, want speaking", s)
	}
}

func TestTrackerPrune(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("done-%d", i)
		tr.Apply(id, EventCallStart)
		tr.Apply(id, EventCallEnd)
	}
	tr.Apply("live", EventCallStart)
	tr.Apply("errored", EventError)

	now := time.Now().Add(time.Second)
	if n := tr.Prune(now, now.Add(-time.Hour)); n != 101 {
		t.Errorf("Prune removed %d, want 101", n)
	}
	if n := tr.Len(); n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}
	if s, ok := tr.Status("live"); !ok || s != StatusConnected {
		t.Errorf("live = %s, %v", s, ok)
	}

	if n := tr.Prune(time.Time{}, now); n != 1 {
		t.Errorf("stale Prune removed %d, want 1", n)
	}
	if _, ok := tr.Status("live"); ok {
		t.Error("stale call should be dropped")
	}
}
