package services

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/admitly/counselor/internal/app/models"
	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/pkg/callstate"
	"github.com/admitly/counselor/internal/pkg/metrics"
	"github.com/rs/zerolog"
)

// WebhookReply is what the webhook endpoint answers. Function calls carry a
// Result; every other event is acknowledged.
type WebhookReply struct {
	Result    string
	HasResult bool
}

// SessionRetention bounds how long per-call state outlives its last event.
type SessionRetention struct {
	// Ended is how long an ended or reset call keeps reporting its status.
	Ended time.Duration
	// Stale drops any call, and its pending notes, after this long without
	// an event.
	Stale           time.Duration
	CleanupInterval time.Duration
}

// DefaultSessionRetention returns the retention used by NewWebhookService.
func DefaultSessionRetention() SessionRetention {
	return SessionRetention{
		Ended:           10 * time.Minute,
		Stale:           2 * time.Hour,
		CleanupInterval: time.Minute,
	}
}

// WebhookEventTypes lists the event types the webhook understands.
func WebhookEventTypes() []string {
	return []string{
		dto.WebhookTypeFunctionCall,
		dto.WebhookTypeCallEnded,
		string(callstate.EventStartRequested),
		string(callstate.EventCallStart),
		string(callstate.EventSpeechStart),
		string(callstate.EventSpeechEnd),
		string(callstate.EventCallEnd),
		string(callstate.EventError),
		string(callstate.EventReset),
		string(callstate.EventVolumeLevel),
		string(callstate.EventMessage),
	}
}

// FunctionNames lists the functions the assistant can call.
func FunctionNames() []string {
	return []string{FunctionGetCourseInfo, FunctionSearchCourses, FunctionGetScholarshipInfo}
}

// sessionNotes accumulates what a call's function calls touched until the
// call ends.
type sessionNotes struct {
	courses     []string
	seen        map[string]struct{}
	scholarship bool
	updated     time.Time
}

func (n *sessionNotes) addCourses(names []string) {
	for _, name := range names {
		if _, ok := n.seen[name]; ok {
			continue
		}
		n.seen[name] = struct{}{}
		n.courses = append(n.courses, name)
	}
}

// WebhookService dispatches events posted by the voice service
type WebhookService struct {
	assistant *AssistantService
	voiceLogs *VoiceLogService
	tracker   *callstate.Tracker
	metrics   *metrics.WebhookMetrics
	logger    zerolog.Logger

	retention SessionRetention
	stopCh    chan struct{}
	stopOnce  sync.Once

	mu    sync.Mutex
	notes map[string]*sessionNotes
}

// NewWebhookService creates a new WebhookService. tracker and m may be nil.
func NewWebhookService(
	assistant *AssistantService,
	voiceLogs *VoiceLogService,
	tracker *callstate.Tracker,
	m *metrics.WebhookMetrics,
	logger zerolog.Logger,
) *WebhookService {
	return &WebhookService{
		assistant: assistant,
		voiceLogs: voiceLogs,
		tracker:   tracker,
		metrics:   m,
		logger:    logger,
		retention: DefaultSessionRetention(),
		stopCh:    make(chan struct{}),
		notes:     make(map[string]*sessionNotes),
	}
}

// StartCleanup sweeps stale session state every retention.CleanupInterval
// until Stop is called.
func (s *WebhookService) StartCleanup(retention SessionRetention) {
	s.mu.Lock()
	s.retention = retention
	s.mu.Unlock()

	interval := retention.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				s.Sweep(now)
			case <-s.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the cleanup loop. It is safe to call more than once.
func (s *WebhookService) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// Sweep drops session notes and tracked calls that have outlived the
// retention as of now.
func (s *WebhookService) Sweep(now time.Time) {
	s.mu.Lock()
	retention := s.retention
	staleBefore := now.Add(-retention.Stale)
	notesRemoved := 0
	for id, n := range s.notes {
		if n.updated.Before(staleBefore) {
			delete(s.notes, id)
			notesRemoved++
		}
	}
	s.mu.Unlock()

	callsRemoved := 0
	if s.tracker != nil {
		callsRemoved = s.tracker.Prune(now.Add(-retention.Ended), staleBefore)
	}
	if notesRemoved > 0 || callsRemoved > 0 {
		s.logger.Debug().
			Int("notesRemoved", notesRemoved).
			Int("callsRemoved", callsRemoved).
			Msg("Webhook session cleanup")
	}
}

// HandleEvent processes a single webhook event. Only a failure to record a
// finished call is reported as an error.
func (s *WebhookService) HandleEvent(ctx context.Context, req *dto.WebhookRequest) (*WebhookReply, error) {
	s.metrics.ObserveEvent(req.Type)

	sessionID := ""
	if req.Call != nil {
		sessionID = req.Call.ID
	}

	switch req.Type {
	case dto.WebhookTypeFunctionCall:
		if req.Message == nil || req.Message.FunctionCall == nil {
			break
		}
		res := s.assistant.HandleFunctionCall(ctx, req.Message.FunctionCall)
		s.metrics.ObserveFunctionCall(req.Message.FunctionCall.Name, res.Found)
		s.note(sessionID, res)

		s.logger.Debug().
			Str("sessionID", sessionID).
			Str("function", req.Message.FunctionCall.Name).
			Bool("found", res.Found).
			Msg("Function call answered")
		return &WebhookReply{Result: res.Result, HasResult: true}, nil

	case dto.WebhookTypeCallEnded:
		s.applyState(sessionID, callstate.EventCallEnd)
		if req.Call == nil {
			break
		}
		if _, err := s.recordCall(ctx, req.Call); err != nil {
			return nil, err
		}

	default:
		if ev, ok := callstate.ParseEvent(req.Type); ok {
			s.applyState(sessionID, ev)
		} else {
			s.logger.Debug().Str("type", req.Type).Msg("Ignoring webhook event")
		}
	}

	return &WebhookReply{}, nil
}

// CallStatus returns the tracked status of sessionID. Unknown calls are idle.
func (s *WebhookService) CallStatus(sessionID string) (callstate.Status, bool) {
	if s.tracker == nil {
		return callstate.StatusIdle, false
	}
	status, ok := s.tracker.Status(sessionID)
	if !ok {
		return callstate.StatusIdle, false
	}
	return status, true
}

func (s *WebhookService) applyState(sessionID string, ev callstate.Event) {
	if s.tracker == nil || sessionID == "" {
		return
	}
	status := s.tracker.Apply(sessionID, ev)
	s.logger.Debug().
		Str("sessionID", sessionID).
		Str("event", string(ev)).
		Str("status", string(status)).
		Msg("Call state changed")
}

func (s *WebhookService) note(sessionID string, res FunctionResult) {
	if sessionID == "" || (len(res.CoursesDiscussed) == 0 && !res.ScholarshipCalculated) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[sessionID]
	if !ok {
		n = &sessionNotes{seen: make(map[string]struct{})}
		s.notes[sessionID] = n
	}
	n.addCourses(res.CoursesDiscussed)
	n.scholarship = n.scholarship || res.ScholarshipCalculated
	n.updated = time.Now()
}

// takeNotes removes and returns the notes of sessionID.
func (s *WebhookService) takeNotes(sessionID string) *sessionNotes {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[sessionID]
	if !ok {
		return &sessionNotes{seen: make(map[string]struct{})}
	}
	delete(s.notes, sessionID)
	return n
}

// recordCall writes the call log, merging what the voice service reports
// with what this process saw during the call.
func (s *WebhookService) recordCall(ctx context.Context, call *dto.WebhookCall) (*models.VoiceCallLog, error) {
	seen := s.takeNotes(call.ID)
	merged := &sessionNotes{seen: make(map[string]struct{})}
	merged.addCourses(call.CoursesDiscussed)
	merged.addCourses(seen.courses)

	duration := 0
	if call.Duration > 0 {
		duration = int(math.Round(call.Duration))
	}

	return s.voiceLogs.RecordCall(ctx, &models.VoiceCallLog{
		SessionID:             call.ID,
		Transcript:            call.Transcript,
		Duration:              duration,
		CoursesDiscussed:      merged.courses,
		ScholarshipCalculated: call.ScholarshipCalculated || seen.scholarship,
	})
}
