package models

// VoiceCallLog records a completed voice session reported by the voice service.
type VoiceCallLog struct {
	ID                    int64    `json:"id"`
	SessionID             string   `json:"sessionId"`
	Transcript            string   `json:"transcript"`
	Duration              int      `json:"duration"` // Seconds
	CoursesDiscussed      []string `json:"coursesDiscussed"`
	ScholarshipCalculated bool     `json:"scholarshipCalculated"`
	Timestamp             string   `json:"timestamp"`
}

// Clone returns a deep copy of the log entry.
func (l *VoiceCallLog) Clone() *VoiceCallLog {
	if l == nil {
		return nil
	}
	cp := *l
	cp.CoursesDiscussed = append([]string{}, l.CoursesDiscussed...)
	return &cp
}
