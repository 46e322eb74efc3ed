package model

import "time"

// Session is one stored analysis session: the accumulated context and
// the latest result. A new analysis pass replaces the session wholesale;
// prior passes remain as history versions.
type Session struct {
	ID        string          `json:"id"`
	Context   string          `json:"context"`
	Result    *AnalysisResult `json:"result,omitempty"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
}
