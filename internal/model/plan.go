// Package model defines the core plan data types.
package model

// Priority levels for action items.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// ValidPriorities are the allowed action priorities.
var ValidPriorities = map[string]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

// DefaultSummaryTitle is used when a generated summary carries no subject.
const DefaultSummaryTitle = "Strategy Summary"

// UntitledAction is the placeholder summary for an action without one.
const UntitledAction = "(no title)"

// ActionItem is one task record in the generated plan.
type ActionItem struct {
	Summary       string `json:"summary"`
	DueDate       string `json:"due_date,omitempty"` // YYYY-MM-DD, empty means none
	Priority      string `json:"priority"`
	Level         int    `json:"level"` // 1 = task, 2 = sub-task
	Dependency    string `json:"dependency,omitempty"`
	AISuggestion  string `json:"ai_suggestion,omitempty"`
	Conditions    string `json:"conditions,omitempty"`
	EstimatedTime string `json:"estimated_time,omitempty"`
	IsOptional    bool   `json:"is_optional,omitempty"`
}

// ExecutiveSummary is the headline summary of one analysis.
type ExecutiveSummary struct {
	Subject    string `json:"subject"`
	Overview   string `json:"overview"`
	MainKPI    string `json:"main_kpi"`
	SubMetrics string `json:"sub_metrics"`
}

// DefaultExecutiveSummary returns the all-defaults summary used when
// generation or parsing fails.
func DefaultExecutiveSummary() ExecutiveSummary {
	return ExecutiveSummary{Subject: DefaultSummaryTitle}
}

// GapAssessment reports whether the input carries enough information
// (goal, deadline, owner) to produce a meaningful plan.
type GapAssessment struct {
	Ready   bool     `json:"ready"`
	Missing []string `json:"missing,omitempty"`
}

// StrategicComments groups scheduling advice extracted from the plan.
type StrategicComments struct {
	MustFinishBy []string `json:"must_finish_by"`
	Prioritize   []string `json:"prioritize"`
	CanSkip      []string `json:"can_skip"`
}

// AnalysisResult is what one full analysis pass returns. Exactly one of
// the two shapes is populated: a clarification request, or a dashboard
// payload (diagram, actions, summary, comments).
type AnalysisResult struct {
	NeedsClarification bool     `json:"needs_clarification,omitempty"`
	Missing            []string `json:"missing,omitempty"`

	Diagram           string             `json:"diagram,omitempty"`
	Actions           []ActionItem       `json:"actions"`
	ExecutiveSummary  ExecutiveSummary   `json:"executive_summary"`
	StrategicComments *StrategicComments `json:"strategic_comments,omitempty"`
}
