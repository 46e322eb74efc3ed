// Package agent sequences the generation calls for one analysis pass and
// owns the degradation contract: every pass returns a displayable result,
// with each field falling back to its documented default when its call
// fails or returns garbage. No generation failure escapes to the caller.
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/thinkflow/thinkflow/internal/llm"
	"github.com/thinkflow/thinkflow/internal/mermaid"
	"github.com/thinkflow/thinkflow/internal/model"
	"github.com/thinkflow/thinkflow/internal/parse"
	"github.com/thinkflow/thinkflow/internal/prompt"
)

// DefaultCallTimeout bounds each individual generation call. A timed-out
// call degrades exactly like any other failed call.
const DefaultCallTimeout = 120 * time.Second

// placeholderMissing is reported when the model says the input is not
// ready but names nothing concrete.
var placeholderMissing = []string{"deadline", "owner"}

// Agent runs analysis passes against a Generator.
type Agent struct {
	gen         llm.Generator
	log         *zap.Logger
	callTimeout time.Duration
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger sets the logger (default: no-op).
func WithLogger(log *zap.Logger) Option {
	return func(a *Agent) { a.log = log }
}

// WithCallTimeout overrides the per-call timeout.
func WithCallTimeout(d time.Duration) Option {
	return func(a *Agent) { a.callTimeout = d }
}

// New creates an Agent.
func New(gen llm.Generator, opts ...Option) *Agent {
	a := &Agent{
		gen:         gen,
		log:         zap.NewNop(),
		callTimeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// generate runs one bounded generation call.
func (a *Agent) generate(ctx context.Context, tpl, analysisContext string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.callTimeout)
	defer cancel()
	return a.gen.Generate(callCtx, prompt.Render(tpl, analysisContext))
}

// CheckGaps asks whether the context carries enough information to plan
// against. Fail-open: a broken gap check never blocks the user, so any
// service or parse failure reports ready.
func (a *Agent) CheckGaps(ctx context.Context, analysisContext string) model.GapAssessment {
	if strings.TrimSpace(analysisContext) == "" {
		return model.GapAssessment{Ready: false, Missing: []string{"goal", "deadline", "owner"}}
	}
	raw, err := a.generate(ctx, prompt.GapAnalysis, analysisContext)
	if err != nil {
		a.log.Warn("gap check call failed, proceeding", zap.Error(err))
		return model.GapAssessment{Ready: true}
	}
	return parse.Gap(raw)
}

// Analyze runs one full pass: gap check, then (if ready) the summary,
// structure, action, and strategic-comment calls. Each of the four is
// isolated; one failing does not stop the others.
func (a *Agent) Analyze(ctx context.Context, analysisContext string) *model.AnalysisResult {
	if strings.TrimSpace(analysisContext) == "" {
		return &model.AnalysisResult{Actions: []model.ActionItem{}}
	}

	gap := a.CheckGaps(ctx, analysisContext)
	if !gap.Ready {
		missing := gap.Missing
		if len(missing) == 0 {
			missing = placeholderMissing
		}
		return &model.AnalysisResult{NeedsClarification: true, Missing: missing}
	}

	summary := model.DefaultExecutiveSummary()
	if raw, err := a.generate(ctx, prompt.ExecutiveSummary, analysisContext); err != nil {
		a.log.Warn("summary call failed", zap.Error(err))
	} else {
		summary = parse.Summary(raw)
	}

	diagram := a.structure(ctx, analysisContext)

	actions := []model.ActionItem{}
	if raw, err := a.generate(ctx, prompt.Actions, analysisContext); err != nil {
		a.log.Warn("action call failed", zap.Error(err))
	} else {
		actions = parse.Actions(raw)
	}

	var comments *model.StrategicComments
	if raw, err := a.generate(ctx, prompt.StrategicComments, analysisContext); err != nil {
		a.log.Warn("strategic comments call failed", zap.Error(err))
	} else {
		c := parse.Comments(raw)
		comments = &c
	}

	return &model.AnalysisResult{
		Diagram:           diagram,
		Actions:           actions,
		ExecutiveSummary:  summary,
		StrategicComments: comments,
	}
}

// structure runs the diagram call and applies the sanitize-or-raw
// policy: a sanitized diagram that does not look renderable is worse
// than the raw text, which at least stays human-readable.
func (a *Agent) structure(ctx context.Context, analysisContext string) string {
	raw, err := a.generate(ctx, prompt.Structure, analysisContext)
	if err != nil {
		a.log.Warn("structure call failed", zap.Error(err))
		// The error text must reach the user verbatim, not dressed up
		// as a one-node diagram.
		return fmt.Sprintf("[Structure generation failed: %v]", err)
	}

	cleaned := mermaid.Sanitize(raw)
	if cleaned == "" {
		return strings.TrimSpace(raw)
	}
	if !mermaid.Plausible(cleaned) {
		a.log.Debug("sanitized diagram implausible, returning raw text")
		return strings.TrimSpace(raw)
	}
	return cleaned
}

// refinePlanLimit caps how many prior actions are rendered into a
// refinement context.
const refinePlanLimit = 10

// RefineContext rebuilds the analysis context for a follow-up request:
// the accumulated context, a plain-text rendering of the previous plan,
// and the user's revision request. The next Analyze call re-derives a
// full plan from this; there is no structured diff.
func RefineContext(prevContext string, prev *model.AnalysisResult, request string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(prevContext))

	if prev != nil && !prev.NeedsClarification {
		b.WriteString("\n\n[Previous plan]\n")
		fmt.Fprintf(&b, "Subject: %s\n", prev.ExecutiveSummary.Subject)
		fmt.Fprintf(&b, "Overview: %s\n", prev.ExecutiveSummary.Overview)
		for i, a := range prev.Actions {
			if i >= refinePlanLimit {
				break
			}
			due := a.DueDate
			if due == "" {
				due = "-"
			}
			fmt.Fprintf(&b, "%d. %s (due: %s)\n", i+1, a.Summary, due)
		}
	}

	b.WriteString("\n\n[User revision request]\n")
	b.WriteString(strings.TrimSpace(request))
	return b.String()
}
