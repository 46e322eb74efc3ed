// Package prompt holds the generation prompts for each analysis call.
// Every prompt takes a single {context} variable and instructs the model
// to answer in a machine-parseable shape; the parse and mermaid packages
// assume nothing about how well the model follows that instruction.
package prompt

import "strings"

// Structure asks for a goal -> strategy -> action hierarchy as a Mermaid
// graph.
const Structure = `You are a private thinking partner: a strategy consultant for a student or solo worker. Organize the input into a logical hierarchy.

Rules:
- Use only Mermaid "graph TD" (top-down) or "graph LR" (left-right) syntax. Do not use mindmap.
- Connect nodes with arrows in the order Goal --> Strategy --> Action.
- Do not use emojis in node text.
- Do not mention teams, departments, or approvals; write from a solo-worker perspective.
- Do not invent names or organizations that are not in the input.
- Output pure graph code only, without code block markers.

Input:
{context}

Output (Mermaid graph TD code only):`

// Actions asks for the task list as a JSON array.
const Actions = `You are a proactive solo consultant. Extract the actions to take from the input below. If an obvious step is missing from the described plan, infer and add it.

Rules:
- Output only a JSON array in the exact shape below. No prose, no markdown.
- Dates must be YYYY-MM-DD. Use null when the date is unknown.
- priority must be one of "High", "Medium", "Low".
- level: 1 = main task, 2 = sub-task. Reflect the hierarchy.
- dependency: a precondition (e.g. "after securing budget"). Use null or "" when none.
- ai_suggestion: one short piece of advice for the task, or null.

Output shape (JSON array):
[
  { "summary": "task summary", "due_date": "YYYY-MM-DD", "priority": "High", "level": 1, "dependency": "precondition or null", "ai_suggestion": "short advice or null" }
]

Input:
{context}

Output (JSON array only):`

// ExecutiveSummary asks for the fixed-format headline summary.
const ExecutiveSummary = `You are a private thinking partner writing a personal summary for a student or solo worker.

Rules:
- Output only the JSON object below. No other text.
- Do not invent names or organizations.

Output shape (JSON object):
{
  "subject": "one-line subject (under 60 characters)",
  "overview": "a narrative paragraph covering background, problem, and approach, including the goal",
  "main_kpi": "the headline KPI (e.g. MAU, conversion rate)",
  "sub_metrics": "supporting metrics (e.g. CTR, engagement)"
}

Input:
{context}

Output (JSON object only):`

// GapAnalysis asks whether the input names a goal, a deadline, and an
// owner clearly enough to plan against.
const GapAnalysis = `You are an input reviewer. Decide whether the text below clearly states a goal (or project), a deadline, and who is responsible (solo or collaborating). Take a student / solo-worker perspective.

Rules:
- Output only a JSON object in the shape below.
- ready: true if at least the goal or deadline is reasonably clear; false if the input is too vague to plan against.
- missing: fill only when ready is false, listing the missing items as short labels.

Output shape (JSON object):
{ "ready": true } or { "ready": false, "missing": ["deadline", "goal"] }

Input:
{context}

Output (JSON object only):`

// StrategicComments asks for scheduling advice over the extracted plan.
const StrategicComments = `You are a private thinking partner reviewing a freshly extracted action plan. Give scheduling advice a solo worker can act on.

Rules:
- Output only the JSON object below. No other text.
- Each list holds short task references or one-line advice; use empty lists when you have nothing to say.

Output shape (JSON object):
{
  "must_finish_by": ["tasks with hard deadlines and why"],
  "prioritize": ["tasks to do first"],
  "can_skip": ["tasks that are optional or can be dropped"]
}

Input:
{context}

Output (JSON object only):`

// Render substitutes the context into a prompt template.
func Render(template, context string) string {
	return strings.ReplaceAll(template, "{context}", strings.TrimSpace(context))
}
