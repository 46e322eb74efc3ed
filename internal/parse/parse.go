// Package parse recovers typed plan records from raw LLM responses.
// Decoding is explicit: DecodeObject/DecodeList return an error for
// malformed input, and the typed parsers map any decode error to the
// documented default instead of propagating it. Nothing in this package
// panics on model output.
package parse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/thinkflow/thinkflow/internal/model"
	"github.com/thinkflow/thinkflow/internal/textutil"
)

// DecodeObject decodes raw text (optionally fence-wrapped, possibly
// buried in surrounding prose) as a JSON object. Returns an error if no
// JSON object can be recovered.
func DecodeObject(raw string) (map[string]any, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoded value is %T, not an object", v)
	}
	return obj, nil
}

// DecodeList decodes raw text as a JSON array, with the same fence and
// prose tolerance as DecodeObject. Returns an error if no JSON array
// can be recovered.
func DecodeList(raw string) ([]any, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("decoded value is %T, not an array", v)
	}
	return list, nil
}

// decodeValue decodes the fence-stripped text, and when that fails,
// retries on the first complete fenced block found anywhere in the raw
// text. Models sometimes wrap the payload in chatter ("Here is the
// JSON: ```json ... ```"), and the fenced block inside is still good.
func decodeValue(raw string) (any, error) {
	s := textutil.StripCodeFence(raw)
	if s == "" {
		return nil, fmt.Errorf("empty response")
	}
	var v any
	err := json.Unmarshal([]byte(s), &v)
	if err == nil {
		return v, nil
	}
	if block, ok := textutil.FencedBlock(raw); ok {
		var inner any
		if err2 := json.Unmarshal([]byte(block), &inner); err2 == nil {
			return inner, nil
		}
	}
	return nil, fmt.Errorf("decode: %w", err)
}

// firstString returns the first non-blank string value among the given
// keys, tried in order. Newer field names come first so a response
// using an older schema generation still parses.
func firstString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(stringValue(obj[k])); s != "" {
			return s
		}
	}
	return ""
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// Summary parses an executive summary. Any decode failure yields the
// all-defaults summary.
func Summary(raw string) model.ExecutiveSummary {
	obj, err := DecodeObject(raw)
	if err != nil {
		return model.DefaultExecutiveSummary()
	}
	sum := model.ExecutiveSummary{
		Subject:    firstString(obj, "subject", "title"),
		Overview:   firstString(obj, "overview", "summary"),
		MainKPI:    firstString(obj, "main_kpi", "core_value"),
		SubMetrics: firstString(obj, "sub_metrics", "growth_driver"),
	}
	if sum.Subject == "" {
		sum.Subject = model.DefaultSummaryTitle
	}
	return sum
}

// Gap parses a gap assessment. Decode failure is fail-open: the user is
// never blocked on a broken gap check, so the default is ready=true.
func Gap(raw string) model.GapAssessment {
	obj, err := DecodeObject(raw)
	if err != nil {
		return model.GapAssessment{Ready: true}
	}
	ready := true
	if b, ok := obj["ready"].(bool); ok {
		ready = b
	}
	var missing []string
	if ms, ok := obj["missing"].([]any); ok {
		for _, m := range ms {
			if s := strings.TrimSpace(stringValue(m)); s != "" {
				missing = append(missing, s)
			}
		}
	}
	if ready {
		missing = nil
	}
	return model.GapAssessment{Ready: ready, Missing: missing}
}

// Actions parses the action list. A non-array payload yields an empty
// list; non-object elements are dropped; retained elements keep their
// source order, which carries the task grouping.
func Actions(raw string) []model.ActionItem {
	list, err := DecodeList(raw)
	if err != nil {
		return []model.ActionItem{}
	}
	out := make([]model.ActionItem, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, actionItem(obj))
	}
	return out
}

func actionItem(obj map[string]any) model.ActionItem {
	item := model.ActionItem{
		Summary:       strings.TrimSpace(stringValue(obj["summary"])),
		DueDate:       dueDate(obj["due_date"]),
		Priority:      priority(obj["priority"]),
		Level:         level(obj["level"]),
		Dependency:    strings.TrimSpace(stringValue(obj["dependency"])),
		AISuggestion:  strings.TrimSpace(stringValue(obj["ai_suggestion"])),
		Conditions:    strings.TrimSpace(stringValue(obj["conditions"])),
		EstimatedTime: strings.TrimSpace(stringValue(obj["estimated_time"])),
	}
	if b, ok := obj["is_optional"].(bool); ok {
		item.IsOptional = b
	}
	if item.Summary == "" {
		item.Summary = model.UntitledAction
	}
	return item
}

var dueDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dueDate normalizes a due date to YYYY-MM-DD, or "" when the value is
// absent or not in that shape. Trailing time components are cut off
// (models sometimes emit full timestamps).
func dueDate(v any) string {
	s := strings.TrimSpace(stringValue(v))
	if len(s) > 10 {
		s = s[:10]
	}
	if !dueDateRe.MatchString(s) {
		return ""
	}
	return s
}

func priority(v any) string {
	if s, ok := v.(string); ok && model.ValidPriorities[s] {
		return s
	}
	return model.PriorityMedium
}

// level coerces to 1 or 2; anything else (missing, non-numeric, out of
// range) normalizes to 1. JSON numbers decode as float64.
func level(v any) int {
	switch n := v.(type) {
	case float64:
		if n == 2 {
			return 2
		}
	case string:
		if strings.TrimSpace(n) == "2" {
			return 2
		}
	}
	return 1
}

// Comments parses strategic comments. Decode failure yields empty lists.
func Comments(raw string) model.StrategicComments {
	var c model.StrategicComments
	obj, err := DecodeObject(raw)
	if err != nil {
		return c
	}
	c.MustFinishBy = stringList(obj["must_finish_by"])
	c.Prioritize = stringList(obj["prioritize"])
	c.CanSkip = stringList(obj["can_skip"])
	return c
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, it := range items {
		if s := strings.TrimSpace(stringValue(it)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
