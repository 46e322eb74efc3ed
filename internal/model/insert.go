package model

// InsertPosition says where a manually added action lands in the list.
type InsertPosition struct {
	Before string // insert before the action with this summary
	After  string // insert after the action with this summary
	// Both empty: append at the end.
}

// InsertAction returns a new list with item spliced in at the requested
// position. The input list is not modified. If the named anchor action
// is not found, the item is appended.
func InsertAction(actions []ActionItem, item ActionItem, pos InsertPosition) []ActionItem {
	idx := len(actions)
	if pos.Before != "" || pos.After != "" {
		for i, a := range actions {
			if pos.Before != "" && a.Summary == pos.Before {
				idx = i
				break
			}
			if pos.After != "" && a.Summary == pos.After {
				idx = i + 1
				break
			}
		}
	}

	out := make([]ActionItem, 0, len(actions)+1)
	out = append(out, actions[:idx]...)
	out = append(out, item)
	out = append(out, actions[idx:]...)
	return out
}

// NewManualAction builds a well-formed action from a user-approved
// suggestion string, with all optional fields defaulted.
func NewManualAction(summary string) ActionItem {
	if summary == "" {
		summary = UntitledAction
	}
	return ActionItem{
		Summary:  summary,
		Priority: PriorityMedium,
		Level:    1,
	}
}
