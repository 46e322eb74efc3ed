package model

import "testing"

func sampleActions() []ActionItem {
	return []ActionItem{
		{Summary: "a", Priority: PriorityHigh, Level: 1},
		{Summary: "b", Priority: PriorityMedium, Level: 2},
		{Summary: "c", Priority: PriorityLow, Level: 1},
	}
}

func TestInsertActionAppendsByDefault(t *testing.T) {
	got := InsertAction(sampleActions(), NewManualAction("d"), InsertPosition{})
	if len(got) != 4 {
		t.Fatalf("expected 4 actions, got %d", len(got))
	}
	if got[3].Summary != "d" {
		t.Errorf("expected 'd' appended, got %q", got[3].Summary)
	}
}

func TestInsertActionBefore(t *testing.T) {
	got := InsertAction(sampleActions(), NewManualAction("d"), InsertPosition{Before: "b"})
	if got[1].Summary != "d" || got[2].Summary != "b" {
		t.Errorf("expected d before b, got %q then %q", got[1].Summary, got[2].Summary)
	}
}

func TestInsertActionAfter(t *testing.T) {
	got := InsertAction(sampleActions(), NewManualAction("d"), InsertPosition{After: "b"})
	if got[2].Summary != "d" {
		t.Errorf("expected d after b, got %q", got[2].Summary)
	}
}

func TestInsertActionUnknownAnchorAppends(t *testing.T) {
	got := InsertAction(sampleActions(), NewManualAction("d"), InsertPosition{Before: "zzz"})
	if got[len(got)-1].Summary != "d" {
		t.Errorf("expected append on unknown anchor, got %q last", got[len(got)-1].Summary)
	}
}

func TestInsertActionDoesNotMutateInput(t *testing.T) {
	in := sampleActions()
	InsertAction(in, NewManualAction("d"), InsertPosition{Before: "a"})
	if len(in) != 3 || in[0].Summary != "a" {
		t.Error("input list was mutated")
	}
}

func TestNewManualActionDefaults(t *testing.T) {
	a := NewManualAction("")
	if a.Summary != UntitledAction {
		t.Errorf("expected placeholder summary, got %q", a.Summary)
	}
	if a.Priority != PriorityMedium || a.Level != 1 {
		t.Errorf("expected Medium/1 defaults, got %s/%d", a.Priority, a.Level)
	}
}
