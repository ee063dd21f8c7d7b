package thought

import "testing"

func TestHistoryFindExcludesLatest(t *testing.T) {
	h := NewHistory()
	h.Add(Thought{Thought: "first", ThoughtNumber: 1, TotalThoughts: 5})
	h.Add(Thought{Thought: "second", ThoughtNumber: 2, TotalThoughts: 5})
	h.Add(Thought{Thought: "revising first", ThoughtNumber: 3, TotalThoughts: 5, IsRevision: true, RevisesThought: 1})

	got, ok := h.Find(1)
	if !ok {
		t.Fatal("Find(1) = not found")
	}
	if got.Thought != "first" {
		t.Errorf("Find(1).Thought = %q, want %q", got.Thought, "first")
	}

	// The latest entry is the thought in flight and must not match.
	if _, ok := h.Find(3); ok {
		t.Error("Find(3) found the latest entry, want excluded")
	}

	if _, ok := h.Find(42); ok {
		t.Error("Find(42) = found, want not found")
	}
}

func TestHistoryBranches(t *testing.T) {
	h := NewHistory()
	h.Add(Thought{Thought: "base", ThoughtNumber: 1, TotalThoughts: 5})
	h.Add(Thought{Thought: "alt a", ThoughtNumber: 2, TotalThoughts: 5, BranchFromThought: 1, BranchID: "a"})
	h.Add(Thought{Thought: "alt a continued", ThoughtNumber: 3, TotalThoughts: 5, BranchFromThought: 1, BranchID: "a"})
	h.Add(Thought{Thought: "alt b", ThoughtNumber: 2, TotalThoughts: 5, BranchFromThought: 1, BranchID: "b"})

	if h.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", h.Len())
	}

	if got := len(h.BranchIDs()); got != 2 {
		t.Errorf("BranchIDs() has %d entries, want 2", got)
	}

	counts := h.BranchCounts()
	if counts["a"] != 2 || counts["b"] != 1 {
		t.Errorf("BranchCounts() = %v, want a:2 b:1", counts)
	}

	thoughts := h.BranchThoughts("a")
	if len(thoughts) != 2 || thoughts[0].Thought != "alt a" {
		t.Errorf("BranchThoughts(a) = %v", thoughts)
	}

	if got := h.BranchThoughts("missing"); len(got) != 0 {
		t.Errorf("BranchThoughts(missing) = %v, want empty", got)
	}
}
