package thought

import "sync"

// History holds the shared thinking state: the full thought history and
// per-branch thought lists. Safe for concurrent tool calls.
type History struct {
	mu       sync.RWMutex
	thoughts []Thought
	branches map[string][]Thought
}

func NewHistory() *History {
	return &History{
		branches: make(map[string][]Thought),
	}
}

// Add appends a thought to the history and, when the thought belongs to
// a branch, to that branch's list.
func (h *History) Add(t Thought) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.thoughts = append(h.thoughts, t)
	if t.IsBranch() {
		h.branches[t.BranchID] = append(h.branches[t.BranchID], t)
	}
}

// Len returns the number of recorded thoughts.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.thoughts)
}

// Find returns the most recent recorded thought with the given number,
// excluding the latest entry (the thought currently being processed).
func (h *History) Find(number int) (Thought, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for i := len(h.thoughts) - 2; i >= 0; i-- {
		if h.thoughts[i].ThoughtNumber == number {
			return h.thoughts[i], true
		}
	}
	return Thought{}, false
}

// BranchIDs returns the identifiers of all known branches.
func (h *History) BranchIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.branches))
	for id := range h.branches {
		ids = append(ids, id)
	}
	return ids
}

// BranchThoughts returns all thoughts recorded in a branch.
func (h *History) BranchThoughts(branchID string) []Thought {
	h.mu.RLock()
	defer h.mu.RUnlock()

	src := h.branches[branchID]
	out := make([]Thought, len(src))
	copy(out, src)
	return out
}

// BranchCounts returns every branch ID with its thought count.
func (h *History) BranchCounts() map[string]int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	counts := make(map[string]int, len(h.branches))
	for id, thoughts := range h.branches {
		counts[id] = len(thoughts)
	}
	return counts
}
