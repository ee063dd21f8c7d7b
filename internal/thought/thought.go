// Package thought defines the data model for the sequential thinking
// process: a single thought, its validation rules, and the shared
// history with revision and branch tracking.
package thought

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinTotalThoughts is the minimum estimate accepted for a thinking
// process. Lower estimates are adjusted up rather than rejected.
const MinTotalThoughts = 5

var validate = validator.New()

// Thought is one step of the sequential thinking process and the input
// schema of the sequentialthinking tool.
type Thought struct {
	// Content of the current thought or step. Should be specific enough
	// to imply the desired action (e.g. "Analyze X", "Critique Y").
	Thought string `json:"thought" validate:"required,min=1"`

	// Sequence number of this thought, starting from 1. May exceed the
	// initial TotalThoughts estimate when the process is extended.
	ThoughtNumber int `json:"thoughtNumber" validate:"gte=1"`

	// Current estimate of the total thoughts required.
	TotalThoughts int `json:"totalThoughts" validate:"gte=1"`

	// Whether another thought step is expected after this one.
	NextThoughtNeeded bool `json:"nextThoughtNeeded"`

	// Flags this thought as a revision of a previous one.
	IsRevision bool `json:"isRevision"`

	// The thought number being revised; required when IsRevision is set.
	RevisesThought int `json:"revisesThought,omitempty" validate:"omitempty,gte=1"`

	// The thought number this thought branches from, 0 for none.
	BranchFromThought int `json:"branchFromThought,omitempty" validate:"omitempty,gte=1"`

	// Unique identifier of the branch; required when BranchFromThought is set.
	BranchID string `json:"branchId,omitempty"`

	// Signals that more thoughts are needed beyond the current estimate.
	NeedsMoreThoughts bool `json:"needsMoreThoughts"`
}

// Validate checks field-level constraints and the cross-field rules
// relating revisions and branches to earlier thoughts. It mutates the
// receiver in one case only: a TotalThoughts below MinTotalThoughts is
// raised to the minimum.
func (t *Thought) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid thought: %w", err)
	}

	if t.RevisesThought != 0 && !t.IsRevision {
		return fmt.Errorf("revisesThought can only be set when isRevision is true")
	}
	if t.IsRevision && t.RevisesThought == 0 {
		return fmt.Errorf("revisesThought is required when isRevision is true")
	}
	if t.RevisesThought != 0 && t.RevisesThought >= t.ThoughtNumber {
		return fmt.Errorf("revisesThought (%d) must be less than thoughtNumber (%d)", t.RevisesThought, t.ThoughtNumber)
	}

	if t.BranchID != "" && t.BranchFromThought == 0 {
		return fmt.Errorf("branchId can only be set when branchFromThought is set")
	}
	if t.BranchFromThought != 0 && t.BranchID == "" {
		return fmt.Errorf("branchId is required when branchFromThought is set")
	}
	if t.BranchFromThought != 0 && t.BranchFromThought >= t.ThoughtNumber {
		return fmt.Errorf("branchFromThought (%d) must be less than thoughtNumber (%d)", t.BranchFromThought, t.ThoughtNumber)
	}

	if t.TotalThoughts < MinTotalThoughts {
		t.TotalThoughts = MinTotalThoughts
	}

	return nil
}

// IsBranch reports whether this thought starts or continues a branch.
func (t *Thought) IsBranch() bool {
	return t.BranchFromThought != 0 && t.BranchID != ""
}

// Kind names the thought type for logs and metrics.
func (t *Thought) Kind() string {
	switch {
	case t.IsRevision:
		return "revision"
	case t.IsBranch():
		return "branch"
	default:
		return "thought"
	}
}

// FormatForLog renders a multi-line, human-readable summary of the
// thought for log output.
//
// Example:
//
//	Revision 5/10 (revising thought 3)
//	  Thought: Refined the analysis based on critique.
//	  Next Needed: true, Needs More: false
func (t *Thought) FormatForLog() string {
	var header, branchInfo string

	switch {
	case t.IsRevision && t.RevisesThought != 0:
		header = fmt.Sprintf("Revision %d/%d (revising thought %d)", t.ThoughtNumber, t.TotalThoughts, t.RevisesThought)
	case t.IsBranch():
		header = fmt.Sprintf("Branch %d/%d (from thought %d, ID: %s)", t.ThoughtNumber, t.TotalThoughts, t.BranchFromThought, t.BranchID)
		branchInfo = fmt.Sprintf("  Branch Details: ID='%s', originates from Thought #%d", t.BranchID, t.BranchFromThought)
	default:
		header = fmt.Sprintf("Thought %d/%d", t.ThoughtNumber, t.TotalThoughts)
	}

	lines := []string{header, "  Thought: " + t.Thought}
	if branchInfo != "" {
		lines = append(lines, branchInfo)
	}
	lines = append(lines, fmt.Sprintf("  Next Needed: %t, Needs More: %t", t.NextThoughtNeeded, t.NeedsMoreThoughts))

	return strings.Join(lines, "\n")
}
