// Package server exposes the sequential thinking engine over the Model
// Context Protocol (stdio or streamable HTTP) and a small web surface
// for service info, health and metrics.
package server

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/thought"
)

// Engine processes one coordinator prompt and returns the synthesized
// response. Implemented by the team engine.
type Engine interface {
	Run(ctx context.Context, input string) (string, error)
}

// Processor owns the shared thinking state and turns validated
// thoughts into coordinator prompts and responses.
type Processor struct {
	mu        sync.Mutex
	engine    Engine
	newEngine func() (Engine, error)
	history   *thought.History
	log       *logrus.Entry
}

// NewProcessor creates a processor that builds its engine lazily on
// the first thought, so a stdio server starts without provider
// credentials being touched.
func NewProcessor(newEngine func() (Engine, error), log *logrus.Entry) *Processor {
	return &Processor{
		newEngine: newEngine,
		history:   thought.NewHistory(),
		log:       log,
	}
}

// History exposes the shared thought history.
func (p *Processor) History() *thought.History {
	return p.history
}

func (p *Processor) ensureEngine() (Engine, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.engine != nil {
		return p.engine, nil
	}

	p.log.Info("Initializing application resources (coordinate mode)...")
	engine, err := p.newEngine()
	if err != nil {
		return nil, fmt.Errorf("initialize thinking team: %w", err)
	}
	p.engine = engine
	return engine, nil
}

// Warm eagerly initializes the engine, used by the HTTP lifecycle.
func (p *Processor) Warm() error {
	_, err := p.ensureEngine()
	return err
}

// Process validates and records one thought, runs it through the team,
// and returns the coordinator response with next-step guidance.
func (p *Processor) Process(ctx context.Context, t thought.Thought) (string, error) {
	engine, err := p.ensureEngine()
	if err != nil {
		return "", err
	}

	if err := t.Validate(); err != nil {
		return "", err
	}

	// Once the estimate is reached the process ends, unless the caller
	// signalled an extension.
	nextNeeded := t.NextThoughtNeeded
	if t.ThoughtNumber >= t.TotalThoughts && !t.NeedsMoreThoughts {
		nextNeeded = false
	}

	logPrefix := "--- Received Thought ---"
	switch {
	case t.IsRevision:
		logPrefix = fmt.Sprintf("--- Received REVISION Thought (revising #%d) ---", t.RevisesThought)
	case t.IsBranch():
		logPrefix = fmt.Sprintf("--- Received BRANCH Thought (from #%d, ID: %s) ---", t.BranchFromThought, t.BranchID)
	}
	p.log.Infof("\n%s\n%s\n", logPrefix, t.FormatForLog())

	p.history.Add(t)
	thoughtsProcessed.WithLabelValues(t.Kind()).Inc()

	p.log.Infof("Passing thought #%d to the Coordinator...", t.ThoughtNumber)

	response, err := engine.Run(ctx, p.buildPrompt(t))
	if err != nil {
		return "", fmt.Errorf("process thought #%d: %w", t.ThoughtNumber, err)
	}

	p.log.Infof("Coordinator finished processing thought #%d.", t.ThoughtNumber)
	p.log.Debugf("Coordinator raw response:\n%s", response)

	return response + guidance(nextNeeded), nil
}

// buildPrompt renders the coordinator input for a thought, quoting the
// original thought text for revisions and branch points.
func (p *Processor) buildPrompt(t thought.Thought) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Process Thought #%d:\n", t.ThoughtNumber)

	switch {
	case t.IsRevision && t.RevisesThought != 0:
		original := "Unknown Original Thought"
		if prev, ok := p.history.Find(t.RevisesThought); ok {
			original = prev.Thought
		}
		fmt.Fprintf(&b, "**This is a REVISION of Thought #%d** (Original: %q).\n", t.RevisesThought, original)
	case t.IsBranch():
		origin := "Unknown Branch Point"
		if prev, ok := p.history.Find(t.BranchFromThought); ok {
			origin = prev.Thought
		}
		fmt.Fprintf(&b, "**This is a BRANCH (ID: %s) from Thought #%d** (Origin: %q).\n", t.BranchID, t.BranchFromThought, origin)
	}

	fmt.Fprintf(&b, "\nThought Content: %q", t.Thought)
	return b.String()
}

func guidance(nextNeeded bool) string {
	if !nextNeeded {
		return "\n\nThis is the final thought. Review the Coordinator's final synthesis."
	}
	var b strings.Builder
	b.WriteString("\n\nGuidance for next step:")
	b.WriteString("\n- **Revision/Branching:** Look for 'RECOMMENDATION: Revise thought #X...' or 'SUGGESTION: Consider branching...' in the response.")
	b.WriteString(" Use `isRevision=true`/`revisesThought=X` for revisions or `branchFromThought=Y`/`branchId='...'` for branching accordingly.")
	b.WriteString("\n- **Next Thought:** Based on the Coordinator's response, formulate the next logical thought, addressing any points raised.")
	return b.String()
}
