// Package team implements the coordinate-mode multi-agent engine that
// processes sequential thoughts. A coordinator model delegates each
// thought to the minimum set of specialists, runs them in parallel, and
// synthesizes their outputs into a single response.
package team

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/ai"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/retry"
)

const coordinatorSystemPrompt = `You are the Coordinator of a specialist team processing sequential thoughts, working in coordinate mode.
Your core responsibilities when receiving an input thought:
 1. Analyze the input thought, considering its type (initial planning, analysis, revision, branch).
 2. Synthesize the specialist responses into a single, cohesive, comprehensive response addressing the original input thought.
 3. Resolve conflicts or highlight discrepancies between specialists.
 4. Based on the synthesis and specialist feedback, identify potential needs for revision of previous thoughts or branching to explore alternatives.
 5. Include clear recommendations when revision or branching is needed, using the formats 'RECOMMENDATION: Revise thought #X...' and 'SUGGESTION: Consider branching from thought #Y...'.
 6. Ensure the final response directly addresses the input thought and provides guidance for the next step in the sequence.`

// maxToolRounds bounds the tool-call loop of a single specialist run.
const maxToolRounds = 4

// specialistTimeout bounds a single specialist run, delegation and
// synthesis calls included separately.
const specialistTimeout = 120 * time.Second

// Config assembles a team.
type Config struct {
	Name             string
	Coordinator      ai.Provider
	CoordinatorModel string
	Members          []*Agent
	Logger           *logrus.Entry
	Retry            retry.Config
}

// Team coordinates the specialist agents.
type Team struct {
	name       string
	coord      ai.Provider
	coordModel string
	members    map[string]*Agent
	log        *logrus.Entry
	retryCfg   retry.Config
}

// New builds a team from its configuration.
func New(cfg Config) *Team {
	members := make(map[string]*Agent, len(cfg.Members))
	for _, m := range cfg.Members {
		members[m.Name] = m
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if cfg.Retry.MaxAttempts == 0 && !cfg.Retry.Enabled {
		cfg.Retry = retry.DefaultConfig()
	}
	return &Team{
		name:       cfg.Name,
		coord:      cfg.Coordinator,
		coordModel: cfg.CoordinatorModel,
		members:    members,
		log:        log,
		retryCfg:   cfg.Retry,
	}
}

// Name returns the team name.
func (t *Team) Name() string {
	return t.name
}

type specialistResult struct {
	Name     string
	Response string
	Duration time.Duration
	Err      error
}

// Run processes one thought prompt through delegation, parallel
// specialist execution, and coordinator synthesis.
func (t *Team) Run(ctx context.Context, input string) (string, error) {
	start := time.Now()

	names := t.delegate(ctx, input)
	t.log.WithField("specialists", strings.Join(names, ",")).Info("Coordinator delegated sub-tasks")

	results := t.runSpecialists(ctx, names, input)

	valid := 0
	for _, r := range results {
		if r.Err == nil && r.Response != "" {
			valid++
		}
	}
	if valid == 0 {
		return "", fmt.Errorf("no specialist produced a response for this thought")
	}

	response, err := t.synthesize(ctx, input, results)
	if err != nil {
		return "", fmt.Errorf("coordinator synthesis: %w", err)
	}

	t.log.WithFields(logrus.Fields{
		"specialists": len(results),
		"duration":    time.Since(start).Round(time.Millisecond).String(),
	}).Info("Coordinator finished processing thought")

	return response, nil
}

// delegate asks the coordinator which specialists the thought needs.
// On any failure it falls back to the Analyzer alone.
func (t *Team) delegate(ctx context.Context, input string) []string {
	resp, err := retry.Do(ctx, t.retryCfg, func() (*ai.ChatResponse, error) {
		return t.coord.Chat(ctx, ai.ChatRequest{
			Model: t.coordModel,
			Messages: []ai.Message{
				{Role: "system", Content: delegationPrompt},
				{Role: "user", Content: input},
			},
			Temperature: 0.2,
			MaxTokens:   200,
		})
	})
	if err != nil {
		t.log.WithError(err).Warn("Delegation call failed, defaulting to Analyzer")
		return []string{SpecialistAnalyzer}
	}

	names := ParseDelegation(resp.Content)

	// Keep only specialists actually on the roster.
	var out []string
	for _, n := range names {
		if _, ok := t.members[n]; ok {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		t.log.Warn("Delegation produced no usable specialists, defaulting to Analyzer")
		return []string{SpecialistAnalyzer}
	}
	return out
}

// runSpecialists executes the delegated specialists in parallel.
func (t *Team) runSpecialists(ctx context.Context, names []string, input string) []specialistResult {
	results := make([]specialistResult, len(names))
	var wg sync.WaitGroup

	for i, name := range names {
		agent, ok := t.members[name]
		if !ok {
			results[i] = specialistResult{Name: name, Err: fmt.Errorf("specialist %s not on roster", name)}
			continue
		}

		wg.Add(1)
		go func(i int, agent *Agent) {
			defer wg.Done()
			start := time.Now()
			response, err := t.runSpecialist(ctx, agent, input)
			results[i] = specialistResult{
				Name:     agent.Name,
				Response: response,
				Duration: time.Since(start),
				Err:      err,
			}
			if err != nil {
				t.log.WithError(err).WithField("specialist", agent.Name).Warn("Specialist run failed")
			}
		}(i, agent)
	}

	wg.Wait()
	return results
}

// runSpecialist drives one specialist through its tool-call loop.
func (t *Team) runSpecialist(ctx context.Context, agent *Agent, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, specialistTimeout)
	defer cancel()

	messages := []ai.Message{
		{Role: "system", Content: agent.SystemPrompt()},
		{Role: "user", Content: input},
	}

	var toolDefs []ai.Tool
	if agent.Provider.SupportsTools() {
		for _, tool := range agent.Tools.List() {
			toolDefs = append(toolDefs, ai.Tool{
				Name:        tool.Name(),
				Description: tool.Description(),
				Parameters:  tool.Parameters(),
			})
		}
	}

	for round := 0; round <= maxToolRounds; round++ {
		resp, err := retry.Do(ctx, t.retryCfg, func() (*ai.ChatResponse, error) {
			return agent.Provider.Chat(ctx, ai.ChatRequest{
				Model:       agent.Model,
				Messages:    messages,
				Tools:       toolDefs,
				Temperature: 0.7,
				MaxTokens:   2000,
			})
		})
		if err != nil {
			return "", fmt.Errorf("%s chat: %w", agent.Name, err)
		}

		if len(resp.ToolCalls) == 0 {
			return resp.Content, nil
		}

		messages = append(messages, ai.Message{
			Role:      "assistant",
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			result, err := agent.Tools.Execute(ctx, call.Name, call.Args)
			content := ""
			if err != nil {
				content = fmt.Sprintf(`{"error": %q}`, err.Error())
			} else {
				data, merr := json.Marshal(result)
				if merr != nil {
					content = fmt.Sprintf(`{"error": %q}`, merr.Error())
				} else {
					content = string(data)
				}
			}
			messages = append(messages, ai.Message{
				Role:       "tool",
				Content:    content,
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("%s exceeded %d tool rounds without a final answer", agent.Name, maxToolRounds)
}

// synthesize combines the specialist responses into the coordinator's
// final answer for this thought.
func (t *Team) synthesize(ctx context.Context, input string, results []specialistResult) (string, error) {
	var b strings.Builder
	b.WriteString(input)
	b.WriteString("\n\nSpecialist responses:\n")
	for _, r := range results {
		if r.Err != nil || r.Response == "" {
			continue
		}
		b.WriteString("\n--- " + r.Name + " ---\n")
		b.WriteString(r.Response)
		b.WriteString("\n")
	}
	b.WriteString("\nSynthesize these specialist responses into your final answer for this thought.")

	resp, err := retry.Do(ctx, t.retryCfg, func() (*ai.ChatResponse, error) {
		return t.coord.Chat(ctx, ai.ChatRequest{
			Model: t.coordModel,
			Messages: []ai.Message{
				{Role: "system", Content: coordinatorSystemPrompt},
				{Role: "user", Content: b.String()},
			},
			Temperature: 0.5,
			MaxTokens:   3000,
		})
	})
	if err != nil {
		return "", err
	}
	if resp.Content == "" {
		return "", fmt.Errorf("coordinator returned an empty synthesis")
	}
	return resp.Content, nil
}
