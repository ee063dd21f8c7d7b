package team

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/ai"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/providers"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/retry"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/tools"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// noRetry runs every provider call exactly once.
var noRetry = retry.Config{Enabled: true, MaxAttempts: 0}

func newTestTeam(coord, agents ai.Provider) *Team {
	return New(Config{
		Name:        "SequentialThinkingTeam",
		Coordinator: coord,
		Members: DefaultRoster(RosterConfig{
			AgentModel: "test-model",
			Provider:   agents,
		}),
		Logger: testLogger(),
		Retry:  noRetry,
	})
}

func TestRunDelegatesAndSynthesizes(t *testing.T) {
	coord := providers.NewMockProvider()
	coord.Queue(ai.ChatResponse{Content: `["Critic","Analyzer"]`})
	coord.Queue(ai.ChatResponse{Content: "FINAL SYNTHESIS"})
	agents := providers.NewMockProvider()

	team := newTestTeam(coord, agents)

	got, err := team.Run(context.Background(), "Process Thought #1")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got != "FINAL SYNTHESIS" {
		t.Errorf("Run = %q, want synthesis output", got)
	}

	// Delegation plus synthesis on the coordinator.
	coordReqs := coord.Requests()
	if len(coordReqs) != 2 {
		t.Fatalf("coordinator saw %d requests, want 2", len(coordReqs))
	}
	synthesis := coordReqs[1].Messages[1].Content
	for _, want := range []string{"--- Analyzer ---", "--- Critic ---", "Process Thought #1"} {
		if !strings.Contains(synthesis, want) {
			t.Errorf("synthesis prompt missing %q", want)
		}
	}

	// Both delegated specialists ran.
	if got := len(agents.Requests()); got != 2 {
		t.Errorf("agent provider saw %d requests, want 2", got)
	}
}

func TestRunFallsBackToAnalyzer(t *testing.T) {
	coord := providers.NewMockProvider()
	coord.Queue(ai.ChatResponse{Content: "I cannot decide."})
	coord.Queue(ai.ChatResponse{Content: "SYNTH"})
	agents := providers.NewMockProvider()

	team := newTestTeam(coord, agents)

	got, err := team.Run(context.Background(), "Process Thought #2")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got != "SYNTH" {
		t.Errorf("Run = %q, want SYNTH", got)
	}

	agentReqs := agents.Requests()
	if len(agentReqs) != 1 {
		t.Fatalf("agent provider saw %d requests, want 1 (Analyzer only)", len(agentReqs))
	}
	if !strings.Contains(agentReqs[0].Messages[0].Content, "Core Analyst") {
		t.Errorf("fallback specialist system prompt = %q, want Analyzer", agentReqs[0].Messages[0].Content)
	}
}

type failingProvider struct{}

func (failingProvider) Name() string        { return "failing" }
func (failingProvider) SupportsTools() bool { return false }
func (failingProvider) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	return nil, errors.New("400 bad request")
}

func TestRunFailsWhenNoSpecialistResponds(t *testing.T) {
	coord := providers.NewMockProvider()
	coord.Queue(ai.ChatResponse{Content: `["Analyzer"]`})

	team := newTestTeam(coord, failingProvider{})

	_, err := team.Run(context.Background(), "Process Thought #3")
	if err == nil || !strings.Contains(err.Error(), "no specialist produced a response") {
		t.Fatalf("Run error = %v, want no-specialist error", err)
	}
}

func TestRunSpecialistToolLoop(t *testing.T) {
	agents := providers.NewMockProvider()
	agents.Queue(ai.ChatResponse{
		ToolCalls: []ai.ToolCall{{
			ID:   "call-1",
			Name: "think",
			Args: map[string]interface{}{"thought": "outline the critique"},
		}},
	})
	agents.Queue(ai.ChatResponse{Content: "critique done"})

	think := tools.NewThinkTool()
	agent := &Agent{
		Name:        SpecialistCritic,
		Role:        "Quality Controller",
		Description: "Critiques delegated sub-tasks.",
		Model:       "test-model",
		Provider:    agents,
		Tools:       tools.NewRegistry(think),
	}

	team := New(Config{
		Name:        "SequentialThinkingTeam",
		Coordinator: providers.NewMockProvider(),
		Members:     []*Agent{agent},
		Logger:      testLogger(),
		Retry:       noRetry,
	})

	got, err := team.runSpecialist(context.Background(), agent, "Critique the plan")
	if err != nil {
		t.Fatalf("runSpecialist error: %v", err)
	}
	if got != "critique done" {
		t.Errorf("runSpecialist = %q, want final answer", got)
	}

	notes := think.Notes()
	if len(notes) != 1 || notes[0] != "outline the critique" {
		t.Errorf("think notes = %v, want the recorded scratchpad entry", notes)
	}

	// The second request must carry the tool result message.
	reqs := agents.Requests()
	if len(reqs) != 2 {
		t.Fatalf("agent provider saw %d requests, want 2", len(reqs))
	}
	last := reqs[1].Messages[len(reqs[1].Messages)-1]
	if last.Role != "tool" || last.ToolCallID != "call-1" {
		t.Errorf("last message = %+v, want tool result for call-1", last)
	}
	if !strings.Contains(last.Content, "recorded") {
		t.Errorf("tool result content = %q, want tool output JSON", last.Content)
	}
}
