package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/thought"
)

const (
	// ServerName identifies this MCP server to clients.
	ServerName = "HighfeatureMcpServerSequentialThinking"
	// ServerVersion is the advertised server version.
	ServerVersion = "1.0.0"
)

const sequentialThinkingDescription = `A detailed tool for dynamic and reflective problem-solving through thoughts.

This tool helps analyze problems through a flexible thinking process that can adapt and evolve.
Each thought can build on, question, or revise previous insights as understanding deepens.
It uses a multi-agent team in coordinate mode to process each thought, where a Coordinator
delegates sub-tasks to specialists (Planner, Researcher, Analyzer, Critic, Synthesizer) and
synthesizes their outputs.

When to use this tool:
- Breaking down complex problems into manageable steps.
- Planning and design processes requiring iterative refinement and revision.
- Complex analysis where the approach might need course correction based on findings.
- Problems where the full scope or optimal path is not clear initially.
- Situations requiring a multi-step solution with context maintained across steps.
- Developing and verifying solution hypotheses through a chain of reasoning.

Key usage guidelines:
- The process is driven by the caller making sequential calls to this tool.
- Start with an initial estimate for totalThoughts (minimum 5 suggested) and adjust it in later calls if needed.
- Use isRevision=true with revisesThought to explicitly revisit and correct previous steps.
- Use branchFromThought and branchId to explore alternative paths or perspectives.
- If the estimate is reached but more steps are needed, set needsMoreThoughts=true on the last thought within the estimate.
- Set nextThoughtNeeded=false only when the process is complete and a final answer is ready.

Returns the Coordinator's synthesized response for the current thought, including guidance for
the caller on potential next steps (e.g. suggestions for revision or branching).`

// MCP bundles the MCP server with its processor.
type MCP struct {
	server    *server.MCPServer
	processor *Processor
	log       *logrus.Entry
}

// NewMCP builds the MCP server and registers the sequentialthinking
// tool and the sequential-thinking starter prompt.
func NewMCP(processor *Processor, log *logrus.Entry) *MCP {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	m := &MCP{server: s, processor: processor, log: log}

	tool := mcp.NewTool("sequentialthinking",
		mcp.WithDescription(sequentialThinkingDescription),
		mcp.WithString("thought",
			mcp.Required(),
			mcp.Description("Content of the current thinking step: an analytical step, a plan, a question, a critique, a revision, a hypothesis, or verification. Make it specific enough to imply the desired action."),
		),
		mcp.WithNumber("thoughtNumber",
			mcp.Required(),
			mcp.Min(1),
			mcp.Description("Sequence number of this thought (>=1). Can exceed the initial totalThoughts if the process is extended."),
		),
		mcp.WithNumber("totalThoughts",
			mcp.Required(),
			mcp.Min(1),
			mcp.Description("Current estimate of the total thoughts required. Adjustable in subsequent calls. Minimum 5 suggested."),
		),
		mcp.WithBoolean("nextThoughtNeeded",
			mcp.Required(),
			mcp.Description("Whether the caller intends to make another call after this one. Set to false only when the process is complete."),
		),
		mcp.WithBoolean("isRevision",
			mcp.Description("True if this thought revises or corrects a previous thought."),
		),
		mcp.WithNumber("revisesThought",
			mcp.Description("The thoughtNumber being revised, required if isRevision is true. Must be less than the current thoughtNumber."),
		),
		mcp.WithNumber("branchFromThought",
			mcp.Description("The thoughtNumber from which this thought branches to explore an alternative path."),
		),
		mcp.WithString("branchId",
			mcp.Description("A unique identifier for the branch being explored, required if branchFromThought is set."),
		),
		mcp.WithBoolean("needsMoreThoughts",
			mcp.Description("Set to true if the caller anticipates needing more steps beyond the current totalThoughts estimate after this thought."),
		),
	)
	s.AddTool(tool, m.handleSequentialThinking)

	prompt := mcp.NewPrompt("sequential-thinking",
		mcp.WithPromptDescription("Starter prompt for non-linear sequential thinking (coordinate mode), providing problem and guidelines separately."),
		mcp.WithArgument("problem",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("The problem to analyze through sequential thinking."),
		),
		mcp.WithArgument("context",
			mcp.ArgumentDescription("Optional additional context for the problem."),
		),
	)
	s.AddPrompt(prompt, m.handleStarterPrompt)

	return m
}

// Processor returns the thought processor behind the tool.
func (m *MCP) Processor() *Processor {
	return m.processor
}

// Server returns the underlying MCP server for transport binding.
func (m *MCP) Server() *server.MCPServer {
	return m.server
}

// ServeStdio serves the MCP protocol over stdin/stdout.
func (m *MCP) ServeStdio() error {
	m.log.Info("Starting MCP server on stdio...")
	return server.ServeStdio(m.server)
}

func (m *MCP) handleSequentialThinking(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("thought")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Input validation failed: %v", err)), nil
	}
	number, err := request.RequireInt("thoughtNumber")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Input validation failed: %v", err)), nil
	}
	total, err := request.RequireInt("totalThoughts")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Input validation failed: %v", err)), nil
	}
	nextNeeded, err := request.RequireBool("nextThoughtNeeded")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Input validation failed: %v", err)), nil
	}

	t := thought.Thought{
		Thought:           text,
		ThoughtNumber:     number,
		TotalThoughts:     total,
		NextThoughtNeeded: nextNeeded,
		IsRevision:        request.GetBool("isRevision", false),
		RevisesThought:    request.GetInt("revisesThought", 0),
		BranchFromThought: request.GetInt("branchFromThought", 0),
		BranchID:          request.GetString("branchId", ""),
		NeedsMoreThoughts: request.GetBool("needsMoreThoughts", false),
	}

	response, err := m.processor.Process(ctx, t)
	if err != nil {
		m.log.WithError(err).Error("Error processing tool call")
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response), nil
}

func (m *MCP) handleStarterPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	problem := request.Params.Arguments["problem"]
	if problem == "" {
		return nil, fmt.Errorf("problem argument is required")
	}
	extra := request.Params.Arguments["context"]

	userText := fmt.Sprintf("Initiate a comprehensive sequential thinking process for the following problem:\n\nProblem: %s", problem)
	if extra != "" {
		userText += fmt.Sprintf("\nContext: %s", extra)
	}

	assistantText := starterGuidelines(problem)

	return mcp.NewGetPromptResult(
		"Starter prompt for non-linear sequential thinking (coordinate mode), providing problem and guidelines separately.",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(userText)),
			mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(assistantText)),
		},
	), nil
}

func starterGuidelines(problem string) string {
	return fmt.Sprintf(`Okay, let's start the sequential thinking process. Here are the guidelines and the process we'll follow using the 'coordinate' mode team:

**Sequential Thinking Goals & Guidelines (Coordinate Mode)**:

1.  **Estimate Steps:** Analyze the problem complexity. Your initial totalThoughts estimate should be at least %[1]d.
2.  **First Thought:** Call the 'sequentialthinking' tool with thoughtNumber: 1, your estimated totalThoughts (at least %[1]d), and nextThoughtNeeded: true. Structure your first thought as: "Plan a comprehensive analysis approach for: %[2]s"
3.  **Encouraged Revision:** Actively look for opportunities to revise previous thoughts if you identify flaws, oversights, or necessary refinements based on later analysis. Use isRevision: true and revisesThought: <thought_number> when performing a revision. Look for 'RECOMMENDATION: Revise thought #X...' in the Coordinator's response.
4.  **Encouraged Branching:** Explore alternative paths, perspectives, or solutions where appropriate. Use branchFromThought: <thought_number> and branchId: <unique_branch_name> to initiate branches. Consider suggestions for branching proposed by the Coordinator (e.g. 'SUGGESTION: Consider branching...').
5.  **Extension:** If the analysis requires more steps than initially estimated, use needsMoreThoughts: true on the thought before you need the extension.
6.  **Thought Content:** Each thought must be detailed and specific to the current stage, clearly explain the reasoning behind it (especially for revisions and branches), and conclude by outlining what the next thought needs to address.

**Process:**

*   The sequentialthinking tool tracks your progress. The team operates in 'coordinate' mode: the Coordinator receives your thought, delegates sub-tasks to specialists (like Analyzer, Critic), and synthesizes their outputs, potentially including recommendations for revision or branching.
*   Focus on insightful analysis, constructive critique, and creative exploration.
*   Actively reflect on the process. Linear thinking might be insufficient for complex problems.

Proceed with the first thought based on these guidelines.`, thought.MinTotalThoughts, problem)
}
