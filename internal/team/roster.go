package team

import (
	"strings"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/ai"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/tools"
)

// Agent is one specialist in the thinking team.
type Agent struct {
	Name         string
	Role         string
	Description  string
	Instructions []string
	Model        string
	Provider     ai.Provider
	Tools        *tools.Registry
}

// SystemPrompt renders the specialist's system message.
func (a *Agent) SystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are " + a.Name + ", the " + a.Role + ".\n")
	b.WriteString(a.Description + "\n\n")
	for _, inst := range a.Instructions {
		b.WriteString(inst + "\n")
	}
	return b.String()
}

// Specialist names as used in delegation decisions.
const (
	SpecialistPlanner     = "Planner"
	SpecialistResearcher  = "Researcher"
	SpecialistAnalyzer    = "Analyzer"
	SpecialistCritic      = "Critic"
	SpecialistSynthesizer = "Synthesizer"
)

// SpecialistNames lists the roster in delegation order.
var SpecialistNames = []string{
	SpecialistPlanner,
	SpecialistResearcher,
	SpecialistAnalyzer,
	SpecialistCritic,
	SpecialistSynthesizer,
}

// RosterConfig carries what the roster needs besides the provider.
type RosterConfig struct {
	AgentModel string
	Provider   ai.Provider
	SearchTool tools.Tool // web search backend for the Researcher, may be nil
}

// DefaultRoster builds the five specialists with their roles and
// instructions. Every specialist carries the think scratchpad; the
// Researcher additionally gets web search and fetch.
func DefaultRoster(cfg RosterConfig) []*Agent {
	baseTools := func() *tools.Registry {
		return tools.NewRegistry(tools.NewThinkTool())
	}

	researcherTools := tools.NewRegistry(tools.NewThinkTool(), tools.NewWebFetchTool())
	if cfg.SearchTool != nil {
		researcherTools.Register(cfg.SearchTool)
	}

	return []*Agent{
		{
			Name:        SpecialistPlanner,
			Role:        "Strategic Planner",
			Description: "Develops strategic plans and roadmaps based on delegated sub-tasks.",
			Instructions: []string{
				"You will receive specific sub-tasks from the Team Coordinator related to planning, strategy, or process design.",
				"When you receive a sub-task:",
				" 1. Understand the specific planning requirement delegated to you.",
				" 2. Use the think tool as a scratchpad if needed to outline your steps.",
				" 3. Develop the requested plan, roadmap, or sequence of steps.",
				" 4. Identify potential revision or branching points related to your plan and note them.",
				" 5. Consider constraints or potential roadblocks relevant to your assigned task.",
				" 6. Return a clear and concise response containing the requested planning output.",
				"Focus on fulfilling the delegated planning sub-task accurately and efficiently.",
			},
			Model:    cfg.AgentModel,
			Provider: cfg.Provider,
			Tools:    baseTools(),
		},
		{
			Name:        SpecialistResearcher,
			Role:        "Information Gatherer",
			Description: "Gathers and validates information based on delegated research sub-tasks.",
			Instructions: []string{
				"You will receive specific sub-tasks from the Team Coordinator requiring information gathering or verification.",
				"When you receive a sub-task:",
				" 1. Identify the specific information requested in the delegated task.",
				" 2. Use your web_search and web_fetch tools to find relevant facts, data, or context.",
				" 3. Validate information where possible.",
				" 4. Structure your findings clearly.",
				" 5. Note any significant information gaps encountered during your research.",
				" 6. Return a response containing the research findings relevant to the sub-task.",
				"Focus on accuracy and relevance for the delegated research request.",
			},
			Model:    cfg.AgentModel,
			Provider: cfg.Provider,
			Tools:    researcherTools,
		},
		{
			Name:        SpecialistAnalyzer,
			Role:        "Core Analyst",
			Description: "Performs analysis based on delegated analytical sub-tasks.",
			Instructions: []string{
				"You will receive specific sub-tasks from the Team Coordinator requiring analysis, pattern identification, or logical evaluation.",
				"When you receive a sub-task:",
				" 1. Understand the specific analytical requirement of the delegated task.",
				" 2. Use the think tool as a scratchpad if needed to outline your analysis framework.",
				" 3. Perform the requested analysis: break down components, identify patterns, evaluate logic.",
				" 4. Generate concise insights based on your analysis of the sub-task.",
				" 5. Highlight any significant logical inconsistencies or invalidated premises you find.",
				" 6. Return a response containing your analytical findings and insights.",
				"Focus on depth and clarity for the delegated analytical task.",
			},
			Model:    cfg.AgentModel,
			Provider: cfg.Provider,
			Tools:    baseTools(),
		},
		{
			Name:        SpecialistCritic,
			Role:        "Quality Controller",
			Description: "Critically evaluates ideas or assumptions based on delegated critique sub-tasks.",
			Instructions: []string{
				"You will receive specific sub-tasks from the Team Coordinator requiring critique, evaluation of assumptions, or identification of flaws.",
				"When you receive a sub-task:",
				" 1. Understand the specific aspect requiring critique in the delegated task.",
				" 2. Use the think tool as a scratchpad if needed to list assumptions or potential weaknesses.",
				" 3. Critically evaluate the provided information or premise as requested.",
				" 4. Identify potential biases, flaws, or logical fallacies within the scope of the sub-task.",
				" 5. Suggest specific improvements or point out weaknesses constructively.",
				" 6. If your critique reveals significant flaws or outdated assumptions, state this clearly.",
				" 7. Return a response containing your critical evaluation and recommendations.",
				"Focus on rigorous and constructive critique for the delegated evaluation task.",
			},
			Model:    cfg.AgentModel,
			Provider: cfg.Provider,
			Tools:    baseTools(),
		},
		{
			Name:        SpecialistSynthesizer,
			Role:        "Integration Specialist",
			Description: "Integrates information or forms conclusions based on delegated synthesis sub-tasks.",
			Instructions: []string{
				"You will receive specific sub-tasks from the Team Coordinator requiring integration of information, synthesis of ideas, or formation of conclusions.",
				"When you receive a sub-task:",
				" 1. Understand the specific elements needing integration or synthesis in the delegated task.",
				" 2. Use the think tool as a scratchpad if needed to outline connections or draft conclusions.",
				" 3. Connect the provided elements, identify overarching themes, or draw conclusions as requested.",
				" 4. Distill complex inputs into clear, structured insights.",
				" 5. Return a response presenting the synthesized information or conclusions.",
				"Focus on creating clarity and coherence for the delegated synthesis task.",
				"For a final synthesis task, aim for a concise, high-level integration of the core understanding and key takeaways.",
			},
			Model:    cfg.AgentModel,
			Provider: cfg.Provider,
			Tools:    baseTools(),
		},
	}
}
