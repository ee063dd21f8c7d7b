package team

import (
	"encoding/json"
	"strings"
)

const delegationPrompt = `Decide which specialists are strictly necessary to address the thought below.
Available specialists and their expertise:
- Planner: planning, strategy, process design
- Researcher: information gathering, fact verification (has web search)
- Analyzer: analysis, pattern identification, logical evaluation
- Critic: critique, evaluation of assumptions, identification of flaws
- Synthesizer: integration of information, forming conclusions

Prioritize efficiency: pick the MINIMUM set that covers the thought's primary actions.
Respond with ONLY a JSON array of specialist names, e.g. ["Analyzer","Critic"].`

// ParseDelegation extracts the specialist subset from a delegation
// response. It tolerates code fences and surrounding prose, matches
// names case-insensitively, drops unknown names and duplicates, and
// preserves roster order. An empty result means the response was
// unusable.
func ParseDelegation(content string) []string {
	raw := extractJSONArray(content)

	var names []string
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			names = nil
		}
	}

	// Fall back to scanning for specialist names mentioned in prose.
	if len(names) == 0 {
		for _, name := range SpecialistNames {
			if strings.Contains(strings.ToLower(content), strings.ToLower(name)) {
				names = append(names, name)
			}
		}
		return names
	}

	selected := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		for _, known := range SpecialistNames {
			if strings.EqualFold(n, known) {
				selected[known] = true
			}
		}
	}

	var out []string
	for _, known := range SpecialistNames {
		if selected[known] {
			out = append(out, known)
		}
	}
	return out
}

func extractJSONArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return content[start : end+1]
}
