package team

import (
	"reflect"
	"testing"
)

func TestParseDelegation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain array",
			content: `["Analyzer","Critic"]`,
			want:    []string{SpecialistAnalyzer, SpecialistCritic},
		},
		{
			name:    "code fence and prose",
			content: "Sure, here you go:\n```json\n[\"Planner\", \"Researcher\"]\n```",
			want:    []string{SpecialistPlanner, SpecialistResearcher},
		},
		{
			name:    "case insensitive with duplicates",
			content: `["analyzer", "ANALYZER", "critic"]`,
			want:    []string{SpecialistAnalyzer, SpecialistCritic},
		},
		{
			name:    "roster order preserved",
			content: `["Synthesizer","Planner"]`,
			want:    []string{SpecialistPlanner, SpecialistSynthesizer},
		},
		{
			name:    "unknown names dropped",
			content: `["Analyzer","Manager"]`,
			want:    []string{SpecialistAnalyzer},
		},
		{
			name:    "prose fallback",
			content: "I would involve the Critic and maybe the Synthesizer here.",
			want:    []string{SpecialistCritic, SpecialistSynthesizer},
		},
		{
			name:    "unusable response",
			content: "I cannot decide.",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDelegation(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDelegation(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
