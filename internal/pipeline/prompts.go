package pipeline

import (
	"fmt"
	"strings"

	"promptmaster/internal/specialists"
)

const routerInstructions = `You are a prompt classification system. Your job is to analyze a user's prompt and determine which specialized agent should handle it.

Available agents:
%s

Analyze the prompt and user's goal, then select the most appropriate agent.

Respond with ONLY a JSON object in this format:
{"agent": "<agent_name>", "confidence": <0.0-1.0>, "reasoning": "<brief explanation>"}

Rules:
1. Choose "coding" for any programming, debugging, or software-related tasks
2. Choose "creative" for writing, marketing, storytelling, or artistic content
3. Choose "analyst" for data analysis, research, reports, or analytical tasks
4. Choose "general" for prompts that don't clearly fit the above categories
5. Confidence should reflect how certain you are about the classification`

// composeRouterPrompt builds the single classification call: the routing
// framing enumerating every catalog member's description, followed by the
// prompt and goal to classify.
func composeRouterPrompt(promptText, goal string) string {
	var descriptions strings.Builder
	for _, def := range specialists.Catalog() {
		fmt.Fprintf(&descriptions, "- %s: %s\n", def.Kind, def.Description)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, routerInstructions, strings.TrimRight(descriptions.String(), "\n"))
	fmt.Fprintf(&sb, "\n\nPROMPT TO CLASSIFY:\n%q\n\nUSER'S GOAL:\n%q\n\nSelect the appropriate agent and explain your reasoning.\n", promptText, goal)
	return sb.String()
}

// composeEvaluationPrompt builds the single evaluation call: the specialist
// framing, the prompt and goal under review, optional knowledge and project
// context, the rendered rubric, and the response contract.
func composeEvaluationPrompt(def specialists.Definition, ps *State) string {
	var sb strings.Builder

	sb.WriteString(def.Framing)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "You are evaluating a prompt for: %s\n\n", ps.Goal)
	fmt.Fprintf(&sb, "PROMPT TO EVALUATE:\n\"\"\"\n%s\n\"\"\"\n", ps.Prompt)

	if ps.Context != "" {
		sb.WriteString("\nKNOWLEDGE BASE REFERENCE:\n")
		sb.WriteString("Use the following prompt engineering best practices to inform your evaluation and optimization:\n---\n")
		sb.WriteString(ps.Context)
		sb.WriteString("\n---\nApply these techniques when optimizing the prompt. Reference specific techniques in your feedback.\n")
	}

	if ps.PriorContext != "" {
		sb.WriteString("\nPROJECT CONTEXT:\n")
		sb.WriteString("The caller has supplied the following project context. Use it to better understand their domain and provide more relevant optimization:\n---\n")
		sb.WriteString(ps.PriorContext)
		sb.WriteString("\n---\n")
	}

	sb.WriteString("\nSCORING RUBRIC (Total: 100 points):\n")
	for _, c := range def.Rubric {
		fmt.Fprintf(&sb, "- %s (%d points): %s\n", c.Name, c.Weight, c.Description)
	}

	sb.WriteString("\nProvide your response in this exact JSON format:\n{\n")
	sb.WriteString("    \"score\": <total_score_0_to_100>,\n")
	sb.WriteString("    \"rubric_breakdown\": {\n")
	for i, c := range def.Rubric {
		comma := ","
		if i == len(def.Rubric)-1 {
			comma = ""
		}
		fmt.Fprintf(&sb, "        %q: <score>%s\n", c.Name, comma)
	}
	sb.WriteString("    },\n")
	sb.WriteString("    \"feedback\": \"<detailed feedback explaining the scores>\",\n")
	sb.WriteString("    \"optimized_prompt\": \"<your improved version of the prompt>\"\n}\n")
	sb.WriteString("\nBe thorough and constructive in your feedback. The optimized prompt should be significantly better.\n")

	return sb.String()
}
