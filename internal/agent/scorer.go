package agent

import "strings"

// scorePrompt rates a generated prompt on a 0-100 scale. The score rewards
// a usable length, the structural section markers the templates emit, the
// request's complexity tier, and analyzer confidence.
func scorePrompt(prompt string, analysis AnalysisResult) int {
	score := 50

	wordCount := len(strings.Fields(prompt))
	switch {
	case wordCount >= 100 && wordCount <= 500:
		score += 15
	case wordCount >= 50 && wordCount < 100:
		score += 10
	case wordCount > 500:
		score += 5
	}

	if strings.Contains(prompt, "**Task:**") {
		score += 10
	}
	if strings.Contains(prompt, "**Requirements:**") || strings.Contains(prompt, "**Guidelines:**") {
		score += 8
	}
	if strings.Contains(prompt, "**Output") {
		score += 7
	}
	if strings.Contains(prompt, "**Context:**") {
		score += 5
	}

	switch analysis.Complexity {
	case ComplexityHigh:
		score += 5
	case ComplexityMedium:
		score += 3
	}

	score += int(analysis.Confidence * 10)

	if score > 100 {
		score = 100
	}
	return score
}

// heuristicSuggestions is the deterministic fallback when the provider can't
// generate improvement suggestions. Always at most three.
func heuristicSuggestions(analysis AnalysisResult, qualityScore int) []string {
	var suggestions []string

	if qualityScore < 70 {
		suggestions = append(suggestions, "Consider adding more specific details to your request")
	}
	if analysis.Complexity == ComplexityLow {
		suggestions = append(suggestions, "Try including more context about your requirements")
	}
	if len(analysis.KeyTopics) < 2 {
		suggestions = append(suggestions, "Mention specific technologies or tools you want to use")
	}

	switch analysis.Domain {
	case DomainCoding:
		suggestions = append(suggestions, "Specify expected input/output formats for better results")
	case DomainResearch:
		suggestions = append(suggestions, "Include the scope and timeframe for your research")
	case DomainDataScience:
		suggestions = append(suggestions, "Describe your dataset characteristics if applicable")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your prompt is well-structured! Consider adding examples for even better results")
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
