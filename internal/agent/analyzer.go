package agent

import (
	"sort"
	"strings"
)

// Domain values. Every AnalysisResult.Domain is one of these four.
const (
	DomainCoding      = "coding"
	DomainResearch    = "research"
	DomainDataScience = "data_science"
	DomainGeneral     = "general"
)

// Complexity tiers.
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

const maxConfidence = 0.98

// AnalysisResult is the analyzer's verdict on a single request. It is built
// fresh per call and consumed immediately; nothing persists it.
type AnalysisResult struct {
	Domain           string
	TaskType         string
	Complexity       string
	KeyTopics        []string
	Confidence       float64
	DetectedLanguage string
}

// Analyzer computes domain, task type, complexity, key topics, and a
// confidence score from raw text. It is stateless; the same input always
// yields the same result.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze runs the full input analysis. explicitDomain pins the domain when
// it names a known domain other than "auto"; everything else is detected.
func (a *Analyzer) Analyze(userInput, contextText, explicitDomain string) AnalysisResult {
	var domain string
	if _, known := domainTasks[explicitDomain]; known && explicitDomain != "auto" {
		domain = explicitDomain
	} else {
		domain = a.detectDomain(userInput, contextText)
	}

	taskType := a.detectTaskType(userInput, domain)

	detectedLanguage := "general"
	if domain == DomainCoding {
		detectedLanguage = a.detectProgrammingLanguage(userInput + " " + contextText)
	}

	return AnalysisResult{
		Domain:           domain,
		TaskType:         taskType,
		Complexity:       a.assessComplexity(userInput, contextText),
		KeyTopics:        a.extractKeyTopics(userInput),
		Confidence:       a.calculateConfidence(userInput, taskType),
		DetectedLanguage: detectedLanguage,
	}
}

// detectDomain scores each domain by keyword hits over input+context. The
// coding domain earns a flat bonus when code-looking syntax is present, and
// high-specificity ML terms count triple for data science. Ties resolve in
// the fixed domain enumeration order; all-zero scores default to general.
func (a *Analyzer) detectDomain(userInput, contextText string) string {
	text := strings.ToLower(userInput + " " + contextText)

	scores := map[string]int{
		DomainCoding:      0,
		DomainResearch:    0,
		DomainDataScience: 0,
		DomainGeneral:     0,
	}

	for _, kw := range codingKeywords {
		if strings.Contains(text, kw) {
			scores[DomainCoding]++
		}
	}
	if codeSyntaxRegex.MatchString(text) {
		scores[DomainCoding] += codeSyntaxBonus
	}
	for _, kw := range researchKeywords {
		if strings.Contains(text, kw) {
			scores[DomainResearch]++
		}
	}
	for _, kw := range dataScienceKeywords {
		if strings.Contains(text, kw) {
			scores[DomainDataScience]++
		}
	}
	for _, kw := range mlSpecificKeywords {
		if strings.Contains(text, kw) {
			scores[DomainDataScience] += 3
		}
	}

	maxScore := 0
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore == 0 {
		return DomainGeneral
	}
	for _, domain := range domainOrder {
		if scores[domain] == maxScore {
			return domain
		}
	}
	return DomainGeneral
}

// detectTaskType picks the task within the domain's fixed list by keyword
// hits over the input only (not context). Ties break in task-list order;
// no hits default to the domain's first task.
func (a *Analyzer) detectTaskType(userInput, domain string) string {
	text := strings.ToLower(userInput)
	tasks := domainTasks[domain]
	if len(tasks) == 0 {
		return "general_query"
	}

	bestTask := tasks[0]
	bestScore := 0
	for _, task := range tasks {
		score := 0
		for _, kw := range taskKeywords[task] {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestTask = task
		}
	}
	return bestTask
}

// detectProgrammingLanguage returns the first language in table order with
// any keyword hit.
func (a *Analyzer) detectProgrammingLanguage(text string) string {
	text = strings.ToLower(text)
	for _, entry := range languageTable {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.name
			}
		}
	}
	return defaultLanguage
}

func (a *Analyzer) assessComplexity(userInput, contextText string) string {
	text := userInput + " " + contextText
	wordCount := len(strings.Fields(text))

	lower := strings.ToLower(text)
	indicatorHits := 0
	for _, ind := range complexityIndicators {
		if strings.Contains(lower, ind) {
			indicatorHits++
		}
	}

	switch {
	case wordCount > 200 || indicatorHits >= 3:
		return ComplexityHigh
	case wordCount > 50 || indicatorHits >= 1:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// extractKeyTopics returns up to four of the most frequent meaningful words,
// ties broken by first appearance.
func (a *Analyzer) extractKeyTopics(userInput string) []string {
	text := strings.ToLower(userInput)
	words := topicWordRegex.FindAllString(text, -1)

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, word := range words {
		if _, stop := stopWords[word]; stop || len(word) <= 2 {
			continue
		}
		if _, seen := freq[word]; !seen {
			firstSeen[word] = i
		}
		freq[word]++
	}

	topics := make([]string, 0, len(freq))
	for word := range freq {
		topics = append(topics, word)
	}
	sort.Slice(topics, func(i, j int) bool {
		if freq[topics[i]] != freq[topics[j]] {
			return freq[topics[i]] > freq[topics[j]]
		}
		return firstSeen[topics[i]] < firstSeen[topics[j]]
	})

	if len(topics) > 4 {
		topics = topics[:4]
	}
	return topics
}

// calculateConfidence starts at 0.7 and adds bonuses for longer input and
// task-keyword corroboration, capped at 0.98.
func (a *Analyzer) calculateConfidence(userInput, taskType string) float64 {
	confidence := 0.7

	wordCount := len(strings.Fields(userInput))
	if wordCount > 50 {
		confidence += 0.15
	} else if wordCount > 20 {
		confidence += 0.1
	}

	text := strings.ToLower(userInput)
	matches := 0
	for _, kw := range taskKeywords[taskType] {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	if matches >= 3 {
		confidence += 0.1
	} else if matches >= 1 {
		confidence += 0.05
	}

	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return confidence
}
