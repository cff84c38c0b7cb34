// Package triage turns a parsed emergency report into the authoritative final
// priority, either by blending historical patterns with citizen risk factors
// (enhanced mode) or by a pure keyword lookup (degraded mode).
package triage

import (
	"strings"

	"frontline/internal/classifier"
)

const (
	MethodDataEnhanced = "data_enhanced"
	MethodRuleBased    = "rule_based"
)

// Assessment is the triage stage output consumed by service matching, booking,
// and the autonomous action generator.
type Assessment struct {
	Priority         classifier.Priority `json:"priority"`
	Urgency          string              `json:"urgency"`
	RiskFactors      classifier.Priority `json:"risk_factors"`
	SymptomSeverity  classifier.Priority `json:"symptom_severity"`
	AssessmentMethod string              `json:"assessment_method"`
	Confidence       string              `json:"confidence"`
}

// degraded-mode indicator lists; checked for presence, not counted.
var (
	degradedHighKeywords = []string{
		"chest pain", "heart attack", "stroke", "unconscious",
		"bleeding heavily", "difficulty breathing", "severe burn",
	}
	degradedMediumKeywords = []string{
		"fever", "pain", "accident", "broken", "cut", "vomiting",
		"dizziness", "high temperature",
	}
)

// Enhanced blends the historical pattern signal with citizen risk factors.
func Enhanced(symptoms string, profile RiskProfile, cases []HistoricalCase) Assessment {
	severity := SymptomPriority(symptoms, cases)
	risk := AssessRisk(profile)
	final := Blend(severity, risk)

	return Assessment{
		Priority:         final,
		Urgency:          urgencyFor(final),
		RiskFactors:      risk,
		SymptomSeverity:  severity,
		AssessmentMethod: MethodDataEnhanced,
		Confidence:       confidenceLabel(symptoms, final),
	}
}

// Degraded is the offline path: a two-tier keyword lookup with no historical
// or citizen context.
func Degraded(symptoms string) Assessment {
	text := strings.ToLower(symptoms)

	priority := classifier.PriorityLow
	switch {
	case containsAny(text, degradedHighKeywords):
		priority = classifier.PriorityHigh
	case containsAny(text, degradedMediumKeywords):
		priority = classifier.PriorityMedium
	}

	confidence := "medium"
	if priority == classifier.PriorityHigh {
		confidence = "high"
	}

	return Assessment{
		Priority:         priority,
		Urgency:          urgencyFor(priority),
		RiskFactors:      classifier.PriorityLow,
		SymptomSeverity:  priority,
		AssessmentMethod: MethodRuleBased,
		Confidence:       confidence,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func urgencyFor(priority classifier.Priority) string {
	switch priority {
	case classifier.PriorityHigh:
		return "immediate"
	case classifier.PriorityMedium:
		return "within_2_hours"
	default:
		return "within_24_hours"
	}
}

// confidenceLabel grades the enhanced assessment by symptom specificity.
func confidenceLabel(symptoms string, priority classifier.Priority) string {
	words := len(strings.Fields(symptoms))
	switch {
	case words >= 5 && priority == classifier.PriorityHigh:
		return "very_high"
	case words >= 3:
		return "high"
	default:
		return "medium"
	}
}
