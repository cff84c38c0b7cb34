package triage

import (
	"strings"

	"frontline/internal/classifier"
)

// highRiskConditions match case-insensitively and exactly; each one present
// adds 2 to the risk score.
var highRiskConditions = map[string]bool{
	"heart disease": true,
	"diabetes":      true,
	"asthma":        true,
	"pregnancy":     true,
}

// RiskProfile is the citizen data a risk assessment runs on. It is computed
// fresh per request and has no lifecycle beyond it.
type RiskProfile struct {
	Age               int      `json:"age"`
	MedicalConditions []string `json:"medical_conditions"`
}

// AssessRisk derives a risk tier from age and known conditions. Pure function:
// identical input always yields the identical tier.
func AssessRisk(profile RiskProfile) classifier.Priority {
	score := 0

	// The two age rules are mutually exclusive.
	if profile.Age < 5 || profile.Age > 65 {
		score += 2
	} else if profile.Age < 18 || profile.Age > 50 {
		score++
	}

	for _, condition := range profile.MedicalConditions {
		if highRiskConditions[strings.ToLower(condition)] {
			score += 2
		}
	}

	switch {
	case score >= 3:
		return classifier.PriorityHigh
	case score >= 1:
		return classifier.PriorityMedium
	default:
		return classifier.PriorityLow
	}
}

var (
	symptomPoints = map[classifier.Priority]int{
		classifier.PriorityHigh:   3,
		classifier.PriorityMedium: 2,
		classifier.PriorityLow:    1,
	}
	riskPoints = map[classifier.Priority]int{
		classifier.PriorityHigh:   2,
		classifier.PriorityMedium: 1,
		classifier.PriorityLow:    0,
	}
)

// Blend combines a symptom severity tier with a citizen risk tier into the
// final priority every downstream stage consumes. Monotonic in both inputs.
func Blend(symptomPriority, riskTier classifier.Priority) classifier.Priority {
	points, ok := symptomPoints[symptomPriority]
	if !ok {
		points = 1
	}
	points += riskPoints[riskTier]

	switch {
	case points >= 4:
		return classifier.PriorityHigh
	case points >= 2:
		return classifier.PriorityMedium
	default:
		return classifier.PriorityLow
	}
}
