package triage

import (
	"strings"

	"frontline/internal/classifier"
)

// HistoricalCase is one prior emergency request used for pattern matching.
type HistoricalCase struct {
	Symptoms string              `json:"symptoms"`
	Priority classifier.Priority `json:"priority"`
}

// SymptomPriority scores free-text symptoms against historical cases: every
// high-priority case whose symptom text contains any token of the input counts
// as a match, and the match ratio over the whole record set picks the tier.
// Zero tokens or zero records short-circuit to low.
func SymptomPriority(symptoms string, cases []HistoricalCase) classifier.Priority {
	tokens := strings.Fields(strings.ToLower(symptoms))
	if len(tokens) == 0 {
		return classifier.PriorityLow
	}
	if len(cases) == 0 {
		return classifier.PriorityLow
	}

	matches := 0
	for _, record := range cases {
		recorded := strings.ToLower(record.Symptoms)
		for _, token := range tokens {
			if strings.Contains(recorded, token) {
				if record.Priority == classifier.PriorityHigh {
					matches++
				}
				break
			}
		}
	}

	ratio := float64(matches) / float64(len(cases))
	switch {
	case ratio > 0.3:
		return classifier.PriorityHigh
	case ratio > 0.1:
		return classifier.PriorityMedium
	default:
		return classifier.PriorityLow
	}
}
