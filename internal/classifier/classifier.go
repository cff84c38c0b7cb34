package classifier

import (
	"fmt"
	"strings"
)

// fallbackIndicators are scanned only when every taxonomy score is zero.
// Iteration follows categoryOrder so ties resolve medical, then police, then fire.
var fallbackIndicators = map[Category][]string{
	CategoryMedical: {"hurt", "pain", "sick", "ill", "injured", "bleeding", "unconscious", "fell", "accident"},
	CategoryPolice:  {"crime", "criminal", "thief", "violence", "threat", "danger", "suspicious", "illegal"},
	CategoryFire:    {"smoke", "burning", "hot", "explosion", "gas", "chemical", "hazard"},
}

var symptomIndicators = []string{
	"pain", "hurt", "ache", "feel", "symptom", "sick", "ill",
	"bleeding", "fever", "dizzy", "nausea", "vomit", "breath",
}

// CitizenData carries the personal fields extracted from a report.
type CitizenData struct {
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	Phone             string   `json:"phone"`
	MedicalConditions []string `json:"medical_conditions"`
	IncidentDetails   string   `json:"incident_details"`
}

// Result is the structured output of parsing one free-text report. It is a
// request-scoped value; nothing here is persisted by the classifier itself.
type Result struct {
	EmergencyType    Category    `json:"emergency_type"`
	Priority         Priority    `json:"priority"`
	Summary          string      `json:"summary"`
	Symptoms         string      `json:"symptoms"`
	Location         string      `json:"location"`
	Citizen          CitizenData `json:"citizen_data"`
	Confidence       float64     `json:"confidence"`
	SuggestedActions []string    `json:"suggested_actions"`
}

// Classify scores the report against all three category taxonomies and returns
// the winning category and its priority. Keyword-free input routes through the
// indicator fallback and always terminates in a defined default.
func Classify(report string) (Category, Priority) {
	text := strings.ToLower(report)

	scores := make(map[Category]ScoreVector, len(categoryOrder))
	maxScore := 0
	for _, category := range categoryOrder {
		v := adjustContext(text, scoreKeywords(text, loadedTaxonomy[category]))
		scores[category] = v
		if v.Total > maxScore {
			maxScore = v.Total
		}
	}

	if maxScore == 0 {
		return classifyFallback(text)
	}

	// Declared order doubles as the tie-break order.
	for _, category := range categoryOrder {
		if scores[category].Total == maxScore {
			return category, priorityFromScores(scores[category])
		}
	}
	return CategoryMedical, PriorityLow
}

func classifyFallback(text string) (Category, Priority) {
	best := CategoryMedical
	bestCount := 0
	for _, category := range categoryOrder {
		count := 0
		for _, indicator := range fallbackIndicators[category] {
			if strings.Contains(text, indicator) {
				count++
			}
		}
		if count > bestCount {
			best = category
			bestCount = count
		}
	}

	if bestCount == 0 {
		return CategoryMedical, PriorityLow
	}
	return best, PriorityMedium
}

// Parse runs the full parsing stage: classification, location and personal-info
// extraction, symptom isolation, and the derived confidence metric. gps may be
// nil. Parse never fails; degenerate input produces the documented defaults.
func Parse(report string, gps *GPS) Result {
	category, priority := Classify(report)
	location := ExtractLocation(report, gps)
	person := ExtractPersonalInfo(report)

	incident := ""
	if category != CategoryMedical {
		incident = report
	}

	return Result{
		EmergencyType: category,
		Priority:      priority,
		Summary:       summarize(report, category, priority),
		Symptoms:      extractSymptoms(report, category),
		Location:      location,
		Citizen: CitizenData{
			Name:              person.Name,
			Age:               person.Age,
			Phone:             person.Phone,
			MedicalConditions: []string{},
			IncidentDetails:   incident,
		},
		Confidence:       confidence(report, category),
		SuggestedActions: suggestActions(category, priority),
	}
}

// extractSymptoms keeps the sentences that mention a symptom indicator for
// medical reports. Police and fire reports keep the full incident text.
func extractSymptoms(report string, category Category) string {
	if category != CategoryMedical {
		return report
	}

	var kept []string
	for _, sentence := range strings.Split(report, ".") {
		lower := strings.ToLower(sentence)
		if containsAny(lower, symptomIndicators) {
			kept = append(kept, strings.TrimSpace(sentence))
		}
	}

	if len(kept) == 0 {
		return report
	}
	return strings.Join(kept, ". ")
}

// summarize labels the report with up to two matched taxonomy phrases.
func summarize(report string, category Category, priority Priority) string {
	text := strings.ToLower(report)
	phrases := loadedTaxonomy[category]

	var matched []string
	for _, tier := range [][]string{phrases.High, phrases.Medium, phrases.Low} {
		for _, phrase := range tier {
			if strings.Contains(text, phrase) {
				matched = append(matched, phrase)
			}
		}
	}

	if len(matched) == 0 {
		return fmt.Sprintf("%s priority %s emergency", priority, category)
	}
	if len(matched) > 2 {
		matched = matched[:2]
	}
	return fmt.Sprintf("%s priority %s emergency involving %s", priority, category, strings.Join(matched, ", "))
}

// confidence derives an informational score in [0,1]. It is not a probability
// and nothing routes on it.
func confidence(report string, category Category) float64 {
	text := strings.ToLower(report)
	score := 0.5

	keywordTotal := plainScore(text, loadedTaxonomy[category])
	if keywordTotal > 0 {
		boost := float64(keywordTotal) * 0.1
		if boost > 0.4 {
			boost = 0.4
		}
		score += boost
	}

	if location := ExtractLocation(report, nil); location != defaultCity {
		score += 0.1
	}

	person := ExtractPersonalInfo(report)
	score += float64(person.fieldCount()) * 0.05

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func suggestActions(category Category, priority Priority) []string {
	switch priority {
	case PriorityHigh:
		actions := []string{"Immediately contact emergency services"}
		switch category {
		case CategoryMedical:
			actions = append(actions,
				"Stay calm and keep the person conscious if possible",
				"Do not move the person unless in immediate danger",
				"Be ready to provide CPR if needed",
			)
		case CategoryPolice:
			actions = append(actions,
				"Ensure your safety first",
				"Move to a safe location if possible",
				"Do not confront the perpetrator",
			)
		case CategoryFire:
			actions = append(actions,
				"Evacuate immediately if safe to do so",
				"Stay low to avoid smoke",
				"Do not use elevators",
			)
		}
		return actions
	case PriorityMedium:
		return []string{
			"Seek appropriate medical/emergency attention within 2 hours",
			"Monitor the situation closely",
		}
	default:
		return []string{
			"Schedule appropriate care when convenient",
			"Monitor symptoms and seek help if they worsen",
		}
	}
}
