package pipeline

import (
	"encoding/json"
	"sort"
	"strings"

	"frontline/internal/classifier"
	"frontline/internal/database"
)

// symptomSpecialties maps symptom keywords to the specialties that should
// handle them. Keys are matched as substrings of the lowercased symptom text.
var symptomSpecialties = map[string][]string{
	"chest":     {"Cardiology", "Emergency"},
	"heart":     {"Cardiology", "Emergency"},
	"breathing": {"Pulmonology", "Emergency"},
	"fever":     {"Infectious Disease", "General Medicine"},
	"pain":      {"Emergency", "General Medicine"},
	"accident":  {"Trauma", "Emergency"},
	"broken":    {"Orthopedics", "Emergency"},
}

// rankHospitals orders hospitals by fitness for the case: high-priority cases
// favour an emergency department, each specialty matching the symptoms adds
// weight, and spare bed capacity breaks near ties. Hospitals with no score at
// all are dropped; an empty result means no hospital stood out and the caller
// should fall back to whatever is available.
func rankHospitals(hospitals []database.Hospital, priority classifier.Priority, symptoms string) []database.Hospital {
	wanted := specialtiesFor(symptoms)

	type scored struct {
		hospital database.Hospital
		score    int
	}
	ranked := make([]scored, 0, len(hospitals))

	for _, hospital := range hospitals {
		offered := parseSpecialties(hospital.Specialties)

		score := 0
		if priority == classifier.PriorityHigh && offered["Emergency"] {
			score += 10
		}
		for specialty := range wanted {
			if offered[specialty] {
				score += 3
			}
		}
		if hospital.BedsAvailable > 5 {
			score += 2
		}

		if score > 0 {
			ranked = append(ranked, scored{hospital: hospital, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]database.Hospital, 0, len(ranked))
	for _, entry := range ranked {
		out = append(out, entry.hospital)
	}
	return out
}

func specialtiesFor(symptoms string) map[string]bool {
	text := strings.ToLower(symptoms)
	wanted := make(map[string]bool)
	for keyword, specialties := range symptomSpecialties {
		if strings.Contains(text, keyword) {
			for _, specialty := range specialties {
				wanted[specialty] = true
			}
		}
	}
	return wanted
}

// parseSpecialties decodes the JSON specialty list stored on a hospital row.
// Malformed data reads as no specialties rather than an error.
func parseSpecialties(raw string) map[string]bool {
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil
	}
	offered := make(map[string]bool, len(names))
	for _, name := range names {
		offered[name] = true
	}
	return offered
}
