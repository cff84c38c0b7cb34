package classifier

import (
	"strings"
	"testing"
)

func TestClassifySevereChestPainIsMedicalHigh(t *testing.T) {
	category, priority := Classify("I'm having severe chest pain and can't breathe properly")
	if category != CategoryMedical {
		t.Fatalf("expected medical, got %q", category)
	}
	if priority != PriorityHigh {
		t.Fatalf("expected high, got %q", priority)
	}
}

func TestClassifyParkingViolationIsPoliceLow(t *testing.T) {
	category, priority := Classify("parking violation near my house")
	if category != CategoryPolice {
		t.Fatalf("expected police, got %q", category)
	}
	if priority != PriorityLow {
		t.Fatalf("expected low, got %q", priority)
	}
}

func TestClassifyHouseFireIsFireHigh(t *testing.T) {
	category, priority := Classify("there is a house fire with heavy smoke")
	if category != CategoryFire {
		t.Fatalf("expected fire, got %q", category)
	}
	if priority != PriorityHigh {
		t.Fatalf("expected high, got %q", priority)
	}
}

func TestClassifyKeywordFreeInputFallsBackToMedicalLow(t *testing.T) {
	category, priority := Classify("asdfasdf")
	if category != CategoryMedical {
		t.Fatalf("expected medical fallback, got %q", category)
	}
	if priority != PriorityLow {
		t.Fatalf("expected low, got %q", priority)
	}
}

func TestClassifyEmptyInputFallsBackToMedicalLow(t *testing.T) {
	category, priority := Classify("")
	if category != CategoryMedical {
		t.Fatalf("expected medical fallback, got %q", category)
	}
	if priority != PriorityLow {
		t.Fatalf("expected low, got %q", priority)
	}
}

func TestClassifyFallbackIndicatorIsMedium(t *testing.T) {
	// "thief" is a police fallback indicator but not a taxonomy phrase.
	category, priority := Classify("a thief was here")
	if category != CategoryPolice {
		t.Fatalf("expected police, got %q", category)
	}
	if priority != PriorityMedium {
		t.Fatalf("expected medium for nonzero indicator count, got %q", priority)
	}
}

func TestClassifyTieBreakPrefersMedical(t *testing.T) {
	// "fracture" (medical, medium tier) and "theft" (police, medium tier) each
	// score exactly 2; context boosts apply to both categories equally, so the
	// tie must resolve in declared order.
	category, _ := Classify("fracture theft")
	if category != CategoryMedical {
		t.Fatalf("expected medical to win the tie, got %q", category)
	}
}

func TestClassifyTieBreakPrefersPoliceOverFire(t *testing.T) {
	// "theft" (police) against "sparks" (fire), both single-phrase medium hits.
	category, _ := Classify("theft sparks")
	if category != CategoryPolice {
		t.Fatalf("expected police to win the tie, got %q", category)
	}
}

func TestClassifyAlwaysReturnsValidPair(t *testing.T) {
	inputs := []string{
		"", " ", "asdfasdf", "!!!???", "the quick brown fox",
		"severe chest pain right now multiple people hurt",
		strings.Repeat("a", 2048),
	}
	for _, input := range inputs {
		category, priority := Classify(input)
		switch category {
		case CategoryMedical, CategoryPolice, CategoryFire:
		default:
			t.Fatalf("input %q: unexpected category %q", input, category)
		}
		switch priority {
		case PriorityHigh, PriorityMedium, PriorityLow:
		default:
			t.Fatalf("input %q: unexpected priority %q", input, priority)
		}
	}
}

func TestParsePopulatesResult(t *testing.T) {
	result := Parse("My name is Ahmed Khan, I am 45. I'm having severe chest pain in Karachi. My phone number is 0300-1234567", nil)

	if result.EmergencyType != CategoryMedical {
		t.Fatalf("expected medical, got %q", result.EmergencyType)
	}
	if result.Priority != PriorityHigh {
		t.Fatalf("expected high, got %q", result.Priority)
	}
	if result.Location != "Karachi" {
		t.Fatalf("expected Karachi, got %q", result.Location)
	}
	if result.Citizen.Age != 45 {
		t.Fatalf("expected age 45, got %d", result.Citizen.Age)
	}
	if result.Citizen.Phone == "" {
		t.Fatal("expected phone to be extracted")
	}
	if result.Summary == "" {
		t.Fatal("expected a summary")
	}
	if len(result.SuggestedActions) == 0 {
		t.Fatal("expected suggested actions")
	}
}

func TestParseMedicalKeepsSymptomSentences(t *testing.T) {
	result := Parse("I called earlier. My father has chest pain. He lives nearby", nil)
	if result.Symptoms != "My father has chest pain" {
		t.Fatalf("expected symptom sentence only, got %q", result.Symptoms)
	}
	if result.Citizen.IncidentDetails != "" {
		t.Fatal("expected no incident details for medical reports")
	}
}

func TestParseNonMedicalKeepsFullIncident(t *testing.T) {
	report := "someone is breaking in next door"
	result := Parse(report, nil)
	if result.EmergencyType != CategoryPolice {
		t.Fatalf("expected police, got %q", result.EmergencyType)
	}
	if result.Symptoms != report {
		t.Fatalf("expected full incident text, got %q", result.Symptoms)
	}
	if result.Citizen.IncidentDetails != report {
		t.Fatalf("expected incident details carried, got %q", result.Citizen.IncidentDetails)
	}
}

func TestConfidenceStaysWithinBounds(t *testing.T) {
	inputs := []string{
		"",
		"asdfasdf",
		"severe chest pain heart attack stroke unconscious seizure bleeding in Karachi, my name is Ali, I am 30, phone 03001234567",
		strings.Repeat("fire ", 200),
	}
	for _, input := range inputs {
		result := Parse(input, nil)
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Fatalf("input %q: confidence %f out of [0,1]", input, result.Confidence)
		}
	}
}

func TestConfidenceGrowsWithSignals(t *testing.T) {
	bare := Parse("asdfasdf", nil)
	rich := Parse("severe chest pain in Karachi, my name is Ali, I am 30", nil)
	if rich.Confidence <= bare.Confidence {
		t.Fatalf("expected richer report to score higher: %f vs %f", rich.Confidence, bare.Confidence)
	}
}
