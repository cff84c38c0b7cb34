package pipeline

import (
	"context"
	"testing"

	"frontline/internal/classifier"
	"frontline/internal/database"
)

func TestRankHospitalsPrefersSymptomSpecialty(t *testing.T) {
	hospitals := []database.Hospital{
		{Name: "General Ward", Specialties: `["Emergency","General Medicine"]`, BedsAvailable: 18},
		{Name: "Cardiac Centre", Specialties: `["Emergency","Cardiology"]`, BedsAvailable: 10},
	}

	ranked := rankHospitals(hospitals, classifier.PriorityHigh, "heart attack symptoms")
	if len(ranked) != 2 {
		t.Fatalf("expected both hospitals ranked, got %d", len(ranked))
	}
	if ranked[0].Name != "Cardiac Centre" {
		t.Fatalf("expected cardiology match first, got %q", ranked[0].Name)
	}
}

func TestRankHospitalsBedCapacityBreaksTies(t *testing.T) {
	hospitals := []database.Hospital{
		{Name: "Crowded", Specialties: `["Emergency"]`, BedsAvailable: 4},
		{Name: "Open", Specialties: `["Emergency"]`, BedsAvailable: 12},
	}

	ranked := rankHospitals(hospitals, classifier.PriorityHigh, "")
	if len(ranked) != 2 {
		t.Fatalf("expected both hospitals ranked, got %d", len(ranked))
	}
	if ranked[0].Name != "Open" {
		t.Fatalf("expected spare capacity to win, got %q", ranked[0].Name)
	}
}

func TestRankHospitalsDropsUnsuitableHospitals(t *testing.T) {
	hospitals := []database.Hospital{
		{Name: "Skin Clinic", Specialties: `["Dermatology"]`, BedsAvailable: 4},
	}

	if ranked := rankHospitals(hospitals, classifier.PriorityLow, "itchy rash"); len(ranked) != 0 {
		t.Fatalf("expected no suitable hospitals, got %d", len(ranked))
	}
}

func TestRankHospitalsToleratesMalformedSpecialties(t *testing.T) {
	hospitals := []database.Hospital{
		{Name: "Broken Row", Specialties: `not-json`, BedsAvailable: 20},
	}

	ranked := rankHospitals(hospitals, classifier.PriorityHigh, "chest pain")
	if len(ranked) != 1 || ranked[0].Name != "Broken Row" {
		t.Fatalf("expected bed capacity alone to keep the hospital, got %v", ranked)
	}
}

func TestServiceStagePicksBestMatchedHospital(t *testing.T) {
	p, _ := newTestPipeline(t)

	req := Request{Report: "Severe bleeding after a road accident. We are in Karachi."}
	cc, err := p.Process(context.Background(), req, enhancedStatus())
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if cc.Parsed.EmergencyType != classifier.CategoryMedical {
		t.Fatalf("expected medical, got %q", cc.Parsed.EmergencyType)
	}
	// The trauma centre outranks the first hospital row for accident cases.
	if cc.Service.Provider != "Civil Hospital Karachi" {
		t.Fatalf("expected trauma centre provider, got %q", cc.Service.Provider)
	}
}
