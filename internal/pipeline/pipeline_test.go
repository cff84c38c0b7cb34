package pipeline

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"frontline/internal/actions"
	"frontline/internal/booking"
	"frontline/internal/classifier"
	"frontline/internal/database"
	"frontline/internal/equity"
	"frontline/internal/followup"
	"frontline/internal/status"
	"frontline/internal/triage"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newTestPipeline(t *testing.T) (*Pipeline, *equity.Tracker) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "pipeline_test.db")
	db, err := database.NewSQLiteAdapter(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite adapter: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	clock := func() time.Time { return testNow }
	tracker := equity.NewTracker(clock)
	p := New(
		db,
		booking.NewScheduler(clock, rand.New(rand.NewSource(1))),
		followup.NewPlanner(clock),
		actions.NewExecutor(clock),
		tracker,
	)
	return p, tracker
}

func enhancedStatus() status.SystemStatus {
	return status.SystemStatus{Mode: status.ModeEnhanced, InternetAvailable: true, LastChecked: testNow}
}

func degradedStatus() status.SystemStatus {
	return status.SystemStatus{Mode: status.ModeDegraded, LastChecked: testNow}
}

func TestProcessFullWorkflowEnhanced(t *testing.T) {
	p, tracker := newTestPipeline(t)

	req := Request{
		Report:  "I'm having severe chest pain and can't breathe properly. I am 70, my phone number is 0300-1234567. I am in Lahore",
		Citizen: &triage.RiskProfile{Age: 70, MedicalConditions: []string{"diabetes"}},
	}
	cc, err := p.Process(context.Background(), req, enhancedStatus())
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if cc.Parsed.EmergencyType != classifier.CategoryMedical {
		t.Fatalf("expected medical, got %q", cc.Parsed.EmergencyType)
	}
	if cc.FinalPriority != classifier.PriorityHigh {
		t.Fatalf("expected final high priority, got %q", cc.FinalPriority)
	}
	if cc.Assessment.AssessmentMethod != triage.MethodDataEnhanced {
		t.Fatalf("expected enhanced triage, got %q", cc.Assessment.AssessmentMethod)
	}
	if cc.Service.Name != "Emergency Department" {
		t.Fatalf("expected Emergency Department, got %q", cc.Service.Name)
	}
	if cc.Service.Provider == "" {
		t.Fatal("expected a Lahore hospital provider")
	}
	if cc.Booking.Appointment.SlotType != "Emergency" {
		t.Fatalf("expected Emergency slot, got %q", cc.Booking.Appointment.SlotType)
	}
	if cc.CaseID == "" {
		t.Fatal("expected persisted case id")
	}

	wantTrace := []string{"parsing", "triage", "guidance", "booking", "followup", "actions"}
	if len(cc.AgentTrace) != len(wantTrace) {
		t.Fatalf("expected trace %v, got %v", wantTrace, cc.AgentTrace)
	}
	for i, stage := range wantTrace {
		if cc.AgentTrace[i] != stage {
			t.Fatalf("expected trace %v, got %v", wantTrace, cc.AgentTrace)
		}
	}

	if tracker.Summarize().TotalRequests24h != 1 {
		t.Fatal("expected demand recorded")
	}
}

func TestProcessDegradedUsesRuleBasedTriage(t *testing.T) {
	p, _ := newTestPipeline(t)

	cc, err := p.Process(context.Background(), Request{Report: "high temperature since yesterday"}, degradedStatus())
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if cc.Assessment.AssessmentMethod != triage.MethodRuleBased {
		t.Fatalf("expected rule_based, got %q", cc.Assessment.AssessmentMethod)
	}
	if cc.FinalPriority != classifier.PriorityMedium {
		t.Fatalf("expected medium, got %q", cc.FinalPriority)
	}
	if cc.Assessment.Urgency != "within_2_hours" {
		t.Fatalf("expected within_2_hours, got %q", cc.Assessment.Urgency)
	}
}

func TestProcessKeywordFreeReportStillCompletes(t *testing.T) {
	p, _ := newTestPipeline(t)

	cc, err := p.Process(context.Background(), Request{Report: "asdfasdf"}, degradedStatus())
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if cc.Parsed.EmergencyType != classifier.CategoryMedical || cc.FinalPriority != classifier.PriorityLow {
		t.Fatalf("expected medical/low default, got %q/%q", cc.Parsed.EmergencyType, cc.FinalPriority)
	}
	if cc.Booking.Appointment.AppointmentID == "" {
		t.Fatal("expected a booking even for the fallback case")
	}
}

func TestProcessPersistsCaseRecord(t *testing.T) {
	p, _ := newTestPipeline(t)

	dsnDB := p.db
	_, err := p.Process(context.Background(), Request{Report: "there is a house fire in Karachi right now"}, degradedStatus())
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	records, err := dsnDB.ListCases(context.Background(), database.CaseFilters{EmergencyType: "fire"})
	if err != nil {
		t.Fatalf("list cases failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 fire case, got %d", len(records))
	}
	if records[0].Location != "Karachi" {
		t.Fatalf("expected Karachi, got %q", records[0].Location)
	}
	if records[0].SystemMode != status.ModeDegraded {
		t.Fatalf("expected degraded mode recorded, got %q", records[0].SystemMode)
	}
}

func TestCityOfStripsGPSSuffix(t *testing.T) {
	if got := cityOf("Karachi (GPS: 24.8607, 67.0011)"); got != "Karachi" {
		t.Fatalf("expected Karachi, got %q", got)
	}
	if got := cityOf("Lahore"); got != "Lahore" {
		t.Fatalf("expected Lahore, got %q", got)
	}
}
