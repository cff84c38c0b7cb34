// Package pipeline runs a report end to end: parse, triage, service matching,
// booking, follow-up, autonomous actions. State moves between stages through
// an explicit CaseContext value; every stage consumes a context and returns an
// updated copy, so fields cannot silently collide.
package pipeline

import (
	"context"
	"log"
	"strings"

	"frontline/internal/actions"
	"frontline/internal/booking"
	"frontline/internal/classifier"
	"frontline/internal/database"
	"frontline/internal/equity"
	"frontline/internal/followup"
	"frontline/internal/status"
	"frontline/internal/triage"
)

// CaseContext carries everything the stages produce for one report.
type CaseContext struct {
	Report       string              `json:"report"`
	SystemStatus status.SystemStatus `json:"system_status"`

	Parsed        classifier.Result   `json:"parsed"`
	Assessment    triage.Assessment   `json:"assessment"`
	FinalPriority classifier.Priority `json:"priority"`

	Service       actions.Service  `json:"recommended_service"`
	Booking       booking.Booking  `json:"booking"`
	Followup      followup.Plan    `json:"followup"`
	Actions       []actions.Action `json:"actions_taken"`
	ActionSummary actions.Summary  `json:"action_summary"`

	CaseID     string   `json:"case_id"`
	AgentTrace []string `json:"agent_trace"`
}

// Request is the inbound payload for a full workflow run.
type Request struct {
	Report  string              `json:"report"`
	GPS     *classifier.GPS     `json:"location,omitempty"`
	Citizen *triage.RiskProfile `json:"citizen,omitempty"`
}

// Pipeline wires the stage collaborators together.
type Pipeline struct {
	db        database.Service
	scheduler *booking.Scheduler
	planner   *followup.Planner
	executor  *actions.Executor
	tracker   *equity.Tracker
}

func New(db database.Service, scheduler *booking.Scheduler, planner *followup.Planner, executor *actions.Executor, tracker *equity.Tracker) *Pipeline {
	return &Pipeline{
		db:        db,
		scheduler: scheduler,
		planner:   planner,
		executor:  executor,
		tracker:   tracker,
	}
}

// Process runs the full workflow. The system status is passed in by the
// caller; stages never consult the checker themselves.
func (p *Pipeline) Process(ctx context.Context, req Request, sys status.SystemStatus) (CaseContext, error) {
	cc := CaseContext{Report: req.Report, SystemStatus: sys}

	cc = p.parseStage(cc, req.GPS)
	cc = p.triageStage(ctx, cc, req.Citizen)
	cc = p.serviceStage(ctx, cc)
	cc = p.bookingStage(cc)
	cc = p.followupStage(cc)
	cc = p.actionStage(cc)

	if err := p.persistStage(ctx, &cc); err != nil {
		return cc, err
	}
	return cc, nil
}

func (p *Pipeline) parseStage(cc CaseContext, gps *classifier.GPS) CaseContext {
	cc.Parsed = classifier.Parse(cc.Report, gps)
	cc.FinalPriority = cc.Parsed.Priority
	cc.AgentTrace = append(cc.AgentTrace, "parsing")
	return cc
}

// triageStage refines the keyword priority. Enhanced mode blends the
// historical pattern signal with citizen risk factors; degraded mode (or a
// failed historical lookup) takes the pure rule-based path.
func (p *Pipeline) triageStage(ctx context.Context, cc CaseContext, profile *triage.RiskProfile) CaseContext {
	symptoms := cc.Parsed.Symptoms

	if cc.SystemStatus.Mode == status.ModeEnhanced {
		records, err := p.db.ListHistorical(ctx)
		if err == nil {
			cc.Assessment = triage.Enhanced(symptoms, p.resolveProfile(cc, profile), toHistoricalCases(records))
			cc.FinalPriority = cc.Assessment.Priority
			cc.AgentTrace = append(cc.AgentTrace, "triage")
			return cc
		}
		log.Printf("historical lookup failed, falling back to rule-based triage: %v", err)
	}

	cc.Assessment = triage.Degraded(symptoms)
	cc.FinalPriority = cc.Assessment.Priority
	cc.AgentTrace = append(cc.AgentTrace, "triage")
	return cc
}

func (p *Pipeline) resolveProfile(cc CaseContext, profile *triage.RiskProfile) triage.RiskProfile {
	if profile != nil {
		return *profile
	}
	return triage.RiskProfile{
		Age:               cc.Parsed.Citizen.Age,
		MedicalConditions: cc.Parsed.Citizen.MedicalConditions,
	}
}

func (p *Pipeline) serviceStage(ctx context.Context, cc CaseContext) CaseContext {
	cc.Service = actions.MatchService(cc.Parsed.EmergencyType, cc.FinalPriority, cc.Parsed.Location)

	if cc.Parsed.EmergencyType == classifier.CategoryMedical {
		hospitals, err := p.db.HospitalsByCity(ctx, cityOf(cc.Parsed.Location))
		if err == nil && len(hospitals) > 0 {
			if ranked := rankHospitals(hospitals, cc.FinalPriority, cc.Parsed.Symptoms); len(ranked) > 0 {
				cc.Service.Provider = ranked[0].Name
			} else {
				cc.Service.Provider = hospitals[0].Name
			}
		}
	}

	cc.AgentTrace = append(cc.AgentTrace, "guidance")
	return cc
}

func (p *Pipeline) bookingStage(cc CaseContext) CaseContext {
	serviceName := cc.Service.Name
	if cc.Service.Provider != "" {
		serviceName = cc.Service.Provider
	}

	cc.Booking = p.scheduler.Book(cc.FinalPriority, cc.Parsed.EmergencyType, serviceName, cc.Parsed.Location, cc.Parsed.Citizen)
	cc.AgentTrace = append(cc.AgentTrace, "booking")
	return cc
}

func (p *Pipeline) followupStage(cc CaseContext) CaseContext {
	cc.Followup = p.planner.Build(cc.FinalPriority, cc.Parsed.EmergencyType, cc.Booking.Appointment.AppointmentTime, cc.Parsed.Citizen)
	cc.AgentTrace = append(cc.AgentTrace, "followup")
	return cc
}

func (p *Pipeline) actionStage(cc CaseContext) CaseContext {
	cc.Actions = p.executor.Execute(cc.Parsed.EmergencyType, cc.FinalPriority, cc.Parsed.Location, cc.Parsed.Citizen, cc.Service)
	cc.ActionSummary = actions.Summarize(cc.Actions)
	cc.AgentTrace = append(cc.AgentTrace, "actions")
	return cc
}

func (p *Pipeline) persistStage(ctx context.Context, cc *CaseContext) error {
	record := database.CaseRecord{
		Report:        cc.Report,
		EmergencyType: string(cc.Parsed.EmergencyType),
		Priority:      string(cc.FinalPriority),
		Urgency:       cc.Assessment.Urgency,
		Location:      cc.Parsed.Location,
		CitizenName:   cc.Parsed.Citizen.Name,
		CitizenAge:    cc.Parsed.Citizen.Age,
		CitizenPhone:  cc.Parsed.Citizen.Phone,
		Confidence:    cc.Parsed.Confidence,
		SystemMode:    cc.SystemStatus.Mode,
		Status:        "processed",
	}
	if err := p.db.CreateCase(ctx, &record); err != nil {
		return err
	}

	cc.CaseID = record.ID
	p.tracker.Record(cityOf(cc.Parsed.Location), cc.Parsed.EmergencyType, cc.FinalPriority)
	return nil
}

func toHistoricalCases(records []database.HistoricalRequest) []triage.HistoricalCase {
	cases := make([]triage.HistoricalCase, 0, len(records))
	for _, record := range records {
		cases = append(cases, triage.HistoricalCase{
			Symptoms: record.Symptoms,
			Priority: classifier.Priority(record.Priority),
		})
	}
	return cases
}

// cityOf strips the GPS suffix from an extracted location, e.g.
// "Karachi (GPS: 24.8607, 67.0011)" resolves to "Karachi".
func cityOf(location string) string {
	if idx := strings.Index(location, " (GPS:"); idx > 0 {
		return location[:idx]
	}
	return location
}
