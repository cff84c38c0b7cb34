// Package actions simulates the autonomous response side of the system:
// matching a case to a service, notifying emergency contacts, and producing
// the user-facing confirmation texts. Everything here is report-like text;
// no real call or SMS leaves the process.
package actions

import (
	"fmt"
	"time"

	"frontline/internal/classifier"
)

// emergencyContacts are the national short codes per category.
var emergencyContacts = map[classifier.Category]string{
	classifier.CategoryMedical: "1122",
	classifier.CategoryPolice:  "15",
	classifier.CategoryFire:    "16",
}

var serviceTable = map[classifier.Category]map[classifier.Priority]string{
	classifier.CategoryMedical: {
		classifier.PriorityHigh:   "Emergency Department",
		classifier.PriorityMedium: "Urgent Care Center",
		classifier.PriorityLow:    "Primary Care Clinic",
	},
	classifier.CategoryPolice: {
		classifier.PriorityHigh:   "Emergency Response Unit",
		classifier.PriorityMedium: "Police Station",
		classifier.PriorityLow:    "Community Police",
	},
	classifier.CategoryFire: {
		classifier.PriorityHigh:   "Fire Emergency Response",
		classifier.PriorityMedium: "Fire Safety Inspection",
		classifier.PriorityLow:    "Fire Prevention Office",
	},
}

// Service is the recommendation produced by matching.
type Service struct {
	Name     string `json:"recommended_service"`
	Provider string `json:"provider,omitempty"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
}

// MatchService picks the service tier for a case. provider may be empty; for
// medical cases the caller fills it from the hospital lookup.
func MatchService(category classifier.Category, priority classifier.Priority, location string) Service {
	name := "General Services"
	if byPriority, ok := serviceTable[category]; ok {
		if matched, ok := byPriority[priority]; ok {
			name = matched
		}
	}

	contact := "15"
	if category == classifier.CategoryMedical {
		contact = "1122"
	}

	return Service{
		Name:     name,
		Location: location,
		Contact:  contact,
	}
}

// Action is one simulated autonomous step.
type Action struct {
	Type         string    `json:"action_type"`
	Status       string    `json:"status"`
	Notification string    `json:"user_notification"`
	Timestamp    time.Time `json:"timestamp"`
}

// Executor generates autonomous actions; the clock is injectable for tests.
type Executor struct {
	now func() time.Time
}

func NewExecutor(now func() time.Time) *Executor {
	if now == nil {
		now = time.Now
	}
	return &Executor{now: now}
}

// Execute produces the action set for a case: a priority-specific list plus a
// confirmation SMS whenever a phone number was extracted.
func (e *Executor) Execute(category classifier.Category, priority classifier.Priority, location string, citizen classifier.CitizenData, service Service) []Action {
	var out []Action

	switch priority {
	case classifier.PriorityHigh:
		out = e.highPriorityActions(category, location, service)
	case classifier.PriorityMedium:
		out = e.mediumPriorityActions(citizen, service)
	default:
		out = e.lowPriorityActions()
	}

	if citizen.Phone != "" {
		out = append(out, e.confirmationSMS(citizen.Phone, priority))
	}

	return out
}

func (e *Executor) highPriorityActions(category classifier.Category, location string, service Service) []Action {
	number := emergencyContacts[category]
	if number == "" {
		number = "1122"
	}

	actions := []Action{
		{
			Type:         "emergency_call",
			Status:       "initiated",
			Notification: fmt.Sprintf("Emergency services (%s) have been contacted automatically. Help is on the way!", number),
			Timestamp:    e.now(),
		},
		{
			Type:         "location_share",
			Status:       "active",
			Notification: fmt.Sprintf("Your location (%s) has been shared with emergency responders for faster response.", location),
			Timestamp:    e.now(),
		},
	}

	if category == classifier.CategoryMedical && service.Provider != "" {
		actions = append(actions, Action{
			Type:         "hospital_alert",
			Status:       "initiated",
			Notification: fmt.Sprintf("%s has been alerted and is preparing for your arrival.", service.Provider),
			Timestamp:    e.now(),
		})
	}

	return actions
}

func (e *Executor) mediumPriorityActions(citizen classifier.CitizenData, service Service) []Action {
	return []Action{
		{
			Type:         "schedule_callback",
			Status:       "scheduled",
			Notification: fmt.Sprintf("A professional from %s will call you within 15 minutes for assessment.", service.Name),
			Timestamp:    e.now(),
		},
		{
			Type:         "send_instructions",
			Status:       "sent",
			Notification: "Detailed care instructions have been sent to your phone.",
			Timestamp:    e.now(),
		},
	}
}

func (e *Executor) lowPriorityActions() []Action {
	return []Action{
		{
			Type:         "schedule_reminders",
			Status:       "scheduled",
			Notification: "Appointment reminders have been set up automatically.",
			Timestamp:    e.now(),
		},
		{
			Type:         "setup_monitoring",
			Status:       "configured",
			Notification: "Health monitoring has been set up to track your progress.",
			Timestamp:    e.now(),
		},
	}
}

func (e *Executor) confirmationSMS(phone string, priority classifier.Priority) Action {
	return Action{
		Type:         "send_sms",
		Status:       "sent",
		Notification: fmt.Sprintf("Confirmation details for your %s priority case sent to %s.", priority, phone),
		Timestamp:    e.now(),
	}
}

// Summary aggregates what the executor did for the response payload.
type Summary struct {
	TotalActions  int            `json:"total_actions"`
	Breakdown     map[string]int `json:"action_breakdown"`
	Notifications []string       `json:"user_notifications"`
}

func Summarize(actions []Action) Summary {
	summary := Summary{Breakdown: make(map[string]int)}
	for _, action := range actions {
		summary.TotalActions++
		summary.Breakdown[action.Type]++
		if action.Notification != "" {
			summary.Notifications = append(summary.Notifications, action.Notification)
		}
	}
	return summary
}
