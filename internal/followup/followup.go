// Package followup builds the reminder schedule and monitoring plan for a
// booked case. Reminders are plain data; nothing dispatches them.
package followup

import (
	"fmt"
	"time"

	"frontline/internal/classifier"
)

// Reminder is one scheduled notification.
type Reminder struct {
	Type          string    `json:"type"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Message       string    `json:"message"`
	Channel       string    `json:"channel"`
}

// Plan is the follow-up stage output.
type Plan struct {
	Reminders      []Reminder `json:"reminder_schedule"`
	MonitoringPlan string     `json:"followup_plan"`
	ContactMethods []string   `json:"contact_methods"`
}

// Planner builds plans against an injectable clock.
type Planner struct {
	now func() time.Time
}

func NewPlanner(now func() time.Time) *Planner {
	if now == nil {
		now = time.Now
	}
	return &Planner{now: now}
}

// Build assembles the reminder schedule relative to the appointment time. A
// zero appointment time falls back to one hour from now.
func (p *Planner) Build(priority classifier.Priority, category classifier.Category, appointmentTime time.Time, citizen classifier.CitizenData) Plan {
	if appointmentTime.IsZero() {
		appointmentTime = p.now().Add(time.Hour)
	}

	return Plan{
		Reminders:      p.remindersFor(priority, appointmentTime),
		MonitoringPlan: monitoringPlan(priority, category),
		ContactMethods: contactMethods(citizen),
	}
}

func (p *Planner) remindersFor(priority classifier.Priority, appointment time.Time) []Reminder {
	switch priority {
	case classifier.PriorityHigh:
		return []Reminder{
			{
				Type:          "immediate_reminder",
				ScheduledTime: p.now().Add(5 * time.Minute),
				Message:       "EMERGENCY: Your appointment is confirmed. Proceed immediately.",
				Channel:       "sms_priority",
			},
			{
				Type:          "follow_up_1hr",
				ScheduledTime: appointment.Add(time.Hour),
				Message:       "Follow-up: How was your emergency service experience?",
				Channel:       "sms",
			},
		}
	case classifier.PriorityMedium:
		return []Reminder{
			{
				Type:          "24_hour_reminder",
				ScheduledTime: appointment.Add(-24 * time.Hour),
				Message:       fmt.Sprintf("Reminder: Your urgent appointment is in 24 hours at %s", appointment.Format("3:04 PM")),
				Channel:       "sms",
			},
			{
				Type:          "2_hour_reminder",
				ScheduledTime: appointment.Add(-2 * time.Hour),
				Message:       "Reminder: Your appointment is in 2 hours. Please prepare to leave.",
				Channel:       "sms",
			},
			{
				Type:          "post_appointment_followup",
				ScheduledTime: appointment.AddDate(0, 0, 1),
				Message:       "Follow-up: How was your service experience?",
				Channel:       "sms",
			},
		}
	default:
		sameDay := time.Date(appointment.Year(), appointment.Month(), appointment.Day(), 9, 0, 0, 0, appointment.Location())
		return []Reminder{
			{
				Type:          "48_hour_reminder",
				ScheduledTime: appointment.Add(-48 * time.Hour),
				Message:       "Reminder: Your appointment is in 48 hours.",
				Channel:       "email",
			},
			{
				Type:          "same_day_reminder",
				ScheduledTime: sameDay,
				Message:       fmt.Sprintf("Reminder: Your appointment is today at %s", appointment.Format("3:04 PM")),
				Channel:       "sms",
			},
		}
	}
}

func monitoringPlan(priority classifier.Priority, category classifier.Category) string {
	if category == classifier.CategoryMedical {
		if priority == classifier.PriorityHigh {
			return "Daily symptom check-ins for one week, escalate on deterioration"
		}
		return "Daily symptom tracking for one week"
	}
	return "Case status check after service completion"
}

func contactMethods(citizen classifier.CitizenData) []string {
	methods := []string{"app_notification"}
	if citizen.Phone != "" {
		methods = append(methods, "sms")
	}
	return methods
}
