package followup

import (
	"testing"
	"time"

	"frontline/internal/classifier"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func testPlanner() *Planner {
	return NewPlanner(func() time.Time { return testNow })
}

func TestBuildHighPriorityReminders(t *testing.T) {
	appointment := testNow.Add(30 * time.Minute)
	plan := testPlanner().Build(classifier.PriorityHigh, classifier.CategoryMedical, appointment, classifier.CitizenData{})

	if len(plan.Reminders) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(plan.Reminders))
	}
	if plan.Reminders[0].Type != "immediate_reminder" || !plan.Reminders[0].ScheduledTime.Equal(testNow.Add(5*time.Minute)) {
		t.Fatalf("unexpected first reminder: %+v", plan.Reminders[0])
	}
	if !plan.Reminders[1].ScheduledTime.Equal(appointment.Add(time.Hour)) {
		t.Fatalf("expected follow-up one hour after appointment, got %s", plan.Reminders[1].ScheduledTime)
	}
}

func TestBuildMediumPriorityRemindersBracketAppointment(t *testing.T) {
	appointment := testNow.Add(26 * time.Hour)
	plan := testPlanner().Build(classifier.PriorityMedium, classifier.CategoryMedical, appointment, classifier.CitizenData{})

	if len(plan.Reminders) != 3 {
		t.Fatalf("expected 3 reminders, got %d", len(plan.Reminders))
	}
	if !plan.Reminders[0].ScheduledTime.Equal(appointment.Add(-24 * time.Hour)) {
		t.Fatalf("expected 24h-before reminder, got %s", plan.Reminders[0].ScheduledTime)
	}
	if !plan.Reminders[1].ScheduledTime.Equal(appointment.Add(-2 * time.Hour)) {
		t.Fatalf("expected 2h-before reminder, got %s", plan.Reminders[1].ScheduledTime)
	}
}

func TestBuildLowPrioritySameDayReminderAtNine(t *testing.T) {
	appointment := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	plan := testPlanner().Build(classifier.PriorityLow, classifier.CategoryMedical, appointment, classifier.CitizenData{})

	want := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	var found bool
	for _, reminder := range plan.Reminders {
		if reminder.Type == "same_day_reminder" {
			found = true
			if !reminder.ScheduledTime.Equal(want) {
				t.Fatalf("expected same-day reminder at 9 AM, got %s", reminder.ScheduledTime)
			}
		}
	}
	if !found {
		t.Fatal("expected a same_day_reminder")
	}
}

func TestBuildZeroAppointmentFallsBack(t *testing.T) {
	plan := testPlanner().Build(classifier.PriorityHigh, classifier.CategoryMedical, time.Time{}, classifier.CitizenData{})

	// Fallback appointment is one hour out, so the follow-up lands two hours out.
	if !plan.Reminders[1].ScheduledTime.Equal(testNow.Add(2 * time.Hour)) {
		t.Fatalf("expected fallback schedule, got %s", plan.Reminders[1].ScheduledTime)
	}
}

func TestContactMethodsIncludeSMSOnlyWithPhone(t *testing.T) {
	without := testPlanner().Build(classifier.PriorityLow, classifier.CategoryMedical, testNow, classifier.CitizenData{})
	if len(without.ContactMethods) != 1 {
		t.Fatalf("expected app_notification only, got %+v", without.ContactMethods)
	}

	with := testPlanner().Build(classifier.PriorityLow, classifier.CategoryMedical, testNow, classifier.CitizenData{Phone: "03211234567"})
	if len(with.ContactMethods) != 2 {
		t.Fatalf("expected app_notification and sms, got %+v", with.ContactMethods)
	}
}
