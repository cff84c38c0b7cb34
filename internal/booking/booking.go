// Package booking generates mock appointments, pre-filled forms, and
// confirmations for a triaged case. No real scheduling system is involved; the
// jitter source and clock are injectable so tests get deterministic windows.
package booking

import (
	"fmt"
	"math/rand"
	"time"

	"frontline/internal/classifier"
)

// Appointment is the scheduled slot offered to the citizen.
type Appointment struct {
	AppointmentID   string              `json:"appointment_id"`
	ServiceName     string              `json:"service_name"`
	AppointmentTime time.Time           `json:"appointment_time"`
	SlotType        string              `json:"slot_type"`
	DurationMinutes int                 `json:"duration_minutes"`
	Priority        classifier.Priority `json:"priority"`
	Location        string              `json:"location"`
	Instructions    string              `json:"instructions"`
}

// FormField is one entry of the pre-filled intake form.
type FormField struct {
	Field    string `json:"field"`
	Value    string `json:"value"`
	Required bool   `json:"required"`
}

// Confirmation wraps the booking reference handed back to the citizen.
type Confirmation struct {
	ConfirmationNumber string    `json:"confirmation_number"`
	ConfirmedAt        time.Time `json:"confirmed_at"`
	CustomerName       string    `json:"customer_name"`
	NextSteps          []string  `json:"next_steps"`
	ImportantNotes     string    `json:"important_notes"`
}

// Booking is the full output of the booking stage.
type Booking struct {
	Appointment  Appointment  `json:"appointment_details"`
	FormFields   []FormField  `json:"form_fields"`
	Confirmation Confirmation `json:"confirmation_details"`
	Status       string       `json:"booking_status"`
}

// Scheduler produces bookings. Build with NewScheduler; the zero value has no
// clock or jitter source.
type Scheduler struct {
	now func() time.Time
	rng *rand.Rand
}

func NewScheduler(now func() time.Time, rng *rand.Rand) *Scheduler {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scheduler{now: now, rng: rng}
}

// Book assembles appointment, form, and confirmation for a triaged case.
func (s *Scheduler) Book(priority classifier.Priority, category classifier.Category, serviceName, location string, citizen classifier.CitizenData) Booking {
	appointment := s.appointmentFor(priority, category, serviceName, location)

	return Booking{
		Appointment:  appointment,
		FormFields:   formFields(citizen, category, location),
		Confirmation: s.confirmationFor(appointment, citizen),
		Status:       "confirmed",
	}
}

func (s *Scheduler) appointmentFor(priority classifier.Priority, category classifier.Category, serviceName, location string) Appointment {
	now := s.now()

	var (
		when     time.Time
		slotType string
		duration int
	)
	switch priority {
	case classifier.PriorityHigh:
		when = now.Add(time.Duration(15+s.rng.Intn(16)) * time.Minute)
		slotType = "Emergency"
		duration = 45
	case classifier.PriorityMedium:
		when = now.Add(time.Hour + time.Duration(s.rng.Intn(61))*time.Minute)
		slotType = "Urgent"
		duration = 30
	default:
		when = now.Add(time.Duration(2+s.rng.Intn(23)) * time.Hour)
		// Standard slots start on a quarter hour.
		when = when.Truncate(time.Minute).Add(-time.Duration(when.Minute()%15) * time.Minute)
		slotType = "Standard"
		duration = 20
	}

	when = clampToOfficeHours(when)

	return Appointment{
		AppointmentID:   fmt.Sprintf("APT-%05d", 10000+s.rng.Intn(90000)),
		ServiceName:     serviceName,
		AppointmentTime: when,
		SlotType:        slotType,
		DurationMinutes: duration,
		Priority:        priority,
		Location:        location,
		Instructions:    instructionsFor(priority, category),
	}
}

// clampToOfficeHours keeps slots between 08:00 and 20:00; anything after hours
// rolls to 08:00 the next day.
func clampToOfficeHours(when time.Time) time.Time {
	switch {
	case when.Hour() < 8:
		return time.Date(when.Year(), when.Month(), when.Day(), 8, 0, 0, 0, when.Location())
	case when.Hour() >= 20:
		next := when.AddDate(0, 0, 1)
		return time.Date(next.Year(), next.Month(), next.Day(), 8, 0, 0, 0, next.Location())
	default:
		return when
	}
}

func (s *Scheduler) confirmationFor(appointment Appointment, citizen classifier.CitizenData) Confirmation {
	name := citizen.Name
	if name == "" {
		name = "Customer"
	}

	return Confirmation{
		ConfirmationNumber: fmt.Sprintf("CNF-%06d", 100000+s.rng.Intn(900000)),
		ConfirmedAt:        s.now(),
		CustomerName:       name,
		NextSteps:          nextSteps(appointment.Priority, appointment.SlotType),
		ImportantNotes:     importantNotes(appointment.Priority),
	}
}

func formFields(citizen classifier.CitizenData, category classifier.Category, location string) []FormField {
	fields := []FormField{
		{Field: "full_name", Value: citizen.Name, Required: true},
		{Field: "contact_number", Value: citizen.Phone, Required: true},
		{Field: "emergency_contact", Value: "", Required: false},
	}

	switch category {
	case classifier.CategoryMedical:
		fields = append(fields,
			FormField{Field: "symptoms", Value: "", Required: true},
			FormField{Field: "existing_conditions", Value: joinConditions(citizen.MedicalConditions), Required: false},
			FormField{Field: "allergies", Value: "", Required: false},
		)
	case classifier.CategoryPolice:
		fields = append(fields,
			FormField{Field: "incident_description", Value: citizen.IncidentDetails, Required: true},
			FormField{Field: "incident_location", Value: location, Required: true},
			FormField{Field: "witnesses", Value: "", Required: false},
		)
	}

	return fields
}

func joinConditions(conditions []string) string {
	out := ""
	for i, condition := range conditions {
		if i > 0 {
			out += ", "
		}
		out += condition
	}
	return out
}

var appointmentInstructions = map[classifier.Priority]map[classifier.Category]string{
	classifier.PriorityHigh: {
		classifier.CategoryMedical: "Go directly to emergency department. Bring ID and insurance if available.",
		classifier.CategoryPolice:  "Officer is en route. Stay in a safe location.",
		classifier.CategoryFire:    "Fire team dispatched. Evacuate if necessary.",
	},
	classifier.PriorityMedium: {
		classifier.CategoryMedical: "Visit within 2 hours. Bring medical records and medications.",
		classifier.CategoryPolice:  "Officer will arrive within 1 hour. Secure evidence if safe.",
		classifier.CategoryFire:    "Safety inspection scheduled. Ensure access to property.",
	},
	classifier.PriorityLow: {
		classifier.CategoryMedical: "Schedule at your convenience. Bring relevant medical history.",
		classifier.CategoryPolice:  "File report at station. Bring identification.",
		classifier.CategoryFire:    "Prevention consultation scheduled.",
	},
}

func instructionsFor(priority classifier.Priority, category classifier.Category) string {
	if byCategory, ok := appointmentInstructions[priority]; ok {
		if text, ok := byCategory[category]; ok {
			return text
		}
	}
	return "Follow service provider instructions."
}

func nextSteps(priority classifier.Priority, slotType string) []string {
	if priority == classifier.PriorityHigh {
		return []string{
			"Proceed immediately to service location",
			"Bring identification documents",
			"Inform emergency contact if possible",
		}
	}
	return []string{
		fmt.Sprintf("Arrive 15 minutes before %s appointment", slotType),
		"Bring required documents",
		"Contact service provider if unable to attend",
	}
}

func importantNotes(priority classifier.Priority) string {
	switch priority {
	case classifier.PriorityHigh:
		return "This is an emergency appointment. Time is critical."
	case classifier.PriorityMedium:
		return "This is an urgent appointment. Please arrive on time."
	default:
		return "This is a standard appointment. Reschedule if necessary."
	}
}
