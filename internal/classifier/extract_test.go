package classifier

import "testing"

func TestExtractLocationPrefersGPSAddress(t *testing.T) {
	got := ExtractLocation("accident in Karachi", &GPS{Address: "Mall Road, Lahore"})
	if got != "Mall Road, Lahore" {
		t.Fatalf("expected GPS address to win, got %q", got)
	}
}

func TestExtractLocationResolvesCoordinatesToNearestCity(t *testing.T) {
	got := ExtractLocation("help", &GPS{Lat: 24.86, Lng: 67.00})
	if got != "Karachi (GPS: 24.8600, 67.0000)" {
		t.Fatalf("expected Karachi from coordinates, got %q", got)
	}
}

func TestNearestCityStableOnEquidistantPoint(t *testing.T) {
	// Midline between Islamabad and Rawalpindi, where the two distances are
	// indistinguishable. The scan order is fixed, so repeated lookups must
	// keep returning the same city.
	const lat, lng = 33.62475, 73.0324

	got := nearestCity(lat, lng)
	if got != "Islamabad" && got != "Rawalpindi" {
		t.Fatalf("expected one of the twin cities, got %q", got)
	}
	for i := 0; i < 200; i++ {
		if again := nearestCity(lat, lng); again != got {
			t.Fatalf("nearest city flipped from %q to %q", got, again)
		}
	}
}

func TestExtractLocationGazetteerBeatsPatterns(t *testing.T) {
	got := ExtractLocation("the fire is at the warehouse in multan", nil)
	if got != "Multan" {
		t.Fatalf("expected gazetteer hit Multan, got %q", got)
	}
}

func TestExtractLocationPatternFallback(t *testing.T) {
	got := ExtractLocation("someone collapsed at the main market.", nil)
	if got != "The Main Market" {
		t.Fatalf("expected pattern extraction, got %q", got)
	}
}

func TestExtractLocationDefaultsToLahore(t *testing.T) {
	got := ExtractLocation("nothing useful here", nil)
	if got != "Lahore" {
		t.Fatalf("expected default city, got %q", got)
	}
}

func TestExtractLocationIgnoresZeroCoordinates(t *testing.T) {
	got := ExtractLocation("emergency in quetta", &GPS{})
	if got != "Quetta" {
		t.Fatalf("expected text extraction when GPS is empty, got %q", got)
	}
}

func TestExtractPersonalInfoAllFields(t *testing.T) {
	info := ExtractPersonalInfo("My name is Sara Ahmed, I am 34, phone is 0321-9876543")
	if info.Name != "Sara Ahmed" {
		t.Fatalf("expected Sara Ahmed, got %q", info.Name)
	}
	if info.Age != 34 {
		t.Fatalf("expected age 34, got %d", info.Age)
	}
	if info.Phone != "03219876543" {
		t.Fatalf("expected normalized phone, got %q", info.Phone)
	}
}

func TestExtractPersonalInfoShortPhoneDropped(t *testing.T) {
	info := ExtractPersonalInfo("call me at 12345")
	if info.Phone != "" {
		t.Fatalf("expected phone under 10 digits dropped, got %q", info.Phone)
	}
}

func TestExtractPersonalInfoFieldsAreIndependent(t *testing.T) {
	info := ExtractPersonalInfo("I am 70 years old")
	if info.Age != 70 {
		t.Fatalf("expected age 70, got %d", info.Age)
	}
	if info.Phone != "" {
		t.Fatalf("expected no phone, got %q", info.Phone)
	}
}

func TestExtractPersonalInfoEmptyInput(t *testing.T) {
	info := ExtractPersonalInfo("")
	if info.fieldCount() != 0 {
		t.Fatalf("expected no fields, got %+v", info)
	}
}
