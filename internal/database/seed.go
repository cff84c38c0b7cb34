package database

import "gorm.io/gorm"

// seedReferenceData loads the mock hospital and historical-request datasets the
// first time a database is opened. Existing rows are left alone.
func seedReferenceData(db *gorm.DB) error {
	var hospitalCount int64
	if err := db.Model(&Hospital{}).Count(&hospitalCount).Error; err != nil {
		return err
	}
	if hospitalCount == 0 {
		if err := db.Create(seedHospitals()).Error; err != nil {
			return err
		}
	}

	var requestCount int64
	if err := db.Model(&HistoricalRequest{}).Count(&requestCount).Error; err != nil {
		return err
	}
	if requestCount == 0 {
		if err := db.Create(seedHistoricalRequests()).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedHospitals() []Hospital {
	return []Hospital{
		{
			Name:             "Jinnah Hospital Lahore",
			City:             "Lahore",
			EmergencyContact: "042-99231441",
			BedsAvailable:    25,
			Specialties:      `["Emergency","Cardiology","Surgery"]`,
		},
		{
			Name:             "Services Hospital Lahore",
			City:             "Lahore",
			EmergencyContact: "042-99212171",
			BedsAvailable:    18,
			Specialties:      `["Emergency","General Medicine"]`,
		},
		{
			Name:             "Aga Khan Hospital Karachi",
			City:             "Karachi",
			EmergencyContact: "021-34864114",
			BedsAvailable:    15,
			Specialties:      `["Emergency","Oncology","Neurology"]`,
		},
		{
			Name:             "Civil Hospital Karachi",
			City:             "Karachi",
			EmergencyContact: "021-99215740",
			BedsAvailable:    30,
			Specialties:      `["Emergency","Trauma"]`,
		},
		{
			Name:             "PIMS Islamabad",
			City:             "Islamabad",
			EmergencyContact: "051-9261170",
			BedsAvailable:    22,
			Specialties:      `["Emergency","Pediatrics"]`,
		},
	}
}

func seedHistoricalRequests() []HistoricalRequest {
	return []HistoricalRequest{
		{
			Symptoms:      "chest pain and difficulty breathing",
			EmergencyType: "medical",
			Location:      "Lahore",
			Priority:      "high",
		},
		{
			Symptoms:      "high fever for 3 days",
			EmergencyType: "medical",
			Location:      "Karachi",
			Priority:      "medium",
		},
		{
			Symptoms:      "severe bleeding after road accident",
			EmergencyType: "medical",
			Location:      "Lahore",
			Priority:      "high",
		},
		{
			Symptoms:      "sprained ankle while playing",
			EmergencyType: "medical",
			Location:      "Islamabad",
			Priority:      "low",
		},
		{
			Symptoms:      "persistent cough and sore throat",
			EmergencyType: "medical",
			Location:      "Karachi",
			Priority:      "low",
		},
		{
			Symptoms:      "unconscious after fall from ladder",
			EmergencyType: "medical",
			Location:      "Rawalpindi",
			Priority:      "high",
		},
	}
}
