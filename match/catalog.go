package match

import "github.com/vitalio/triage-api/schema"

// fallbackCatalog is the built-in provider list used when the live
// repository is unreachable. It spans two specialties.
var fallbackCatalog = []schema.ProviderRecord{
	{
		ID:              "D001",
		Name:            "Dr. Rajesh Sharma",
		Specialty:       "Cardiology",
		Address:         "Apollo Hospital, Mumbai",
		Latitude:        19.0760,
		Longitude:       72.8777,
		Rating:          4.8,
		Available:       true,
		Phone:           "+91-9876543210",
		Email:           "rajesh.sharma@apollo.com",
		Affiliation:     "Apollo Hospital",
		YearsExperience: 15,
		ConsultationFee: 1500.00,
	},
	{
		ID:              "D002",
		Name:            "Dr. Priya Patel",
		Specialty:       "General Medicine",
		Address:         "Fortis Hospital, Mumbai",
		Latitude:        19.0896,
		Longitude:       72.8656,
		Rating:          4.5,
		Available:       true,
		Phone:           "+91-9876543211",
		Email:           "priya.patel@fortis.com",
		Affiliation:     "Fortis Healthcare",
		YearsExperience: 12,
		ConsultationFee: 800.00,
	},
}

// FallbackCatalog returns a copy of the static catalog.
func FallbackCatalog() []schema.ProviderRecord {
	catalog := make([]schema.ProviderRecord, len(fallbackCatalog))
	copy(catalog, fallbackCatalog)
	return catalog
}
