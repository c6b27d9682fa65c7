package schema

// ProviderCollection is the mongodb collection of care providers.
const ProviderCollection = "providers"

// ProviderRecord describes a care provider as stored in the repository.
// Distance from a customer is never persisted here; it exists only in the
// context of one query (see ProviderMatch).
type ProviderRecord struct {
	ID              string  `json:"provider_id" bson:"provider_id"`
	Name            string  `json:"name" bson:"name"`
	Specialty       string  `json:"specialty" bson:"specialty"`
	Address         string  `json:"location" bson:"location"`
	Latitude        float64 `json:"latitude" bson:"latitude"`
	Longitude       float64 `json:"longitude" bson:"longitude"`
	Rating          float64 `json:"rating" bson:"rating"`
	Available       bool    `json:"availability" bson:"availability"`
	Phone           string  `json:"phone" bson:"phone"`
	Email           string  `json:"email" bson:"email"`
	Affiliation     string  `json:"hospital_affiliation" bson:"hospital_affiliation"`
	YearsExperience int     `json:"years_experience" bson:"years_experience"`
	ConsultationFee float64 `json:"consultation_fee" bson:"consultation_fee"`
}

// Coordinates returns the provider position as a Location.
func (p ProviderRecord) Coordinates() Location {
	return Location{Latitude: p.Latitude, Longitude: p.Longitude}
}

// ProviderMatch pairs a provider with its distance from one customer
// coordinate pair. Matches are ordered by ascending distance, ties broken
// by descending rating.
type ProviderMatch struct {
	Provider   ProviderRecord `json:"provider"`
	DistanceKM float64        `json:"distance_km"`
}
