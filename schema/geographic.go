package schema

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Valid reports whether the coordinates fall within the
// -90..90 / -180..180 degree ranges.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// IsZero reports whether no coordinates were supplied.
func (l Location) IsZero() bool {
	return l.Latitude == 0 && l.Longitude == 0
}
