package model

// GeoPoint is the nested coordinate shape some college documents use.
type GeoPoint struct {
	Lat *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

// College is a college document. The collection predates a single coordinate
// convention, so three shapes coexist: nested location.{lat,lng}, top-level
// latitude/longitude, and top-level lat/lng. All fields are optional; the
// filtering code must treat missing fields as non-matching.
type College struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	City       string    `json:"city,omitempty" bson:"city,omitempty"`
	Location   *GeoPoint `json:"location,omitempty" bson:"location,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Lat        *float64  `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty" bson:"lng,omitempty"`
	Courses    []string  `json:"courses" bson:"courses"`
	Facilities []string  `json:"facilities,omitempty" bson:"facilities,omitempty"`
	Level      string    `json:"level,omitempty" bson:"level,omitempty"`
}

// College level tags. A college with no level, or level "all", is compatible
// with every class level.
const (
	CollegeLevelJunior          = "junior"
	CollegeLevelSeniorSecondary = "senior_secondary"
	CollegeLevelHigherSecondary = "higher_secondary"
	CollegeLevelDegree          = "degree"
	CollegeLevelUniversity      = "university"
	CollegeLevelPG              = "pg"
	CollegeLevelResearch        = "research"
	CollegeLevelAll             = "all"
)

// NearbyCollege is a college paired with its distance from the query point.
type NearbyCollege struct {
	College
	DistanceKm float64 `json:"distanceKm" bson:"-"`
}
