package model

import "time"

// ClassLevel markers for the coarse academic stage of a student.
const (
	ClassLevel10 = "10"
	ClassLevel12 = "12"
	ClassLevelUG = "UG"
	ClassLevelPG = "PG"
)

// ValidClassLevel reports whether level is one of the four supported stages.
func ValidClassLevel(level string) bool {
	switch level {
	case ClassLevel10, ClassLevel12, ClassLevelUG, ClassLevelPG:
		return true
	}
	return false
}

// Profile holds optional student attributes, currently the coordinates used
// for geo-ranking colleges.
type Profile struct {
	Lat *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

// HasLocation reports whether both coordinates are set.
func (p Profile) HasLocation() bool {
	return p.Lat != nil && p.Lng != nil
}

// User is a student document in the users collection. At most one current
// quiz result is kept per user; a new submission overwrites it.
type User struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Username     string      `json:"username" bson:"username"`
	PasswordHash string      `json:"-" bson:"passwordHash"`
	ClassLevel   string      `json:"classLevel" bson:"classLevel"`
	Profile      Profile     `json:"profile" bson:"profile"`
	QuizResult   *QuizResult `json:"quizResult,omitempty" bson:"quizResult,omitempty"`
	CreatedAt    time.Time   `json:"createdAt" bson:"createdAt"`
}
