// Package recommend composes ranked course, college, career and event
// recommendations from a student's quiz result and the current store
// snapshot.
package recommend

import (
	"math"
	"sort"
	"strings"
	"time"

	"careerdisha/internal/geo"
	"careerdisha/internal/model"
)

const (
	maxCourses  = 6
	maxColleges = 5
	maxEvents   = 6
)

// noQuizMessage is returned when a student has not taken the assessment yet.
const noQuizMessage = "Take the assessment quiz first to get personalised course, college and career recommendations."

// Snapshot is a point-in-time read of the store collections the composer
// consumes. It is read-only; malformed records inside it are treated as
// non-matching, never as fatal.
type Snapshot struct {
	Courses  []model.Course
	Colleges []model.College
	Events   []model.TimelineEvent
}

// Compose builds the recommendation bundle for a student. It holds no state
// across calls and is safe for arbitrary parallelism.
func Compose(user *model.User, snap Snapshot, now time.Time) *model.Bundle {
	if user.QuizResult == nil || user.QuizResult.RecommendedStream == "" {
		return &model.Bundle{
			Courses:  []model.Course{},
			Colleges: []model.College{},
			Events:   []model.TimelineEvent{},
			Careers:  []string{},
			Message:  noQuizMessage,
		}
	}

	stream := user.QuizResult.RecommendedStream
	level := user.ClassLevel

	courses := selectCourses(stream, level, snap.Courses)
	colleges := selectColleges(level, courses, snap.Colleges)
	if user.Profile.HasLocation() {
		colleges = rankByDistance(*user.Profile.Lat, *user.Profile.Lng, colleges)
	}
	if len(colleges) > maxColleges {
		colleges = colleges[:maxColleges]
	}

	return &model.Bundle{
		RecommendedStream: stream,
		ClassLevel:        level,
		Courses:           courses,
		Colleges:          colleges,
		Events:            selectEvents(stream, level, snap.Events, now),
		Careers:           lookupCareers(stream, level),
	}
}

// lookupCareers resolves the static career table with the class-12 fallback,
// then empty for unknown streams.
func lookupCareers(stream model.Stream, level string) []string {
	byLevel, ok := careerMapping[stream]
	if !ok {
		return []string{}
	}
	if careers, ok := byLevel[level]; ok {
		return careers
	}
	if careers, ok := byLevel[fallbackClassLevel]; ok {
		return careers
	}
	return []string{}
}

// selectCourses filters the stored courses by substring match against the
// relevant course names, preserving store order, and substitutes the static
// fallback list when nothing matches.
func selectCourses(stream model.Stream, level string, stored []model.Course) []model.Course {
	relevant := courseMapping[stream][level]
	if len(relevant) == 0 {
		relevant = courseMapping[stream][fallbackClassLevel]
	}

	matched := []model.Course{}
	for _, c := range stored {
		if c.Course == "" {
			continue
		}
		for _, name := range relevant {
			if matchesEither(c.Course, name) {
				matched = append(matched, c)
				break
			}
		}
		if len(matched) == maxCourses {
			break
		}
	}
	if len(matched) > 0 {
		return matched
	}

	if fb, ok := fallbackCourses[stream][level]; ok {
		return fb
	}
	if fb, ok := fallbackCourses[stream][fallbackClassLevel]; ok {
		return fb
	}
	return genericFallbackCourses
}

// selectColleges keeps colleges level-compatible with the student that offer
// at least one of the recommended courses, falling back to the static
// per-level list when none qualify.
func selectColleges(level string, courses []model.Course, stored []model.College) []model.College {
	qualified := []model.College{}
	for _, col := range stored {
		if !levelCompatible(level, col.Level) {
			continue
		}
		if offersAny(col, courses) {
			qualified = append(qualified, col)
		}
	}
	if len(qualified) > 0 {
		return qualified
	}

	if fb, ok := fallbackColleges[level]; ok {
		return fb
	}
	if fb, ok := fallbackColleges[fallbackClassLevel]; ok {
		return fb
	}
	return []model.College{}
}

func levelCompatible(classLevel, collegeLevel string) bool {
	if collegeLevel == "" || collegeLevel == model.CollegeLevelAll {
		return true
	}
	return levelCompatibility[classLevel][collegeLevel]
}

// offersAny reports whether the college offers a course matching one of the
// recommended ones. A missing courses array simply does not match.
func offersAny(col model.College, courses []model.Course) bool {
	for _, offered := range col.Courses {
		for _, rec := range courses {
			if matchesEither(offered, rec.Course) {
				return true
			}
		}
	}
	return false
}

// coordStrategies resolve a college's coordinates from the three document
// shapes in the collection, tried in priority order.
var coordStrategies = []func(model.College) (float64, float64, bool){
	func(c model.College) (float64, float64, bool) {
		if c.Location != nil && c.Location.Lat != nil && c.Location.Lng != nil {
			return *c.Location.Lat, *c.Location.Lng, true
		}
		return 0, 0, false
	},
	func(c model.College) (float64, float64, bool) {
		if c.Latitude != nil && c.Longitude != nil {
			return *c.Latitude, *c.Longitude, true
		}
		return 0, 0, false
	},
	func(c model.College) (float64, float64, bool) {
		if c.Lat != nil && c.Lng != nil {
			return *c.Lat, *c.Lng, true
		}
		return 0, 0, false
	},
}

// ResolveCoordinates returns the first coordinate pair a strategy yields.
func ResolveCoordinates(c model.College) (float64, float64, bool) {
	for _, strategy := range coordStrategies {
		if lat, lng, ok := strategy(c); ok {
			return lat, lng, ok
		}
	}
	return 0, 0, false
}

// rankByDistance sorts colleges by distance from the student. Colleges with
// no resolvable coordinates (or a NaN distance) sort last but are never
// excluded.
func rankByDistance(lat, lng float64, colleges []model.College) []model.College {
	type entry struct {
		college  model.College
		distance float64
	}
	entries := make([]entry, len(colleges))
	for i, col := range colleges {
		entries[i] = entry{college: col, distance: distanceOf(col, lat, lng)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].distance < entries[j].distance
	})

	ranked := make([]model.College, len(entries))
	for i, e := range entries {
		ranked[i] = e.college
	}
	return ranked
}

func distanceOf(col model.College, lat, lng float64) float64 {
	cLat, cLng, ok := ResolveCoordinates(col)
	if !ok {
		return math.Inf(1)
	}
	d := geo.Distance(lat, lng, cLat, cLng)
	if math.IsNaN(d) {
		return math.Inf(1)
	}
	return d
}

// selectEvents keeps upcoming events whose titles match the generic,
// class-level or stream keyword tables, sorted soonest first.
func selectEvents(stream model.Stream, level string, events []model.TimelineEvent, now time.Time) []model.TimelineEvent {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	keywords := append([]string{}, genericEventKeywords...)
	keywords = append(keywords, classLevelEventKeywords[level]...)
	keywords = append(keywords, streamEventKeywords[stream]...)

	kept := []model.TimelineEvent{}
	for _, ev := range events {
		if ev.Date.Before(today) {
			continue
		}
		title := strings.ToLower(ev.Title)
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				kept = append(kept, ev)
				break
			}
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})
	if len(kept) > maxEvents {
		kept = kept[:maxEvents]
	}
	return kept
}

func matchesEither(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
