package model

import "time"

// Stream is one of the four broad academic tracks a student can be guided
// towards.
type Stream string

const (
	StreamScience    Stream = "science"
	StreamArts       Stream = "arts"
	StreamCommerce   Stream = "commerce"
	StreamVocational Stream = "vocational"
)

// StreamOrder fixes the iteration order used everywhere a winner is picked.
// The tie-break depends on this order, so it must never be replaced by map
// iteration.
var StreamOrder = []Stream{StreamScience, StreamArts, StreamCommerce, StreamVocational}

// KnownStream reports whether s is one of the four streams.
func KnownStream(s Stream) bool {
	for _, known := range StreamOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Section tags a question with the part of the assessment it belongs to.
type Section string

const (
	SectionInterest    Section = "interest"
	SectionAptitude    Section = "aptitude"
	SectionPersonality Section = "personality"
)

// Aptitude dimensions and personality traits used as question subtypes.
const (
	AptitudeLogical   = "logical"
	AptitudeNumerical = "numerical"
	AptitudeVerbal    = "verbal"
	AptitudeSpatial   = "spatial"

	TraitCreative   = "creative"
	TraitAnalytical = "analytical"
	TraitLeader     = "leader"
	TraitPractical  = "practical"
)

// Option is one selectable answer. For aptitude questions correctness is
// encoded directly in the option value ("correct"), not in a separate key.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one assessment question. The catalog is immutable and defined
// once at process start; the flattened (interest, aptitude, personality)
// order gives each question its position in a submitted answer vector.
type Question struct {
	ID      string   `json:"id"`
	Section Section  `json:"section"`
	Subtype string   `json:"subtype,omitempty"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Ratio is a score over a catalog-derived maximum, used in the per-section
// breakdown.
type Ratio struct {
	Score int `json:"score" bson:"score"`
	OutOf int `json:"outOf" bson:"outOf"`
}

// SectionBreakdown summarises each assessment section for display.
type SectionBreakdown struct {
	Interest    map[Stream]int   `json:"interest" bson:"interest"`
	Aptitude    map[string]Ratio `json:"aptitude" bson:"aptitude"`
	Personality map[string]Ratio `json:"personality" bson:"personality"`
}

// QuizResult is the scored outcome of one assessment submission.
type QuizResult struct {
	RecommendedStream  Stream             `json:"recommendedStream" bson:"recommendedStream"`
	StreamScores       map[Stream]int     `json:"streamScores" bson:"streamScores"`
	FinalScores        map[Stream]float64 `json:"finalScores" bson:"finalScores"`
	AptitudeScores     map[string]int     `json:"aptitudeScores" bson:"aptitudeScores"`
	PersonalityScores  map[string]int     `json:"personalityScores" bson:"personalityScores"`
	AptitudePercentage float64            `json:"aptitudePercentage" bson:"aptitudePercentage"`
	SectionBreakdown   SectionBreakdown   `json:"sectionBreakdown" bson:"sectionBreakdown"`
	SubmittedAt        time.Time          `json:"submittedAt" bson:"submittedAt"`
}
