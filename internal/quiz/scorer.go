// Package quiz holds the assessment catalog and the deterministic scorer
// that turns an answer vector into a stream recommendation.
package quiz

import (
	"math"
	"strconv"

	"careerdisha/internal/model"
)

// Final score composition weights.
const (
	interestWeight    = 0.5
	aptitudeWeight    = 0.3
	personalityWeight = 0.2
)

// aptitudeSensitivity scales the aptitude percentage into a per-stream
// bonus. Science and commerce are modelled as more aptitude-sensitive.
var aptitudeSensitivity = map[model.Stream]float64{
	model.StreamScience:    0.8,
	model.StreamCommerce:   0.6,
	model.StreamArts:       0.3,
	model.StreamVocational: 0.4,
}

// Scorer scores answer vectors against a fixed catalog.
type Scorer struct {
	catalog []model.Question
}

// NewScorer returns a scorer over the process-wide catalog.
func NewScorer() *Scorer {
	return &Scorer{catalog: Catalog}
}

// Score converts a flat answer vector into a QuizResult. Answers align
// positionally with the flattened catalog; a short vector is tolerated
// (remaining questions are skipped), nil or unknown entries contribute
// nothing, and no entry ever aborts scoring. The result is deterministic
// for a given input.
func (s *Scorer) Score(answers []interface{}) *model.QuizResult {
	streamScores := map[model.Stream]int{}
	for _, st := range model.StreamOrder {
		streamScores[st] = 0
	}

	aptitudeScores := map[string]int{}
	personalityScores := map[string]int{}
	for _, q := range s.catalog {
		switch q.Section {
		case model.SectionAptitude:
			aptitudeScores[q.Subtype] = 0
		case model.SectionPersonality:
			personalityScores[q.Subtype] = 0
		}
	}

	for i, q := range s.catalog {
		if i >= len(answers) {
			break
		}
		raw := answerString(answers[i])
		if raw == "" {
			continue
		}

		switch q.Section {
		case model.SectionInterest:
			// Unknown values are ignored, not an error.
			if _, ok := streamScores[model.Stream(raw)]; ok {
				streamScores[model.Stream(raw)]++
			}
		case model.SectionAptitude:
			for _, opt := range q.Options {
				if opt.Value == raw {
					if opt.Value == "correct" {
						aptitudeScores[q.Subtype]++
					}
					break
				}
			}
		case model.SectionPersonality:
			personalityScores[q.Subtype] += parseLikert(raw)
		}
	}

	totalInterest := s.countSection(model.SectionInterest)
	totalAptitude := s.countSection(model.SectionAptitude)

	normalized := map[model.Stream]float64{}
	for st, n := range streamScores {
		if totalInterest > 0 {
			normalized[st] = float64(n) / float64(totalInterest) * 100
		}
	}

	aptitudeTotal := 0
	for _, n := range aptitudeScores {
		aptitudeTotal += n
	}
	aptitudePct := 0.0
	if totalAptitude > 0 {
		aptitudePct = float64(aptitudeTotal) / float64(totalAptitude) * 100
	}

	personalityBonus := map[model.Stream]float64{
		model.StreamScience:    float64(personalityScores[model.TraitAnalytical]+personalityScores[model.TraitPractical]) * 2,
		model.StreamArts:       float64(personalityScores[model.TraitCreative]+personalityScores[model.TraitAnalytical]) * 2,
		model.StreamCommerce:   float64(personalityScores[model.TraitLeader]+personalityScores[model.TraitAnalytical]) * 2,
		model.StreamVocational: float64(personalityScores[model.TraitPractical]+personalityScores[model.TraitLeader]) * 2,
	}

	finalScores := map[model.Stream]float64{}
	for _, st := range model.StreamOrder {
		aptitudeBonus := aptitudePct * aptitudeSensitivity[st]
		finalScores[st] = round2(normalized[st]*interestWeight +
			aptitudeBonus*aptitudeWeight +
			personalityBonus[st]*personalityWeight)
	}

	// Iterate streams in their fixed order and replace the leader only on a
	// strictly greater score, so ties resolve to the earliest stream and
	// science is the all-zero default.
	winner := model.StreamOrder[0]
	best := finalScores[winner]
	for _, st := range model.StreamOrder[1:] {
		if finalScores[st] > best {
			winner = st
			best = finalScores[st]
		}
	}

	return &model.QuizResult{
		RecommendedStream:  winner,
		StreamScores:       streamScores,
		FinalScores:        finalScores,
		AptitudeScores:     aptitudeScores,
		PersonalityScores:  personalityScores,
		AptitudePercentage: round2(aptitudePct),
		SectionBreakdown:   s.breakdown(streamScores, aptitudeScores, personalityScores),
	}
}

func (s *Scorer) breakdown(streams map[model.Stream]int, aptitude, personality map[string]int) model.SectionBreakdown {
	aptCounts := s.countSubtype(model.SectionAptitude)
	perCounts := s.countSubtype(model.SectionPersonality)

	aptRatios := map[string]model.Ratio{}
	for dim, n := range aptitude {
		aptRatios[dim] = model.Ratio{Score: n, OutOf: aptCounts[dim]}
	}
	perRatios := map[string]model.Ratio{}
	for trait, n := range personality {
		// Each personality question contributes up to 5 Likert points.
		perRatios[trait] = model.Ratio{Score: n, OutOf: perCounts[trait] * 5}
	}

	interest := map[model.Stream]int{}
	for st, n := range streams {
		interest[st] = n
	}

	return model.SectionBreakdown{
		Interest:    interest,
		Aptitude:    aptRatios,
		Personality: perRatios,
	}
}

func (s *Scorer) countSection(section model.Section) int {
	n := 0
	for _, q := range s.catalog {
		if q.Section == section {
			n++
		}
	}
	return n
}

func (s *Scorer) countSubtype(section model.Section) map[string]int {
	counts := map[string]int{}
	for _, q := range s.catalog {
		if q.Section == section && q.Subtype != "" {
			counts[q.Subtype]++
		}
	}
	return counts
}

// answerString normalises a raw JSON answer value. Numbers arrive as
// float64 from encoding/json; everything unrecognised becomes the empty
// string and is skipped.
func answerString(v interface{}) string {
	switch a := v.(type) {
	case string:
		return a
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	case int:
		return strconv.Itoa(a)
	default:
		return ""
	}
}

// parseLikert parses a 1-5 rating. Anything unparseable or outside the
// scale contributes 0.
func parseLikert(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 5 {
		return 0
	}
	return n
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
