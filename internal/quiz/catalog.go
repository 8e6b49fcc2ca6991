package quiz

import "careerdisha/internal/model"

// Catalog is the full assessment in its fixed flattened order: interest
// questions first, then aptitude, then personality. A submitted answer
// vector is aligned positionally to this slice, so the order is load-bearing
// and must stay stable.
var Catalog = []model.Question{
	// Interest: each option value is the stream it counts towards.
	{
		ID:      "int1",
		Section: model.SectionInterest,
		Text:    "Which school subject do you enjoy the most?",
		Options: []model.Option{
			{Value: "science", Label: "Physics, Chemistry or Biology"},
			{Value: "arts", Label: "History, Literature or Fine Arts"},
			{Value: "commerce", Label: "Economics or Business Studies"},
			{Value: "vocational", Label: "Computer practicals or workshop classes"},
		},
	},
	{
		ID:      "int2",
		Section: model.SectionInterest,
		Text:    "What would you rather do on a free afternoon?",
		Options: []model.Option{
			{Value: "science", Label: "Try a science experiment or watch a documentary"},
			{Value: "arts", Label: "Sketch, write or practise music"},
			{Value: "commerce", Label: "Follow business news or the stock market"},
			{Value: "vocational", Label: "Repair a gadget or build something with my hands"},
		},
	},
	{
		ID:      "int3",
		Section: model.SectionInterest,
		Text:    "Which kind of problem excites you the most?",
		Options: []model.Option{
			{Value: "science", Label: "Figuring out how or why something works"},
			{Value: "arts", Label: "Expressing an idea so that it moves people"},
			{Value: "commerce", Label: "Making a plan that turns a profit"},
			{Value: "vocational", Label: "Fixing something broken quickly and well"},
		},
	},
	{
		ID:      "int4",
		Section: model.SectionInterest,
		Text:    "Which career headline would make you stop and read?",
		Options: []model.Option{
			{Value: "science", Label: "ISRO announces new planetary mission"},
			{Value: "arts", Label: "Young filmmaker wins national award"},
			{Value: "commerce", Label: "Student startup raises its first funding round"},
			{Value: "vocational", Label: "Skilled technicians in record demand"},
		},
	},
	{
		ID:      "int5",
		Section: model.SectionInterest,
		Text:    "In a group project, which part do you volunteer for?",
		Options: []model.Option{
			{Value: "science", Label: "Research and testing"},
			{Value: "arts", Label: "Design, writing and presentation"},
			{Value: "commerce", Label: "Budget and coordination"},
			{Value: "vocational", Label: "Building the working model"},
		},
	},
	{
		ID:      "int6",
		Section: model.SectionInterest,
		Text:    "Which magazine section would you open first?",
		Options: []model.Option{
			{Value: "science", Label: "Science and technology"},
			{Value: "arts", Label: "Culture and society"},
			{Value: "commerce", Label: "Markets and money"},
			{Value: "vocational", Label: "DIY and how-to guides"},
		},
	},
	{
		ID:      "int7",
		Section: model.SectionInterest,
		Text:    "Which achievement would make you proudest?",
		Options: []model.Option{
			{Value: "science", Label: "Publishing a research finding"},
			{Value: "arts", Label: "Exhibiting my creative work"},
			{Value: "commerce", Label: "Running a profitable business"},
			{Value: "vocational", Label: "Being the person everyone calls to get things done"},
		},
	},
	{
		ID:      "int8",
		Section: model.SectionInterest,
		Text:    "Which workplace sounds most appealing?",
		Options: []model.Option{
			{Value: "science", Label: "A laboratory or research institute"},
			{Value: "arts", Label: "A studio, newsroom or gallery"},
			{Value: "commerce", Label: "A bank, firm or trading floor"},
			{Value: "vocational", Label: "A workshop or field site"},
		},
	},

	// Aptitude: the right option carries the value "correct"; correctness is
	// embedded in the catalog, not held in a separate answer key.
	{
		ID:      "apt1",
		Section: model.SectionAptitude,
		Subtype: model.AptitudeLogical,
		Text:    "What comes next in the series: 2, 6, 12, 20, 30, ...?",
		Options: []model.Option{
			{Value: "correct", Label: "42"},
			{Value: "wrong1", Label: "40"},
			{Value: "wrong2", Label: "36"},
			{Value: "wrong3", Label: "44"},
		},
	},
	{
		ID:      "apt2",
		Section: model.SectionAptitude,
		Subtype: model.AptitudeLogical,
		Text:    "All roses are flowers. Some flowers fade quickly. Which statement must be true?",
		Options: []model.Option{
			{Value: "wrong1", Label: "All roses fade quickly"},
			{Value: "wrong2", Label: "Some roses fade quickly"},
			{Value: "correct", Label: "All roses are flowers that may or may not fade"},
			{Value: "wrong3", Label: "No roses fade quickly"},
		},
	},
	{
		ID:      "apt3",
		Section: model.SectionAptitude,
		Subtype: model.AptitudeNumerical,
		Text:    "A shopkeeper buys an item for Rs. 400 and sells it for Rs. 500. What is the profit percentage?",
		Options: []model.Option{
			{Value: "wrong1", Label: "20%"},
			{Value: "correct", Label: "25%"},
			{Value: "wrong2", Label: "15%"},
			{Value: "wrong3", Label: "30%"},
		},
	},
	{
		ID:      "apt4",
		Section: model.SectionAptitude,
		Subtype: model.AptitudeNumerical,
		Text:    "If 3x + 7 = 22, what is the value of x?",
		Options: []model.Option{
			{Value: "wrong1", Label: "7"},
			{Value: "wrong2", Label: "4"},
			{Value: "correct", Label: "5"},
			{Value: "wrong3", Label: "6"},
		},
	},
	{
		ID:      "apt5",
		Section: model.SectionAptitude,
		Subtype: model.AptitudeVerbal,
		Text:    "Choose the word closest in meaning to METICULOUS.",
		Options: []model.Option{
			{Value: "wrong1", Label: "Careless"},
			{Value: "wrong2", Label: "Quick"},
			{Value: "correct", Label: "Thorough"},
			{Value: "wrong3", Label: "Talkative"},
		},
	},
	{
		ID:      "apt6",
		Section: model.SectionAptitude,
		Subtype: model.AptitudeVerbal,
		Text:    "Ocean is to water as library is to ...?",
		Options: []model.Option{
			{Value: "correct", Label: "Books"},
			{Value: "wrong1", Label: "Silence"},
			{Value: "wrong2", Label: "Shelves"},
			{Value: "wrong3", Label: "Students"},
		},
	},
	{
		ID:      "apt7",
		Section: model.SectionAptitude,
		Subtype: model.AptitudeSpatial,
		Text:    "How many faces does a cube have?",
		Options: []model.Option{
			{Value: "wrong1", Label: "4"},
			{Value: "correct", Label: "6"},
			{Value: "wrong2", Label: "8"},
			{Value: "wrong3", Label: "12"},
		},
	},
	{
		ID:      "apt8",
		Section: model.SectionAptitude,
		Subtype: model.AptitudeSpatial,
		Text:    "A square sheet is folded in half twice and a corner is cut off. How many holes appear when unfolded?",
		Options: []model.Option{
			{Value: "wrong1", Label: "1"},
			{Value: "wrong2", Label: "2"},
			{Value: "correct", Label: "4"},
			{Value: "wrong3", Label: "8"},
		},
	},

	// Personality: one Likert question per trait, answered 1-5.
	{
		ID:      "per1",
		Section: model.SectionPersonality,
		Subtype: model.TraitCreative,
		Text:    "I often come up with ideas others describe as original.",
		Options: likertOptions,
	},
	{
		ID:      "per2",
		Section: model.SectionPersonality,
		Subtype: model.TraitAnalytical,
		Text:    "I like breaking a problem down before attempting a solution.",
		Options: likertOptions,
	},
	{
		ID:      "per3",
		Section: model.SectionPersonality,
		Subtype: model.TraitLeader,
		Text:    "In a team, others naturally look to me for direction.",
		Options: likertOptions,
	},
	{
		ID:      "per4",
		Section: model.SectionPersonality,
		Subtype: model.TraitPractical,
		Text:    "I prefer doing things hands-on over discussing them in theory.",
		Options: likertOptions,
	},
}

var likertOptions = []model.Option{
	{Value: "1", Label: "Strongly disagree"},
	{Value: "2", Label: "Disagree"},
	{Value: "3", Label: "Neutral"},
	{Value: "4", Label: "Agree"},
	{Value: "5", Label: "Strongly agree"},
}

// CountBySection returns the number of catalog questions in a section.
// Scoring denominators are derived from these counts, never hard-coded.
func CountBySection(section model.Section) int {
	n := 0
	for _, q := range Catalog {
		if q.Section == section {
			n++
		}
	}
	return n
}

// CountBySubtype returns, for a section, how many questions carry each
// subtype.
func CountBySubtype(section model.Section) map[string]int {
	counts := make(map[string]int)
	for _, q := range Catalog {
		if q.Section == section && q.Subtype != "" {
			counts[q.Subtype]++
		}
	}
	return counts
}
