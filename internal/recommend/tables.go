package recommend

import "careerdisha/internal/model"

// Static lookup data for the composer. Everything here is read-only after
// process start and safe for unsynchronised concurrent access.

// fallbackClassLevel is the class-level key tried when a table has no entry
// for the student's exact level.
const fallbackClassLevel = model.ClassLevel12

// careerMapping lists career options per stream and class level.
var careerMapping = map[model.Stream]map[string][]string{
	model.StreamScience: {
		model.ClassLevel10: {"Engineer", "Doctor", "Research Scientist", "Pharmacist"},
		model.ClassLevel12: {"Engineer", "Doctor", "Data Scientist", "Architect", "Research Scientist"},
		model.ClassLevelUG: {"Software Engineer", "Data Scientist", "Research Associate", "Biotechnologist"},
		model.ClassLevelPG: {"Senior Researcher", "Professor", "Principal Engineer", "Clinical Specialist"},
	},
	model.StreamArts: {
		model.ClassLevel10: {"Journalist", "Designer", "Teacher", "Civil Services"},
		model.ClassLevel12: {"Journalist", "Lawyer", "Psychologist", "Designer", "Civil Services"},
		model.ClassLevelUG: {"Content Strategist", "Policy Analyst", "UX Designer", "Academic"},
		model.ClassLevelPG: {"Professor", "Senior Editor", "Policy Advisor", "Clinical Psychologist"},
	},
	model.StreamCommerce: {
		model.ClassLevel10: {"Chartered Accountant", "Banker", "Entrepreneur"},
		model.ClassLevel12: {"Chartered Accountant", "Investment Banker", "Company Secretary", "Economist"},
		model.ClassLevelUG: {"Financial Analyst", "Auditor", "Product Manager", "Consultant"},
		model.ClassLevelPG: {"CFO Track", "Portfolio Manager", "Management Consultant"},
	},
	model.StreamVocational: {
		model.ClassLevel10: {"Electrician", "Automotive Technician", "Fitter", "Computer Operator"},
		model.ClassLevel12: {"Web Developer", "Lab Technician", "Hospitality Professional", "Paramedic"},
		model.ClassLevelUG: {"Full-stack Developer", "Hotel Manager", "Medical Lab Supervisor"},
		model.ClassLevelPG: {"Vocational Trainer", "Operations Manager", "Skill Development Consultant"},
	},
}

// courseMapping lists the relevant course names matched against the courses
// collection by case-insensitive substring in either direction.
var courseMapping = map[model.Stream]map[string][]string{
	model.StreamScience: {
		model.ClassLevel10: {"Science (PCM)", "Science (PCB)", "Mathematics"},
		model.ClassLevel12: {"B.Tech", "MBBS", "B.Sc", "B.Arch", "BCA"},
		model.ClassLevelUG: {"M.Tech", "M.Sc", "MCA", "MBA"},
		model.ClassLevelPG: {"Ph.D", "Post Doctoral Fellowship"},
	},
	model.StreamArts: {
		model.ClassLevel10: {"Humanities", "Fine Arts"},
		model.ClassLevel12: {"B.A", "BFA", "BJMC", "LLB", "B.Des"},
		model.ClassLevelUG: {"M.A", "LLM", "MFA", "M.Des"},
		model.ClassLevelPG: {"Ph.D", "M.Phil"},
	},
	model.StreamCommerce: {
		model.ClassLevel10: {"Commerce", "Commerce with Mathematics"},
		model.ClassLevel12: {"B.Com", "BBA", "CA Foundation", "CS Foundation"},
		model.ClassLevelUG: {"M.Com", "MBA", "CFA"},
		model.ClassLevelPG: {"Ph.D", "Executive MBA"},
	},
	model.StreamVocational: {
		model.ClassLevel10: {"ITI", "Polytechnic Diploma"},
		model.ClassLevel12: {"B.Voc", "Diploma", "Hotel Management"},
		model.ClassLevelUG: {"Advanced Diploma", "PG Diploma"},
		model.ClassLevelPG: {"Skill Certification"},
	},
}

// fallbackCourses guarantees a non-empty course list when the live
// collection yields no matches.
var fallbackCourses = map[model.Stream]map[string][]model.Course{
	model.StreamScience: {
		model.ClassLevel10: {
			{Course: "Science (PCM)", Careers: []string{"Engineer", "Architect"}, HigherStudies: []string{"B.Tech", "B.Arch"}},
			{Course: "Science (PCB)", Careers: []string{"Doctor", "Pharmacist"}, HigherStudies: []string{"MBBS", "B.Pharm"}},
		},
		model.ClassLevel12: {
			{Course: "B.Tech Computer Science", Careers: []string{"Software Engineer"}, HigherStudies: []string{"M.Tech", "MBA"}},
			{Course: "MBBS", Careers: []string{"Doctor"}, HigherStudies: []string{"MD", "MS"}},
			{Course: "B.Sc Physics", Careers: []string{"Research Scientist"}, HigherStudies: []string{"M.Sc", "Ph.D"}},
		},
	},
	model.StreamArts: {
		model.ClassLevel10: {
			{Course: "Humanities", Careers: []string{"Journalist", "Civil Services"}, HigherStudies: []string{"B.A"}},
		},
		model.ClassLevel12: {
			{Course: "B.A Psychology", Careers: []string{"Psychologist"}, HigherStudies: []string{"M.A", "M.Phil"}},
			{Course: "BJMC", Careers: []string{"Journalist"}, HigherStudies: []string{"MJMC"}},
			{Course: "LLB", Careers: []string{"Lawyer"}, HigherStudies: []string{"LLM"}},
		},
	},
	model.StreamCommerce: {
		model.ClassLevel10: {
			{Course: "Commerce with Mathematics", Careers: []string{"Chartered Accountant"}, HigherStudies: []string{"B.Com"}},
		},
		model.ClassLevel12: {
			{Course: "B.Com Honours", Careers: []string{"Accountant", "Banker"}, HigherStudies: []string{"M.Com", "MBA"}},
			{Course: "BBA", Careers: []string{"Manager", "Entrepreneur"}, HigherStudies: []string{"MBA"}},
			{Course: "CA Foundation", Careers: []string{"Chartered Accountant"}, HigherStudies: []string{"CA Final"}},
		},
	},
	model.StreamVocational: {
		model.ClassLevel10: {
			{Course: "ITI Electrician", Careers: []string{"Electrician"}, HigherStudies: []string{"Polytechnic Diploma"}},
			{Course: "Polytechnic Diploma", Careers: []string{"Technician"}, HigherStudies: []string{"B.Voc"}},
		},
		model.ClassLevel12: {
			{Course: "B.Voc Software Development", Careers: []string{"Web Developer"}, HigherStudies: []string{"M.Voc"}},
			{Course: "Hotel Management Diploma", Careers: []string{"Hospitality Professional"}, HigherStudies: []string{"Advanced Diploma"}},
		},
	},
}

// genericFallbackCourses is the last resort when a stream has no fallback
// entry for either the student's level or class 12.
var genericFallbackCourses = []model.Course{
	{Course: "General Foundation Programme", Careers: []string{"Open to all streams"}, HigherStudies: []string{"Stream-specific degrees"}},
}

// fallbackColleges keeps the college list non-empty when no stored college
// qualifies. Keyed by class level; the entries carry levels matching that
// class level's compatibility set.
var fallbackColleges = map[string][]model.College{
	model.ClassLevel10: {
		{Name: "Government Junior College", City: "Delhi", Level: model.CollegeLevelJunior, Courses: []string{"Science (PCM)", "Commerce", "Humanities"}, Facilities: []string{"Library", "Labs"}},
		{Name: "Kendriya Vidyalaya Senior Wing", City: "Mumbai", Level: model.CollegeLevelJunior, Courses: []string{"Science (PCB)", "Commerce with Mathematics"}, Facilities: []string{"Hostel", "Sports"}},
		{Name: "City Junior Science College", City: "Pune", Level: model.CollegeLevelJunior, Courses: []string{"Science (PCM)", "Science (PCB)"}, Facilities: []string{"Labs"}},
	},
	model.ClassLevel12: {
		{Name: "National Institute of Technology", City: "Trichy", Level: model.CollegeLevelDegree, Courses: []string{"B.Tech", "B.Arch"}, Facilities: []string{"Hostel", "Research Labs"}},
		{Name: "State Degree College", City: "Jaipur", Level: model.CollegeLevelDegree, Courses: []string{"B.Sc", "B.Com", "B.A"}, Facilities: []string{"Library"}},
		{Name: "Institute of Hotel Management", City: "Lucknow", Level: model.CollegeLevelDegree, Courses: []string{"Hotel Management", "B.Voc"}, Facilities: []string{"Training Kitchen"}},
	},
	model.ClassLevelUG: {
		{Name: "Central University", City: "Hyderabad", Level: model.CollegeLevelUniversity, Courses: []string{"M.Tech", "M.Sc", "M.A", "MBA"}, Facilities: []string{"Hostel", "Research Labs"}},
		{Name: "Institute of Management Studies", City: "Bengaluru", Level: model.CollegeLevelPG, Courses: []string{"MBA", "Executive MBA"}, Facilities: []string{"Placement Cell"}},
	},
	model.ClassLevelPG: {
		{Name: "Indian Institute of Science", City: "Bengaluru", Level: model.CollegeLevelResearch, Courses: []string{"Ph.D", "Post Doctoral Fellowship"}, Facilities: []string{"Research Labs"}},
	},
}

// levelCompatibility maps a class level to the college level tags a student
// at that level can be recommended. A college with no level or level "all"
// is always compatible.
var levelCompatibility = map[string]map[string]bool{
	model.ClassLevel10: {
		model.CollegeLevelJunior:          true,
		model.CollegeLevelSeniorSecondary: true,
		model.CollegeLevelHigherSecondary: true,
		model.CollegeLevelAll:             true,
	},
	model.ClassLevel12: {
		model.CollegeLevelDegree:     true,
		model.CollegeLevelUniversity: true,
		model.CollegeLevelAll:        true,
	},
	model.ClassLevelUG: {
		model.CollegeLevelDegree:     true,
		model.CollegeLevelUniversity: true,
		model.CollegeLevelPG:         true,
		model.CollegeLevelAll:        true,
	},
	model.ClassLevelPG: {
		model.CollegeLevelUniversity: true,
		model.CollegeLevelPG:         true,
		model.CollegeLevelResearch:   true,
		model.CollegeLevelAll:        true,
	},
}

// Event keyword tables. An upcoming event is kept when its title matches a
// generic keyword, a class-level keyword, or a stream keyword.
var genericEventKeywords = []string{"admission", "scholarship", "application", "deadline"}

var classLevelEventKeywords = map[string][]string{
	model.ClassLevel10: {"class 10", "matric", "secondary", "junior college"},
	model.ClassLevel12: {"class 12", "intermediate", "senior secondary", "entrance"},
	model.ClassLevelUG: {"undergraduate", "bachelor", "campus placement", "postgraduate entrance"},
	model.ClassLevelPG: {"postgraduate", "master", "fellowship", "doctoral"},
}

var streamEventKeywords = map[model.Stream][]string{
	model.StreamScience:    {"jee", "neet", "engineering", "medical", "science olympiad"},
	model.StreamArts:       {"clat", "design", "humanities", "journalism", "fine arts"},
	model.StreamCommerce:   {"ca foundation", "commerce", "accountancy", "cfa"},
	model.StreamVocational: {"iti", "polytechnic", "skill", "apprenticeship", "diploma"},
}
